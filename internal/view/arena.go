// Package view implements the contract every view satisfies (spec §4.8):
// an arena-owned item sequence, a scrolloff-aware cursor, a focused-item
// accessor exposing the four placeholders, a scope-path accessor, and a
// reload entry point. Concrete views (status, log, show, blame, reflog,
// stash, files, diff) live alongside this shared machinery.
//
// "Arena-owned view items" (spec DESIGN NOTES): each view owns its item
// slice contiguously and the cursor is an index, never a reference, so a
// mid-ingest append (the pager loop growing the slice while the user
// scrolls) never invalidates anything the cursor points at.
package view

// Cursor is an index into a view's item sequence, never a pointer or
// reference into the slice itself (spec DESIGN NOTES "arena-owned view
// items").
type Cursor struct {
	pos int
}

func (c *Cursor) Pos() int { return c.pos }

func (c Cursor) clamp(pos, n int) int {
	if n <= 0 {
		return 0
	}
	if pos < 0 {
		return 0
	}
	if pos > n-1 {
		return n - 1
	}
	return pos
}

// Up moves the cursor one item toward the start; a no-op on an empty
// sequence or already at the first item (spec §4.8, §8 "Empty item
// sequence: navigation built-ins are no-ops").
func (c *Cursor) Up(n int) { c.pos = c.clamp(c.pos-1, n) }

// Down moves the cursor one item toward the end.
func (c *Cursor) Down(n int) { c.pos = c.clamp(c.pos+1, n) }

// First moves to the first item.
func (c *Cursor) First(n int) { c.pos = c.clamp(0, n) }

// Last moves to the last item.
func (c *Cursor) Last(n int) { c.pos = c.clamp(n-1, n) }

// HalfPageUp/HalfPageDown move by half of page items (spec §4.8).
func (c *Cursor) HalfPageUp(n, page int) { c.pos = c.clamp(c.pos-page/2, n) }
func (c *Cursor) HalfPageDown(n, page int) {
	if page < 1 {
		page = 1
	}
	c.pos = c.clamp(c.pos+page/2, n)
}

// Set moves the cursor directly to pos, clamped to the sequence.
func (c *Cursor) Set(pos, n int) { c.pos = c.clamp(pos, n) }

// Clamp re-clamps the cursor after the sequence length changes (e.g. a
// pager append grew it, or a reload shrank it).
func (c *Cursor) Clamp(n int) { c.pos = c.clamp(c.pos, n) }

// Viewport tracks which window of a longer item sequence is on screen,
// honoring the `scrolloff` option (spec §3 "Options", §8 scenario 5).
type Viewport struct {
	Top int // index of the first visible item
}

// Follow adjusts Top so that cursor stays within scrolloff lines of the
// viewport's edges, clamping to the sequence bounds. height is the number
// of visible item rows.
func (v *Viewport) Follow(cursor, n, height, scrolloff int) {
	if height <= 0 || n <= 0 {
		v.Top = 0
		return
	}
	if scrolloff*2 >= height {
		scrolloff = (height - 1) / 2
	}
	if cursor-v.Top < scrolloff {
		v.Top = cursor - scrolloff
	}
	if cursor-v.Top > height-1-scrolloff {
		v.Top = cursor - (height - 1 - scrolloff)
	}
	maxTop := n - height
	if maxTop < 0 {
		maxTop = 0
	}
	if v.Top > maxTop {
		v.Top = maxTop
	}
	if v.Top < 0 {
		v.Top = 0
	}
}

// ShiftTop scrolls so the cursor line is the first visible line
// (shift_line_top, spec §3 Action vocabulary).
func (v *Viewport) ShiftTop(cursor, n, height int) { v.Top = clampTop(cursor, n, height) }

// ShiftMiddle scrolls so the cursor line is centered (shift_line_middle).
func (v *Viewport) ShiftMiddle(cursor, n, height int) {
	v.Top = clampTop(cursor-height/2, n, height)
}

// ShiftBottom scrolls so the cursor line is the last visible line
// (shift_line_bottom).
func (v *Viewport) ShiftBottom(cursor, n, height int) {
	v.Top = clampTop(cursor-height+1, n, height)
}

func clampTop(top, n, height int) int {
	maxTop := n - height
	if maxTop < 0 {
		maxTop = 0
	}
	if top < 0 {
		top = 0
	}
	if top > maxTop {
		top = maxTop
	}
	return top
}
