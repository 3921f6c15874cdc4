package view

import (
	"gitrs/internal/action"
	"gitrs/internal/keymap"
)

// Row is the per-item contract a concrete view's row type must satisfy:
// the four placeholder accessors (action.Item) plus a plain-text rendering
// used for the search projection and as a rendering fallback.
type Row interface {
	action.Item
	Display() string
}

// View is the contract every concrete view implements (spec §4.8).
type View interface {
	// Scope is the active view's most-specific scope path, which may
	// depend on the focused item (e.g. "status:unstaged:modified").
	Scope() keymap.Scope
	Title() string
	Len() int
	CursorPos() int

	MoveUp()
	MoveDown()
	MoveFirst()
	MoveLast()
	MoveHalfPageUp(page int)
	MoveHalfPageDown(page int)
	ShiftTop(height int)
	ShiftMiddle(height int)
	ShiftBottom(height int)
	JumpTo(index int)

	// VisibleTop advances the viewport to keep the cursor within
	// scrolloff lines of the window edges and returns the new top row.
	VisibleTop(height, scrolloff int) int
	// Top reports the viewport's current first-visible-item index without
	// mutating it, used to translate a mouse click's screen row back into
	// an item index (spec §4.8 "mouse clicks at (row, col) translate to
	// cursor moves").
	Top() int

	Focused() (action.Item, bool)
	Projection() []string

	// Ingest decodes raw pager records in this view's own grammar and
	// appends the resulting rows to the arena (spec §4.9).
	Ingest(records [][]byte)
	// Reset clears the item sequence, used before a reload re-ingests a
	// fresh stream (spec §4.8 "reload primitive").
	Reset()
}

// Base is the shared arena/cursor/viewport machinery every concrete view
// embeds, parameterised over its row type (spec DESIGN NOTES "arena-owned
// view items").
type Base[T Row] struct {
	items    []T
	cursor   Cursor
	viewport Viewport
	scope    keymap.Scope
	title    string
}

func NewBase[T Row](scope keymap.Scope, title string) Base[T] {
	return Base[T]{scope: scope, title: title}
}

func (b *Base[T]) Scope() keymap.Scope { return b.scope }
func (b *Base[T]) Title() string       { return b.title }
func (b *Base[T]) Len() int            { return len(b.items) }
func (b *Base[T]) CursorPos() int      { return b.cursor.Pos() }

func (b *Base[T]) MoveUp()                        { b.cursor.Up(len(b.items)) }
func (b *Base[T]) MoveDown()                      { b.cursor.Down(len(b.items)) }
func (b *Base[T]) MoveFirst()                     { b.cursor.First(len(b.items)) }
func (b *Base[T]) MoveLast()                      { b.cursor.Last(len(b.items)) }
func (b *Base[T]) MoveHalfPageUp(page int)        { b.cursor.HalfPageUp(len(b.items), page) }
func (b *Base[T]) MoveHalfPageDown(page int)      { b.cursor.HalfPageDown(len(b.items), page) }
func (b *Base[T]) JumpTo(index int)               { b.cursor.Set(index, len(b.items)) }
func (b *Base[T]) ShiftTop(height int)            { b.viewport.ShiftTop(b.cursor.Pos(), len(b.items), height) }
func (b *Base[T]) ShiftMiddle(height int)         { b.viewport.ShiftMiddle(b.cursor.Pos(), len(b.items), height) }
func (b *Base[T]) ShiftBottom(height int)         { b.viewport.ShiftBottom(b.cursor.Pos(), len(b.items), height) }

func (b *Base[T]) VisibleTop(height, scrolloff int) int {
	b.viewport.Follow(b.cursor.Pos(), len(b.items), height, scrolloff)
	return b.viewport.Top
}

func (b *Base[T]) Top() int { return b.viewport.Top }

// FocusedRow returns the concrete row under the cursor.
func (b *Base[T]) FocusedRow() (T, bool) {
	var zero T
	if len(b.items) == 0 {
		return zero, false
	}
	return b.items[b.cursor.Pos()], true
}

func (b *Base[T]) Focused() (action.Item, bool) {
	row, ok := b.FocusedRow()
	if !ok {
		return nil, false
	}
	return row, true
}

func (b *Base[T]) Projection() []string {
	proj := make([]string, len(b.items))
	for i, it := range b.items {
		proj[i] = it.Display()
	}
	return proj
}

func (b *Base[T]) Append(items ...T) {
	b.items = append(b.items, items...)
	b.cursor.Clamp(len(b.items))
}

func (b *Base[T]) Reset() {
	b.items = nil
	b.cursor = Cursor{}
	b.viewport = Viewport{}
}

// Items exposes the underlying slice read-only, for renderers.
func (b *Base[T]) Items() []T { return b.items }

// itemsMut exposes the backing slice for in-place row mutation by
// subtypes that need to reflect an immediate local edit (e.g. toggling a
// status entry's staged bit) without waiting on the next reload.
func (b *Base[T]) itemsMut() []T { return b.items }
