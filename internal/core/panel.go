package core

// RenderContext is the drawing capability handed to anything that renders.
// It owns the frame buffer for one terminal and hands out panels on it, so
// no component reaches for a global screen.
type RenderContext struct {
	screen   *Screen
	opened   int
	released int
}

// NewRenderContext creates a context with a frame of the given size.
func NewRenderContext(width, height int) *RenderContext {
	return &RenderContext{screen: NewScreen(width, height)}
}

// Screen returns the frame buffer.
func (rc *RenderContext) Screen() *Screen {
	return rc.screen
}

// Width returns the frame width in cells.
func (rc *RenderContext) Width() int {
	return rc.screen.Width()
}

// Height returns the frame height in cells.
func (rc *RenderContext) Height() int {
	return rc.screen.Height()
}

// Resize changes the frame size. Open panels re-center on their next Refresh.
func (rc *RenderContext) Resize(width, height int) {
	rc.screen.Resize(width, height)
}

// Open returns the number of panels currently alive.
func (rc *RenderContext) Open() int {
	return rc.opened - rc.released
}

// Released returns how many panels have been released over the context's life.
func (rc *RenderContext) Released() int {
	return rc.released
}

// NewPanel allocates a panel of the given size centered on the frame.
func (rc *RenderContext) NewPanel(height, width int) *Panel {
	rc.opened++
	return &Panel{
		rc:     rc,
		height: Max(height, 0),
		width:  Max(width, 0),
		buf:    NewScreen(width, height),
	}
}

// Panel is a boxed sub-window owned by a single menu invocation.
// Its buffer lives until Close, which runs at most once.
type Panel struct {
	rc     *RenderContext
	height int
	width  int
	buf    *Screen
}

// Height returns the panel height.
func (p *Panel) Height() int {
	return p.height
}

// Width returns the panel width.
func (p *Panel) Width() int {
	return p.width
}

// Closed reports whether the panel has been released.
func (p *Panel) Closed() bool {
	return p.buf == nil
}

// Bounds returns the panel's rectangle on the current frame.
func (p *Panel) Bounds() Rect {
	return NewRect((p.rc.Width()-p.width)/2, (p.rc.Height()-p.height)/2, p.width, p.height)
}

// Clear blanks the panel buffer.
func (p *Panel) Clear() {
	if p.Closed() {
		return
	}
	p.buf.Clear()
}

// Box draws the panel border.
func (p *Panel) Box() {
	if p.Closed() {
		return
	}
	p.buf.DrawBox(NewRect(0, 0, p.width, p.height))
}

// DrawText writes text at a panel-relative row and column.
func (p *Panel) DrawText(row, col int, text string, st Style) {
	if p.Closed() {
		return
	}
	p.buf.DrawStyledText(col, row, text, st)
}

// DrawCentered writes text centered horizontally on a panel row.
func (p *Panel) DrawCentered(row int, text string, st Style) {
	if p.Closed() {
		return
	}
	p.buf.DrawTextCentered(row, text, st)
}

// Get returns the rune at a panel-relative position.
func (p *Panel) Get(row, col int) rune {
	if p.Closed() {
		return ' '
	}
	return p.buf.Get(col, row)
}

// Refresh flushes the panel onto the frame.
func (p *Panel) Refresh() {
	if p.Closed() {
		return
	}
	b := p.Bounds()
	p.rc.screen.Blit(p.buf, b.X, b.Y)
}

// Close releases the panel buffer. Calls after the first are no-ops.
func (p *Panel) Close() {
	if p.Closed() {
		return
	}
	p.buf = nil
	p.rc.released++
}
