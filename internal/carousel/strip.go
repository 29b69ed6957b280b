package carousel

// DefaultStep is how many cards one scroll nudge moves.
const DefaultStep = 3

// Strip is a horizontally scrolled row of product cards with a cursor.
type Strip struct {
	len     int
	offset  int
	visible int
	cursor  int
}

func NewStrip(n, visible int) Strip {
	s := Strip{len: n}
	s.SetVisible(visible)
	return s
}

func (s Strip) Len() int     { return s.len }
func (s Strip) Offset() int  { return s.offset }
func (s Strip) Visible() int { return s.visible }
func (s Strip) Cursor() int  { return s.cursor }

// Window returns the half-open range of visible card indices.
func (s Strip) Window() (int, int) {
	end := s.offset + s.visible
	if end > s.len {
		end = s.len
	}
	return s.offset, end
}

func (s *Strip) SetVisible(n int) {
	if n < 1 {
		n = 1
	}
	s.visible = n
	s.clamp()
}

// Scroll nudges the window by step cards; negative scrolls left. The
// cursor is carried along so it stays visible.
func (s *Strip) Scroll(step int) {
	s.offset += step
	s.clamp()
	if s.cursor < s.offset {
		s.cursor = s.offset
	}
	if _, end := s.Window(); s.cursor >= end && end > 0 {
		s.cursor = end - 1
	}
}

// Move shifts the cursor by delta, scrolling when it leaves the window.
func (s *Strip) Move(delta int) {
	if s.len == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= s.len {
		s.cursor = s.len - 1
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.visible {
		s.offset = s.cursor - s.visible + 1
	}
	s.clamp()
}

func (s *Strip) clamp() {
	max := s.len - s.visible
	if max < 0 {
		max = 0
	}
	if s.offset > max {
		s.offset = max
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
