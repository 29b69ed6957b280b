package carousel

import "time"

// AutoplayInterval is the delay between automatic slide advances.
const AutoplayInterval = 5 * time.Second

// Slideshow tracks the visible slide. Generation changes whenever the
// autoplay cycle restarts, so ticks scheduled by an older cycle can be
// recognised and ignored.
type Slideshow struct {
	len        int
	index      int
	paused     bool
	generation int
}

func NewSlideshow(n int) Slideshow {
	return Slideshow{len: n}
}

// Reset replaces the slides with n new ones. The generation keeps counting
// so ticks from the previous set are dropped.
func (s *Slideshow) Reset(n int) {
	s.len = n
	s.index = 0
	s.paused = false
	s.restart()
}

func (s Slideshow) Len() int        { return s.len }
func (s Slideshow) Index() int      { return s.index }
func (s Slideshow) Paused() bool    { return s.paused }
func (s Slideshow) Generation() int { return s.generation }

// Show moves to i, wrapping past either end.
func (s *Slideshow) Show(i int) {
	if s.len == 0 {
		s.index = 0
		return
	}
	switch {
	case i >= s.len:
		s.index = 0
	case i < 0:
		s.index = s.len - 1
	default:
		s.index = i
	}
}

// Change is user navigation by direction; it restarts the autoplay cycle.
func (s *Slideshow) Change(direction int) {
	s.Show(s.index + direction)
	s.restart()
}

func (s *Slideshow) Next() { s.Change(1) }
func (s *Slideshow) Prev() { s.Change(-1) }

// GoTo is user navigation to a specific slide; it restarts the autoplay cycle.
func (s *Slideshow) GoTo(i int) {
	s.Show(i)
	s.restart()
}

// Advance handles an autoplay tick from cycle gen. It reports whether the
// tick was current, in which case the caller schedules the next one.
func (s *Slideshow) Advance(gen int) bool {
	if gen != s.generation || s.paused || s.len < 2 {
		return false
	}
	s.Show(s.index + 1)
	return true
}

func (s *Slideshow) Pause() {
	s.paused = true
	s.generation++
}

// Resume clears a pause and starts a new cycle.
func (s *Slideshow) Resume() {
	s.paused = false
	s.restart()
}

func (s *Slideshow) restart() {
	s.generation++
}

// SwipeThreshold is the minimum horizontal travel, in cells, that counts
// as a swipe gesture.
const SwipeThreshold = 50

// Swipe converts a drag from startX to endX into a direction: a drag to
// the left shows the next slide, to the right the previous one.
func Swipe(startX, endX int) int {
	switch {
	case endX < startX-SwipeThreshold:
		return 1
	case endX > startX+SwipeThreshold:
		return -1
	default:
		return 0
	}
}
