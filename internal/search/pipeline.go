package search

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/altinukshini/shop-tui/internal/model"
)

const (
	MinQueryLength   = 2
	DebounceInterval = 300 * time.Millisecond
)

// State is the single visible state of the search surface.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateResults
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateResults:
		return "results"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Ticket identifies one scheduled search. A ticket whose Seq is no longer
// the pipeline's latest has been cancelled.
type Ticket struct {
	Seq   uint64
	Query string
}

// Pipeline turns input changes into at most one request per settled query.
// It holds no timers: the owner schedules tickets and reports back through
// Fire and Resolve, and cancellation is a sequence comparison.
type Pipeline struct {
	query     string
	state     State
	products  []model.Product
	err       error
	scheduled uint64 // latest ticket handed out
	inFlight  uint64 // latest ticket whose request was issued
}

func New() *Pipeline {
	return &Pipeline{}
}

func (p *Pipeline) Query() string             { return p.query }
func (p *Pipeline) State() State              { return p.state }
func (p *Pipeline) Products() []model.Product { return p.products }

// Err is the failure behind StateError.
func (p *Pipeline) Err() error { return p.err }

// Input records a new raw input value. It reports false when no search
// should be scheduled.
func (p *Pipeline) Input(raw string) (Ticket, bool) {
	p.query = strings.TrimSpace(raw)
	p.scheduled++
	p.products = nil
	p.err = nil

	if utf8.RuneCountInString(p.query) < MinQueryLength {
		p.state = StateIdle
		return Ticket{}, false
	}
	p.state = StateLoading
	return Ticket{Seq: p.scheduled, Query: p.query}, true
}

// Fire reports whether t survived the quiet interval. When it did, the
// caller issues exactly one request for t.Query.
func (p *Pipeline) Fire(t Ticket) bool {
	if t.Seq == 0 || t.Seq != p.scheduled {
		return false
	}
	p.inFlight = t.Seq
	return true
}

// Resolve applies the response to the request issued for seq. Responses
// for anything but the latest issued request are dropped, as are responses
// that input has already superseded.
func (p *Pipeline) Resolve(seq uint64, resp *model.SearchResponse, err error) bool {
	if seq == 0 || seq != p.inFlight || seq != p.scheduled {
		return false
	}
	p.inFlight = 0
	switch {
	case err != nil:
		p.state = StateError
		p.err = err
		p.products = nil
	case resp == nil || resp.Count == 0 || len(resp.Products) == 0:
		p.state = StateEmpty
		p.products = nil
	default:
		p.state = StateResults
		p.products = append([]model.Product(nil), resp.Products...)
	}
	return true
}

// Open resets the surface; any pending or in-flight search is orphaned.
// Closing needs no counterpart: a request still in flight resolves into a
// hidden surface and the next Open discards it.
func (p *Pipeline) Open() {
	p.query = ""
	p.scheduled++
	p.inFlight = 0
	p.state = StateIdle
	p.products = nil
	p.err = nil
}
