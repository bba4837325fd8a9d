package domain

import "fmt"

// Session is the control layer's state: the append-only site collection
// and the most recently computed tour, if any.
//
// Session is not safe for concurrent use. Front ends that serve concurrent
// callers serialize access themselves.
type Session struct {
	sites []Site
	tour  Tour
}

func NewSession() *Session {
	return &Session{}
}

// AddSite appends a site and invalidates any previously computed tour.
func (s *Session) AddSite(label string, x, y float64) Site {
	site := NewSite(label, x, y)
	s.sites = append(s.sites, site)
	s.tour = nil
	return site
}

// Sites returns a copy of the collection in index order.
func (s *Session) Sites() []Site {
	out := make([]Site, len(s.sites))
	copy(out, s.sites)
	return out
}

func (s *Session) Len() int { return len(s.sites) }

// Tour returns the current tour and whether one is present.
func (s *Session) Tour() (Tour, bool) {
	if s.tour == nil {
		return nil, false
	}
	out := make(Tour, len(s.tour))
	copy(out, s.tour)
	return out, true
}

// SetTour records a tour computed over the current sites.
func (s *Session) SetTour(t Tour) error {
	if err := t.Validate(len(s.sites)); err != nil {
		return fmt.Errorf("set tour: %w", err)
	}
	s.tour = make(Tour, len(t))
	copy(s.tour, t)
	return nil
}
