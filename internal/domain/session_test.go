package domain

import (
	"errors"
	"testing"
)

func TestSessionAddSiteInvalidatesTour(t *testing.T) {
	s := NewSession()
	s.AddSite("A", 0, 0)
	s.AddSite("B", 10, 0)

	if err := s.SetTour(Tour{0, 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Tour(); !ok {
		t.Fatal("expected tour to be present after SetTour")
	}

	site := s.AddSite("C", 10, 10)
	if site.Label != "C" || site.Position != (Point{X: 10, Y: 10}) {
		t.Errorf("AddSite returned %+v", site)
	}

	if _, ok := s.Tour(); ok {
		t.Fatal("expected tour to be absent after AddSite")
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
}

func TestSessionSitesIsACopy(t *testing.T) {
	s := NewSession()
	s.AddSite("A", 1, 2)

	sites := s.Sites()
	sites[0].Label = "mutated"

	if got := s.Sites()[0].Label; got != "A" {
		t.Errorf("label = %q, want %q", got, "A")
	}
}

func TestSessionSetTourRejectsStaleTour(t *testing.T) {
	s := NewSession()
	s.AddSite("A", 0, 0)
	s.AddSite("B", 1, 1)

	err := s.SetTour(Tour{0})
	if !errors.Is(err, ErrInvalidTour) {
		t.Fatalf("err = %v, want ErrInvalidTour", err)
	}
	if _, ok := s.Tour(); ok {
		t.Fatal("rejected tour must not be stored")
	}
}

func TestTourValidate(t *testing.T) {
	tests := []struct {
		name    string
		tour    Tour
		n       int
		wantErr bool
	}{
		{name: "permutation", tour: Tour{2, 0, 1}, n: 3},
		{name: "single", tour: Tour{0}, n: 1},
		{name: "empty", tour: Tour{}, n: 0},
		{name: "short", tour: Tour{0, 1}, n: 3, wantErr: true},
		{name: "duplicate", tour: Tour{0, 0, 1}, n: 3, wantErr: true},
		{name: "out of range", tour: Tour{0, 1, 3}, n: 3, wantErr: true},
		{name: "negative", tour: Tour{-1, 0}, n: 2, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tour.Validate(tc.n)
			if tc.wantErr && !errors.Is(err, ErrInvalidTour) {
				t.Fatalf("err = %v, want ErrInvalidTour", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseSiteInput(t *testing.T) {
	label, x, y, err := ParseSiteInput("  Clinic ", " 3.5", "-2 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Clinic" || x != 3.5 || y != -2 {
		t.Errorf("got (%q, %v, %v)", label, x, y)
	}

	for _, in := range [][2]string{{"abc", "1"}, {"1", ""}, {"NaN", "1"}, {"1", "+Inf"}, {"-1e308", "0"}, {"0", "1e16"}} {
		if _, _, _, err := ParseSiteInput("X", in[0], in[1]); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("ParseSiteInput(%q, %q) err = %v, want ErrInvalidCoordinate", in[0], in[1], err)
		}
	}
}
