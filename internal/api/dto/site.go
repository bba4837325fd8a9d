package dto

import (
	"encoding/json"
	"strings"
)

// Coordinate accepts either a JSON number or a JSON string so that form
// input can be forwarded untouched and validated server-side.
type Coordinate string

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = Coordinate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = Coordinate(n.String())
	return nil
}

func (c Coordinate) String() string { return strings.TrimSpace(string(c)) }

type AddSiteRequest struct {
	Label string     `json:"label"`
	X     Coordinate `json:"x"`
	Y     Coordinate `json:"y"`
}

type SiteResponse struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type ListSitesResponse struct {
	Sites []SiteResponse `json:"sites"`
}
