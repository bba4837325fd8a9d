package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCoordinate is returned when coordinate input is not a finite number
// within MaxCoordinate.
var ErrInvalidCoordinate = errors.New("coordinate must be numeric")

// MaxCoordinate bounds accepted coordinate magnitude so that distances and
// route totals over any realistic number of sites stay finite.
const MaxCoordinate = 1e15

// ParseSiteInput validates raw form input before it reaches a Session.
// The label is trimmed but may be empty.
func ParseSiteInput(label, xText, yText string) (string, float64, float64, error) {
	x, err := parseCoordinate("x", xText)
	if err != nil {
		return "", 0, 0, err
	}
	y, err := parseCoordinate("y", yText)
	if err != nil {
		return "", 0, 0, err
	}
	return strings.TrimSpace(label), x, y, nil
}

func parseCoordinate(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("parse site input: %s=%q: %w", field, text, ErrInvalidCoordinate)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse site input: %s=%q is not finite: %w", field, text, ErrInvalidCoordinate)
	}
	if math.Abs(v) > MaxCoordinate {
		return 0, fmt.Errorf("parse site input: %s=%q exceeds %g: %w", field, text, MaxCoordinate, ErrInvalidCoordinate)
	}
	return v, nil
}
