// Package series canonicalizes raw labeled return observations into the
// immutable time-ordered form the metrics engine consumes.
package series

import (
	"errors"
	"math"
	"sort"
	"time"
)

var (
	// ErrInvalidInput input is not a usable labeled numeric series
	ErrInvalidInput = errors.New("input is not a valid labeled numeric series")
	// ErrInvalidIndex labels cannot be interpreted as dates
	ErrInvalidIndex = errors.New("series labels cannot be interpreted as dates")
)

// RawPoint is one caller-supplied observation before preparation.
// Value may be NaN/Inf to mark a missing entry; such entries are dropped.
type RawPoint struct {
	Key   string
	Value float64
}

// Point is one prepared observation.
type Point struct {
	Date  time.Time
	Value float64
}

// ReturnSeries is a prepared, immutable return series.
// Invariants: dates strictly increasing and unique, values finite, length >= 1.
type ReturnSeries struct {
	points []Point
}

// dateLayouts accepted for raw keys, tried in order
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Prepare canonicalizes raw observations: drops missing values, parses keys
// as dates, sorts ascending and deduplicates (last observation wins).
// Returns ErrInvalidInput when nothing usable remains and ErrInvalidIndex
// when a key with a finite value does not parse as a date.
func Prepare(raw []RawPoint) (*ReturnSeries, error) {
	if len(raw) == 0 {
		return nil, ErrInvalidInput
	}

	points := make([]Point, 0, len(raw))
	for _, rp := range raw {
		if math.IsNaN(rp.Value) || math.IsInf(rp.Value, 0) {
			continue // missing
		}
		date, ok := parseDate(rp.Key)
		if !ok {
			return nil, ErrInvalidIndex
		}
		points = append(points, Point{Date: date, Value: rp.Value})
	}

	if len(points) == 0 {
		return nil, ErrInvalidInput
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	// Deduplicate: for a repeated date the last raw observation wins
	deduped := points[:0]
	for i, p := range points {
		if i+1 < len(points) && points[i+1].Date.Equal(p.Date) {
			continue
		}
		deduped = append(deduped, p)
	}

	return &ReturnSeries{points: append([]Point(nil), deduped...)}, nil
}

// FromPoints builds a series from already-parsed points, applying the same
// sorting, missing-value and dedupe rules as Prepare.
func FromPoints(points []Point) (*ReturnSeries, error) {
	if len(points) == 0 {
		return nil, ErrInvalidInput
	}
	raw := make([]RawPoint, len(points))
	for i, p := range points {
		raw[i] = RawPoint{Key: p.Date.Format("2006-01-02 15:04:05"), Value: p.Value}
	}
	return Prepare(raw)
}

func parseDate(key string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, key); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Len returns the number of observations.
func (s *ReturnSeries) Len() int {
	return len(s.points)
}

// Values returns a copy of the return values in date order.
// Callers (including parallel metric workers) own the copy.
func (s *ReturnSeries) Values() []float64 {
	values := make([]float64, len(s.points))
	for i, p := range s.points {
		values[i] = p.Value
	}
	return values
}

// Dates returns a copy of the observation dates in order.
func (s *ReturnSeries) Dates() []time.Time {
	dates := make([]time.Time, len(s.points))
	for i, p := range s.points {
		dates[i] = p.Date
	}
	return dates
}

// At returns the i-th observation.
func (s *ReturnSeries) At(i int) Point {
	return s.points[i]
}

// First returns the earliest observation.
func (s *ReturnSeries) First() Point {
	return s.points[0]
}

// Last returns the latest observation.
func (s *ReturnSeries) Last() Point {
	return s.points[len(s.points)-1]
}

// AlignedPair pairs two series on the intersection of their dates.
// Both value slices share the same ordered date set; length may be 0.
type AlignedPair struct {
	Dates []time.Time
	A     []float64
	B     []float64
}

// Align inner-joins two prepared series on date.
// Both inputs are sorted with unique dates, so a two-pointer merge suffices.
func Align(a, b *ReturnSeries) *AlignedPair {
	pair := &AlignedPair{}
	i, j := 0, 0
	for i < len(a.points) && j < len(b.points) {
		da, db := a.points[i].Date, b.points[j].Date
		switch {
		case da.Equal(db):
			pair.Dates = append(pair.Dates, da)
			pair.A = append(pair.A, a.points[i].Value)
			pair.B = append(pair.B, b.points[j].Value)
			i++
			j++
		case da.Before(db):
			i++
		default:
			j++
		}
	}
	return pair
}

// Len returns the overlap length.
func (p *AlignedPair) Len() int {
	return len(p.Dates)
}
