// Package filter provides event-based sampling of return series. The
// symmetric CUSUM filter emits an event whenever the running positive or
// negative cumulative sum of log-returns crosses a threshold, resetting
// both sums on each event.
package filter

import (
	"fmt"
	"math"

	"quant-utilities/internal/model"
)

// Direction labels which side of the cumulative sum crossed the
// threshold. Keep these values stable; they go into CSV and JSON output.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// Event is one detected threshold crossing.
type Event struct {
	Index     int
	Value     float64
	Direction Direction
}

// CUSUM runs the symmetric cumulative-sum filter over a log-return
// series with threshold h.
type CUSUM struct {
	data []float64
	h    float64
}

// NewCUSUM validates the threshold and input series. The input is copied;
// the caller keeps ownership of its slice.
func NewCUSUM(logReturns []float64, h float64) (*CUSUM, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return nil, fmt.Errorf("%w: threshold must be a finite value > 0, got %v", model.ErrConfiguration, h)
	}
	for i, v := range logReturns {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite log return %v at index %d", model.ErrInvalidInput, v, i)
		}
	}
	data := make([]float64, len(logReturns))
	copy(data, logReturns)
	return &CUSUM{data: data, h: h}, nil
}

// Run walks the series once and returns events in index order. Pure and
// restartable: repeated calls return equal, independently-owned slices.
func (f *CUSUM) Run() []Event {
	var events []Event
	sPlus, sMinus := 0.0, 0.0
	for i, v := range f.data {
		sPlus = math.Max(0, sPlus+v)
		sMinus = math.Min(0, sMinus+v)

		if sPlus >= f.h {
			events = append(events, Event{Index: i, Value: v, Direction: DirectionUp})
			sPlus, sMinus = 0, 0
		} else if -sMinus >= f.h {
			events = append(events, Event{Index: i, Value: v, Direction: DirectionDown})
			sPlus, sMinus = 0, 0
		}
	}
	return events
}

// Indices extracts the sample indices from a run's events.
func Indices(events []Event) []int {
	out := make([]int, len(events))
	for i, ev := range events {
		out[i] = ev.Index
	}
	return out
}
