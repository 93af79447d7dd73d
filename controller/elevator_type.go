package controller

import (
	"io"
	"time"

	"elevatorsim/config"
)

type stateFSM int

const (
	ST_AwaitingRequest stateFSM = 0
	ST_Traveling       stateFSM = 1
	ST_StoppedAtFloor  stateFSM = 2
	ST_TripComplete    stateFSM = 3
)

func (s stateFSM) String() string {
	switch s {
	case ST_AwaitingRequest:
		return "AwaitingRequest"
	case ST_Traveling:
		return "Traveling"
	case ST_StoppedAtFloor:
		return "StoppedAtFloor"
	case ST_TripComplete:
		return "TripComplete"
	}
	return "Unknown"
}

// LineReader is where the elevator gets its floor requests from.
type LineReader interface {
	// ReadLine blocks until a line is available.
	ReadLine(prompt string) (string, error)
	// ReadLineWithin gives up after d and reports ok == false.
	ReadLineWithin(prompt string, d time.Duration) (line string, ok bool, err error)
}

type Elevator struct {
	cfg   config.Config
	state stateFSM
	floor int
	in    LineReader
	out   io.Writer
}
