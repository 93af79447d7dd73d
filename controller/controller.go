package controller

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"elevatorsim/config"
	"elevatorsim/types"
	"elevatorsim/validator"
)

const (
	promptFloors     = "Enter floors to visit: "
	promptNextFloors = "Enter next floors: "
)

func NewElevator(cfg config.Config, in LineReader, out io.Writer) *Elevator {
	return &Elevator{
		cfg:   cfg,
		state: ST_AwaitingRequest,
		floor: cfg.StartingFloor,
		in:    in,
		out:   out,
	}
}

// Run asks for floors and travels to them until the input is exhausted.
// It returns nil on end of input and the read error otherwise.
func (e *Elevator) Run() error {
	glog.Infof("Elevator ready at floor %d of %d (stop at floor: %v)", e.floor, e.cfg.NumFloors, e.cfg.StopAtFloor)

	for {
		raw, err := e.in.ReadLine(promptFloors)
		if errors.Is(err, io.EOF) {
			glog.Info("Input closed, stopping elevator")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading floor request: %w", err)
		}

		e.handleRequest(raw)
	}
}

func (e *Elevator) handleRequest(raw string) {
	floors := validator.Validate(raw, e.cfg.NumFloors)
	if len(floors) == 0 {
		fmt.Fprintln(e.out, "No valid floors selected!")
		return
	}
	e.Trip(floors)
}

// Trip visits every floor of batch in order and reports the summary.
// Floors entered while stopped are visited after everything already queued.
func (e *Elevator) Trip(batch []int) types.TripSummary {
	summary := types.TripSummary{
		ID:      uuid.New(),
		Visited: make([]int, 0, len(batch)),
	}
	glog.Infof("Trip %s: leaving floor %d for %s", summary.ID, e.floor, validator.Join(batch))

	queue := slices.Clone(batch)
	for i := 0; i < len(queue); i++ {
		e.setState(ST_Traveling)

		extra := e.GoToFloor(queue[i])
		if len(extra) > 0 {
			glog.Infof("Trip %s: queued %s at floor %d", summary.ID, validator.Join(extra), queue[i])
			queue = append(queue, extra...)
		}

		summary.Visited = append(summary.Visited, queue[i])
		summary.TravelTime += e.cfg.TravelTime
	}

	e.setState(ST_TripComplete)
	fmt.Fprintln(e.out, summary)
	glog.Infof("Trip %s: %d stops in %v", summary.ID, len(summary.Visited), summary.TravelTime)

	e.setState(ST_AwaitingRequest)
	return summary
}

// GoToFloor moves the car to target. When stopping at floors is enabled it
// then waits a bounded time for more floors and returns the valid ones.
func (e *Elevator) GoToFloor(target int) []int {
	fmt.Fprintf(e.out, "Traveling to floor %d....Arrived\n", target)
	e.floor = target

	if !e.cfg.StopAtFloor {
		return nil
	}

	e.setState(ST_StoppedAtFloor)

	raw, ok, err := e.in.ReadLineWithin(promptNextFloors, e.cfg.StopWait)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			glog.Errorf("Reading next floors at floor %d: %v", target, err)
		}
		return nil
	}
	if !ok {
		glog.V(1).Infof("No new floors within %v at floor %d", e.cfg.StopWait, target)
		return nil
	}

	floors := validator.Validate(raw, e.cfg.NumFloors)
	fmt.Fprintln(e.out, "Doors closing...")
	return floors
}

func (e *Elevator) setState(s stateFSM) {
	if e.state != s {
		glog.V(1).Infof("State %v -> %v", e.state, s)
	}
	e.state = s
}
