package controller

import "elevatorsim/types"

var _ types.ElevatorState = (*Elevator)(nil)

func (e *Elevator) GetFloor() int {
	return e.floor
}

func (e *Elevator) GetState() string {
	return e.state.String()
}
