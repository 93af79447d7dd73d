package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ElevatorState is a read-only view of the car.
type ElevatorState interface {
	GetFloor() int
	GetState() string
}

// TripSummary describes one finished trip.
type TripSummary struct {
	ID         uuid.UUID
	TravelTime time.Duration
	Visited    []int
}

func (s TripSummary) String() string {
	floors := make([]string, 0, len(s.Visited))
	for _, floor := range s.Visited {
		floors = append(floors, strconv.Itoa(floor))
	}
	return fmt.Sprintf("Trip complete. Total travel time: %s seconds. Floors visited: [%s]",
		strconv.FormatFloat(s.TravelTime.Seconds(), 'f', -1, 64), strings.Join(floors, ", "))
}
