package validator

import (
	"errors"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

const separator = ","

// Validate parses a comma separated list of floors and returns the ones
// that lie within [1, numFloors], in the order they were entered.
// Tokens that are not whole numbers or are out of range are logged and skipped.
func Validate(raw any, numFloors int) []int {
	floors := make([]int, 0)

	input, ok := raw.(string)
	if !ok {
		glog.Warningf("Expected input to be of type string, but got %T", raw)
		return floors
	}

	for _, token := range strings.Split(input, separator) {
		token = strings.TrimSpace(token)

		floor, err := strconv.Atoi(token)
		if errors.Is(err, strconv.ErrRange) {
			glog.Warningf("Floor number %s not in valid range of [1-%d]...Ignoring", token, numFloors)
			continue
		}
		if err != nil {
			glog.Errorf("Error parsing input %q: %v", token, err)
			continue
		}

		if floor <= 0 || floor > numFloors {
			glog.Warningf("Floor number %d not in valid range of [1-%d]...Ignoring", floor, numFloors)
			continue
		}

		floors = append(floors, floor)
	}

	return floors
}

// Join renders floors in the form accepted by Validate.
func Join(floors []int) string {
	tokens := make([]string, 0, len(floors))
	for _, floor := range floors {
		tokens = append(tokens, strconv.Itoa(floor))
	}
	return strings.Join(tokens, separator)
}
