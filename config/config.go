package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStartingFloor = 1
	DefaultNumFloors     = 100
	DefaultTravelTime    = 10 * time.Second
	DefaultStopWait      = 10 * time.Second
)

// Keys read by LoadEnv.
const (
	EnvStartingFloor = "ELEVATOR_STARTING_FLOOR"
	EnvNumFloors     = "ELEVATOR_NUM_FLOORS"
	EnvStopAtFloor   = "ELEVATOR_STOP_AT_FLOOR"
	EnvTravelTime    = "ELEVATOR_TRAVEL_TIME"
	EnvStopWait      = "ELEVATOR_STOP_WAIT"
)

var ErrInvalidConfig = errors.New("invalid elevator config")

// Config is fixed once a controller has been built from it.
type Config struct {
	StartingFloor int           `yaml:"starting_floor"`
	NumFloors     int           `yaml:"num_floors"`
	StopAtFloor   bool          `yaml:"stop_at_floor"`
	TravelTime    time.Duration `yaml:"travel_time"`
	StopWait      time.Duration `yaml:"stop_wait"`
}

func Default() Config {
	return Config{
		StartingFloor: DefaultStartingFloor,
		NumFloors:     DefaultNumFloors,
		StopAtFloor:   false,
		TravelTime:    DefaultTravelTime,
		StopWait:      DefaultStopWait,
	}
}

// LoadFile overlays the YAML file at path onto base. Keys missing from the
// file keep their value from base.
func LoadFile(path string, base Config) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("opening config `%s`: %w", path, err)
	}
	defer file.Close()

	c := base
	if err := yaml.NewDecoder(file).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decoding config `%s`: %w", path, err)
	}
	return c, nil
}

// LoadEnv overlays the ELEVATOR_* keys of the dotenv file at path onto base.
func LoadEnv(path string, base Config) (Config, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return base, fmt.Errorf("reading env file `%s`: %w", path, err)
	}

	c := base
	for key, value := range env {
		switch key {
		case EnvStartingFloor:
			err = parseInt(value, &c.StartingFloor)
		case EnvNumFloors:
			err = parseInt(value, &c.NumFloors)
		case EnvStopAtFloor:
			c.StopAtFloor, err = strconv.ParseBool(value)
		case EnvTravelTime:
			c.TravelTime, err = time.ParseDuration(value)
		case EnvStopWait:
			c.StopWait, err = time.ParseDuration(value)
		default:
			continue
		}
		if err != nil {
			return base, fmt.Errorf("%s=%q in `%s`: %w", key, value, path, err)
		}
	}
	return c, nil
}

func parseInt(s string, dst *int) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (c Config) Validate() error {
	if c.NumFloors <= 0 {
		return fmt.Errorf("%w: number of floors must be positive, got %d", ErrInvalidConfig, c.NumFloors)
	}
	if c.StartingFloor < 1 || c.StartingFloor > c.NumFloors {
		return fmt.Errorf("%w: starting floor %d not in [1-%d]", ErrInvalidConfig, c.StartingFloor, c.NumFloors)
	}
	if c.TravelTime < 0 {
		return fmt.Errorf("%w: negative travel time %v", ErrInvalidConfig, c.TravelTime)
	}
	if c.StopWait < 0 {
		return fmt.Errorf("%w: negative stop wait %v", ErrInvalidConfig, c.StopWait)
	}
	return nil
}
