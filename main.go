package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"elevatorsim/config"
	"elevatorsim/console"
	"elevatorsim/controller"
)

func main() {
	configPath := flag.String("config", "", "YAML file with elevator settings")
	envPath := flag.String("env", "", "dotenv file with ELEVATOR_* settings")
	numFloors := flag.Int("floors", config.DefaultNumFloors, "Number of floors in the building")
	startingFloor := flag.Int("start", config.DefaultStartingFloor, "Floor the elevator starts on")
	stopAtFloor := flag.Bool("stop-at-floor", false, "Ask for more floors at every stop")
	travelTime := flag.Duration("travel-time", config.DefaultTravelTime, "Travel time counted per stop")
	stopWait := flag.Duration("stop-wait", config.DefaultStopWait, "How long to wait for more floors at a stop")

	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	cfg, err := loadConfig(*configPath, *envPath)
	if err != nil {
		glog.Exitf("Loading config: %v", err)
	}

	// flags given on the command line win over files
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "floors":
			cfg.NumFloors = *numFloors
		case "start":
			cfg.StartingFloor = *startingFloor
		case "stop-at-floor":
			cfg.StopAtFloor = *stopAtFloor
		case "travel-time":
			cfg.TravelTime = *travelTime
		case "stop-wait":
			cfg.StopWait = *stopWait
		}
	})

	if err := cfg.Validate(); err != nil {
		glog.Exitf("%v", err)
	}

	elevator := controller.NewElevator(cfg, console.NewReader(os.Stdin, os.Stdout), os.Stdout)
	if err := elevator.Run(); err != nil {
		glog.Exitf("Elevator stopped: %v", err)
	}
}

func loadConfig(configPath, envPath string) (config.Config, error) {
	cfg := config.Default()

	var err error
	if configPath != "" {
		if cfg, err = config.LoadFile(configPath, cfg); err != nil {
			return cfg, err
		}
	}
	if envPath != "" {
		if cfg, err = config.LoadEnv(envPath, cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
