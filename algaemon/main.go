package main

import (
	"flag"
	"fmt"
	"log"

	"go.bug.st/serial"

	"github.com/itohio/algaemon/pkg/config"
)

func main() {
	var (
		portFlag     = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
		configFlag   = flag.String("config", "config.yaml", "Configuration file path")
		mockFlag     = flag.Bool("mock", false, "Run a local simulation instead of connecting to a board")
		headlessFlag = flag.Bool("headless", false, "Console mode instead of the GUI")
		listFlag     = flag.Bool("list", false, "List available serial ports and exit")
	)
	flag.Parse()

	if *listFlag {
		ports, err := serial.GetPortsList()
		if err != nil {
			log.Fatalf("Failed to list serial ports: %v", err)
		}
		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override serial port if provided via command line
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	var s session
	if *mockFlag {
		s = newLocalSession(cfg)
	} else {
		s, err = newSerialSession(cfg)
		if err != nil {
			log.Fatalf("Failed to connect: %v (use -mock for a local simulation)", err)
		}
	}
	defer s.Close()

	if *headlessFlag {
		runHeadless(s)
		return
	}

	runGUI(cfg, s)
}
