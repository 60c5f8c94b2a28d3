package main

import (
	"fmt"
	"os"
	"time"

	"gobot.io/x/gobot/v2/platforms/firmata"

	"simonsays/game"
	"simonsays/shield"
	"simonsays/sound"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "bands":
		path := ""
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		printBands(path)
	case "watch":
		if len(os.Args) < 3 {
			usage()
			return
		}
		pin := "0"
		if len(os.Args) > 3 {
			pin = os.Args[3]
		}
		watch(os.Args[2], pin)
	case "midiports":
		listMIDIPorts()
	case "profile":
		if len(os.Args) < 3 {
			usage()
			return
		}
		writeProfile(os.Args[2])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Shield Calibration Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  bands [profile]     - Print the analog decode bands")
	fmt.Println("  watch <port> [pin]  - Stream decoded keys from a connected shield")
	fmt.Println("  midiports           - List MIDI output ports")
	fmt.Println("  profile <path>      - Write an annotated example profile")
}

func printBands(path string) {
	table := game.DefaultThresholds
	if path != "" {
		profile, err := shield.LoadProfile(path)
		if err != nil {
			fmt.Printf("Error loading profile: %v\n", err)
			return
		}
		table, err = profile.Thresholds()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("=== Decode bands from %s ===\n", path)
	} else {
		fmt.Println("=== Default decode bands ===")
	}

	lower := 0
	for _, band := range table {
		fmt.Printf("  %4d - %4d  %s\n", lower, int(band.Max)-1, band.Key)
		lower = int(band.Max)
	}
	if lower < game.PressedThreshold {
		fmt.Printf("  %4d - %4d  dead zone (no key)\n", lower, game.PressedThreshold-1)
	}
	fmt.Printf("  %4d - %4d  released\n", game.PressedThreshold, game.SampleMax)
}

func watch(port, pin string) {
	fmt.Printf("Connecting to %s...\n", port)

	adaptor := firmata.NewAdaptor(port)
	if err := adaptor.Connect(); err != nil {
		fmt.Printf("Error connecting: %v\n", err)
		return
	}
	defer adaptor.Finalize()

	fmt.Printf("Watching analog pin %s. Press keypad buttons. Ctrl+C to exit.\n", pin)
	fmt.Println("Use the printed samples to pick band limits for your profile.")

	table := game.DefaultThresholds
	lastKey := game.KeyNone
	released := true

	for {
		sample, err := adaptor.AnalogRead(pin)
		if err != nil {
			fmt.Printf("Read error: %v\n", err)
			time.Sleep(time.Second)
			continue
		}

		ts := time.Now().Format("15:04:05.000")
		if sample >= game.PressedThreshold {
			if !released {
				fmt.Printf("[%s] sample=%4d -> released\n", ts, sample)
				released = true
				lastKey = game.KeyNone
			}
		} else {
			key := table.Lookup(sample)
			if released || key != lastKey {
				fmt.Printf("[%s] sample=%4d -> %s\n", ts, sample, key)
				released = false
				lastKey = key
			}
		}

		time.Sleep(10 * time.Millisecond)
	}
}

func listMIDIPorts() {
	ports := sound.Ports()
	if len(ports) == 0 {
		fmt.Println("No MIDI output ports found")
		return
	}

	fmt.Println("=== MIDI Output Ports ===")
	for i, name := range ports {
		fmt.Printf("  %d: %s\n", i, name)
	}
}

func writeProfile(path string) {
	if err := shield.WriteExample(path); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Wrote example profile to %s\n", path)
	fmt.Println("Edit the port, pins and bands to match your hardware, then run:")
	fmt.Printf("  simonsays shield --profile %s\n", path)
}
