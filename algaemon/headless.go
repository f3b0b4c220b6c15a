package main

import (
	"bufio"
	"fmt"
	"os"
)

// runHeadless bridges the session to the terminal: stdin lines become
// commands, protocol output goes to stdout, and local sessions echo the
// display contents between pipe markers.
func runHeadless(s session) {
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			s.Send(scanner.Text())
		}
	}()

	output := s.Output()
	displayCh := s.Display()

	for {
		select {
		case line, ok := <-output:
			if !ok {
				return
			}
			fmt.Println(line)
		case lines := <-displayCh:
			for _, l := range lines {
				fmt.Printf("[LCD] |%s|\n", l)
			}
		}
	}
}
