// Command stabcount answers stabbing count queries read from stdin.
//
// Input is n, then n lines "x1 y1 x2 y2", then m, then m lines "x y". The m
// answers are written to stdout separated by spaces.
package main

import (
	"fmt"
	"os"
)

func main() {
	a := newApp()
	err := a.rootCmd().Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
