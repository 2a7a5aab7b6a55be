package main

import (
	"fmt"
	"log"
	"os"

	"github.com/echoflaresat/spheretrace/imageio"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <expected> <actual>\n", os.Args[0])
		os.Exit(2)
	}

	expected, err := imageio.Load(os.Args[1])
	if err != nil {
		log.Fatalf("Could not load %q: %v", os.Args[1], err)
	}
	actual, err := imageio.Load(os.Args[2])
	if err != nil {
		log.Fatalf("Could not load %q: %v", os.Args[2], err)
	}

	stats, err := imageio.Diff(expected, actual)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d/%d pixels differ, max channel delta %d\n", stats.Differing, stats.Pixels, stats.MaxDelta)
	if !stats.Equal() {
		os.Exit(1)
	}
}
