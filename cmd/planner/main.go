package main

import (
	"os"
	"site-route-planner/internal/cli"
)

// main is the application composition root; commands wire their own adapters.
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
