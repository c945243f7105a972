package main

import (
	"os"

	"github.com/aravindvh/portfolio-api/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
