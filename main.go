package main

import (
	"os"

	"github.com/v4r-tuwien/verefine-bringup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
