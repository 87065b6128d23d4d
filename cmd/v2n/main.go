package main

import (
	"github.com/tebeka/atexit"

	"github.com/gnoswap-labs/v2n/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
