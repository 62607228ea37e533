package main

import (
	"os"

	// operations register themselves into the default registry
	_ "github.com/costaindustries-source/mac-cleaner/pkg/ops"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
