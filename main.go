package main

import (
	"os"

	"github.com/ankitha/wordrow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
