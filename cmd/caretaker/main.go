package main

import (
	"os"

	"github.com/msto63/caretaker/cmd/caretaker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
