package main

import (
	"os"

	"github.com/acampos/giftwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
