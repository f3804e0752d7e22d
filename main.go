package main

import (
	"os"

	"github.com/stuartp44/hacs-ducobox-connector/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
