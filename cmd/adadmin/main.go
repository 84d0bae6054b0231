package main

import (
	"os"

	"github.com/D-C-Legacy/ad-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
