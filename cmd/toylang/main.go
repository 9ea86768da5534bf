package main

import (
	"os"

	"github.com/graeme-hill/toylang-go/cmd/toylang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
