package main

import (
	"os"

	"github.com/dshills/threadfmt/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
