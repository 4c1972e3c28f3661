package main

import (
	"os"

	"github.com/custodia-labs/hl7inspect/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}
