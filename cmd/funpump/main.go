// Command funpump browses and buys into bonding-curve token sales from the terminal.
package main

import (
	"os"

	"github.com/adiboy-23/fun-pump/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
