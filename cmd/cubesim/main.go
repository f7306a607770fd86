// Cubesim - discrete-state NxN Rubik's cube simulator and solver.
package main

import (
	"github.com/cubesim/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
