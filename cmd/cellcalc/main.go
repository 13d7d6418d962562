// Command cellcalc classifies unit cells and answers geometric queries from
// the shell.
package main

import "github.com/katalvlaran/lvcryst/internal/cli"

func main() {
	cli.Execute()
}
