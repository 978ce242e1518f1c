// Command vsudoku solves, counts, and inspects variant Sudoku puzzles
// from the terminal.
package main

import "github.com/katalvlaran/vsudoku/cmd/vsudoku/cmd"

func main() {
	cmd.Execute()
}
