package session_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vsudoku/cmd/vsudoku/classic"
	"github.com/katalvlaran/vsudoku/search"
	"github.com/katalvlaran/vsudoku/session"
)

// ExampleSession_CountSolutions builds a classic 9x9 board with every
// cell but one already filled in, and confirms the missing cell has
// exactly one legal value.
func ExampleSession_CountSolutions() {
	// The Wikipedia example solution, with its last cell hidden.
	const clues = "53467891267219534819834256785976142342685379171392485696153728428741963534528617" + "."

	sh, err := classic.NewShape()
	if err != nil {
		fmt.Println("shape error:", err)
		return
	}
	grid, err := classic.ParseGrid(sh, clues)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	s, err := session.New(sh, classic.Handlers(), search.WithInitialGrid(grid))
	if err != nil {
		fmt.Println("session error:", err)
		return
	}

	n, err := s.CountSolutions(context.Background())
	if err != nil {
		fmt.Println("solve error:", err)
		return
	}
	fmt.Println(n)
	// Output: 1
}
