// Package cubesim provides a discrete-state simulator for NxN
// Rubik's-style twisty puzzles, from 2x2x2 up to 10x10x10.
//
// # Features
//
//   - Full piece model: every cubie tracks its position, orientation
//     and colors in 3D cube coordinates
//   - WCA move notation: face turns, wide turns, slices and rotations
//   - Sequence parsing, inversion and cancellation-based optimization
//   - Reproducible scrambles, move history and undo
//   - Solved-state checks, face-color grids and piece counts
//
// # Quick Start
//
// Create a cube and turn it:
//
//	cube, err := cubesim.NewCube(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' Dw")
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Scrambling and Undo
//
// Scrambles are random but reproducible with a seed:
//
//	scramble, _ := cube.Scramble(25, cubesim.WithSeed(42))
//	fmt.Println("Scramble:", scramble)
//
//	cube.ApplySequence(scramble.Inverse()) // back to solved
//
// Every applied move is recorded and can be taken back:
//
//	cube.ApplyNotation("R U R'")
//	cube.Undo() // reverts R'
//
// # Notation
//
// ParseMove understands standard WCA notation:
//
//	R   U'  F2      // face turns
//	Rw  3Fw U2      // wide turns (two or more layers)
//	M   E'  S2      // slice turns
//	x   y2  z'      // whole-cube rotations
//
// # Predefined Moves
//
// The package provides predefined moves and classic algorithms:
//
//	cubesim.R        // Right clockwise
//	cubesim.RPrime   // Right counter-clockwise
//	cubesim.SexyMove // R U R' U'
//	cubesim.TPerm    // full T permutation
package cubesim
