package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Amount: 1, Kind: KindFace, Layers: 1} // Right clockwise
	RPrime = Move{Face: FaceR, Amount: 3, Kind: KindFace, Layers: 1} // Right counter-clockwise
	R2     = Move{Face: FaceR, Amount: 2, Kind: KindFace, Layers: 1} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Amount: 1, Kind: KindFace, Layers: 1} // Left clockwise
	LPrime = Move{Face: FaceL, Amount: 3, Kind: KindFace, Layers: 1} // Left counter-clockwise
	L2     = Move{Face: FaceL, Amount: 2, Kind: KindFace, Layers: 1} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Amount: 1, Kind: KindFace, Layers: 1} // Up clockwise
	UPrime = Move{Face: FaceU, Amount: 3, Kind: KindFace, Layers: 1} // Up counter-clockwise
	U2     = Move{Face: FaceU, Amount: 2, Kind: KindFace, Layers: 1} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Amount: 1, Kind: KindFace, Layers: 1} // Down clockwise
	DPrime = Move{Face: FaceD, Amount: 3, Kind: KindFace, Layers: 1} // Down counter-clockwise
	D2     = Move{Face: FaceD, Amount: 2, Kind: KindFace, Layers: 1} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Amount: 1, Kind: KindFace, Layers: 1} // Front clockwise
	FPrime = Move{Face: FaceF, Amount: 3, Kind: KindFace, Layers: 1} // Front counter-clockwise
	F2     = Move{Face: FaceF, Amount: 2, Kind: KindFace, Layers: 1} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Amount: 1, Kind: KindFace, Layers: 1} // Back clockwise
	BPrime = Move{Face: FaceB, Amount: 3, Kind: KindFace, Layers: 1} // Back counter-clockwise
	B2     = Move{Face: FaceB, Amount: 2, Kind: KindFace, Layers: 1} // Back 180

	// Slice moves
	M      = Move{Face: FaceM, Amount: 1, Kind: KindSlice, Layers: 1} // Middle slice, follows L
	MPrime = Move{Face: FaceM, Amount: 3, Kind: KindSlice, Layers: 1}
	E      = Move{Face: FaceE, Amount: 1, Kind: KindSlice, Layers: 1} // Equatorial slice, follows D
	EPrime = Move{Face: FaceE, Amount: 3, Kind: KindSlice, Layers: 1}
	S      = Move{Face: FaceS, Amount: 1, Kind: KindSlice, Layers: 1} // Standing slice, follows F
	SPrime = Move{Face: FaceS, Amount: 3, Kind: KindSlice, Layers: 1}

	// Whole-cube rotations
	X      = Move{Face: FaceX, Amount: 1, Kind: KindRotation, Layers: 1} // Rotate like R
	XPrime = Move{Face: FaceX, Amount: 3, Kind: KindRotation, Layers: 1}
	Y      = Move{Face: FaceY, Amount: 1, Kind: KindRotation, Layers: 1} // Rotate like U
	YPrime = Move{Face: FaceY, Amount: 3, Kind: KindRotation, Layers: 1}
	Z      = Move{Face: FaceZ, Amount: 1, Kind: KindRotation, Layers: 1} // Rotate like F
	ZPrime = Move{Face: FaceZ, Amount: 3, Kind: KindRotation, Layers: 1}
)

// Well-known algorithm sequences.
var (
	// SexyMove is R U R' U', the most common trigger sequence.
	SexyMove = mustSequence("R U R' U'")

	// Sledgehammer is R' F R F', another common trigger.
	Sledgehammer = mustSequence("R' F R F'")

	// Sune orients last-layer corners.
	Sune = mustSequence("R U R' U R U2 R'")

	// AntiSune is the mirror of Sune.
	AntiSune = mustSequence("R U2 R' U' R U' R'")

	// JPerm permutes last-layer corners and edges.
	JPerm = mustSequence("R U R' F' R U R' U' R' F R2 U' R'")

	// TPerm swaps two adjacent corners and two opposite edges.
	TPerm = mustSequence("R U R' F' R U2 R' U2 R' F R U R U2 R'")

	// BeginnersCross builds the last-layer cross in the beginner method.
	BeginnersCross = mustSequence("F R U R' U' F'")

	// BeginnersCorner cycles last-layer corners in the beginner method.
	BeginnersCorner = mustSequence("R U R' U' R U R' U' R U R'")

	// FourMoveCross is the alternative last-layer cross sequence.
	FourMoveCross = mustSequence("F U R U' R' F'")
)

// mustSequence parses a known-good notation string for the predefined
// algorithms above; it panics if the notation is ever wrong.
func mustSequence(notation string) MoveSequence {
	seq, err := ParseSequence(notation)
	if err != nil {
		panic(err)
	}
	return seq
}
