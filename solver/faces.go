package solver

import "github.com/cubesim/cubesim"

// The four side faces in clockwise order as seen from above.
var sideFaces = [4]cubesim.Face{cubesim.FaceF, cubesim.FaceR, cubesim.FaceB, cubesim.FaceL}

// The row/column coordinates of the four edge stickers on a 3x3 face
// grid.
var edgeCells = [4][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}

// faceGrid returns the sticker grid of an outer face. The faces the
// solvers inspect are always outer, so the error cannot fire.
func faceGrid(cube *cubesim.Cube, face cubesim.Face) [][]cubesim.Color {
	grid, _ := cube.FaceColors(face)
	return grid
}

// All predicates below compare stickers against the center of their own
// face rather than against fixed colors, so they keep working after
// whole-cube rotations.

// hasCross reports whether the four edge stickers of a face match its
// center.
func hasCross(cube *cubesim.Cube, face cubesim.Face) bool {
	return crossEdgeCount(cube, face) == len(edgeCells)
}

// crossEdgeCount counts the edge stickers of a face that match its
// center.
func crossEdgeCount(cube *cubesim.Cube, face cubesim.Face) int {
	grid := faceGrid(cube, face)
	center := grid[1][1]
	count := 0
	for _, cell := range edgeCells {
		if grid[cell[0]][cell[1]] == center {
			count++
		}
	}
	return count
}

// faceUniform reports whether every sticker of a face matches its
// center.
func faceUniform(cube *cubesim.Cube, face cubesim.Face) bool {
	return faceMatchCount(cube, face) == 9
}

// faceMatchCount counts the stickers of a face that match its center.
func faceMatchCount(cube *cubesim.Cube, face cubesim.Face) int {
	grid := faceGrid(cube, face)
	center := grid[1][1]
	count := 0
	for _, row := range grid {
		for _, color := range row {
			if color == center {
				count++
			}
		}
	}
	return count
}

// middleLayerSolved reports whether the middle-row edge stickers of all
// four side faces match their centers.
func middleLayerSolved(cube *cubesim.Cube) bool {
	for _, face := range sideFaces {
		grid := faceGrid(cube, face)
		center := grid[1][1]
		if grid[1][0] != center || grid[1][2] != center {
			return false
		}
	}
	return true
}

// firstTwoLayersSolved reports whether the bottom face is uniform and
// the bottom two rows of every side face match their centers.
func firstTwoLayersSolved(cube *cubesim.Cube) bool {
	if !faceUniform(cube, cubesim.FaceD) {
		return false
	}
	for _, face := range sideFaces {
		grid := faceGrid(cube, face)
		center := grid[1][1]
		for _, row := range [2]int{1, 2} {
			for col := 0; col < 3; col++ {
				if grid[row][col] != center {
					return false
				}
			}
		}
	}
	return true
}

// solvedSideCount counts the side faces whose top sticker row matches
// their center.
func solvedSideCount(cube *cubesim.Cube) int {
	count := 0
	for _, face := range sideFaces {
		grid := faceGrid(cube, face)
		center := grid[1][1]
		if grid[0][0] == center && grid[0][1] == center && grid[0][2] == center {
			count++
		}
	}
	return count
}
