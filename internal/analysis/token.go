package analysis

import (
	"github.com/cubesim/cubesim"
)

// Token encoding for n-gram hashing. A move becomes one byte:
// face index * 6 + (amount - 1), plus 3 for wide turns. Wide turns
// deeper than two layers share the two-layer token, which is close
// enough for pattern mining.

var faceIndex = map[cubesim.Face]uint8{
	cubesim.FaceR: 0,
	cubesim.FaceL: 1,
	cubesim.FaceU: 2,
	cubesim.FaceD: 3,
	cubesim.FaceF: 4,
	cubesim.FaceB: 5,
	cubesim.FaceM: 6,
	cubesim.FaceE: 7,
	cubesim.FaceS: 8,
	cubesim.FaceX: 9,
	cubesim.FaceY: 10,
	cubesim.FaceZ: 11,
}

func moveToken(m cubesim.Move) uint8 {
	t := faceIndex[m.Face]*6 + uint8(m.Amount-1)
	if m.Kind == cubesim.KindWide {
		t += 3
	}
	return t
}
