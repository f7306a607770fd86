package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubesim/cubesim"
)

// Terminal rendering of cube faces. Every sticker is a two-character
// cell carrying the color initial, drawn on the sticker's color. The
// six faces unfold into the usual cross net:
//
//	    U
//	  L F R B
//	    D

var stickerText = map[string]lipgloss.Color{
	"White":  lipgloss.Color("0"),
	"Yellow": lipgloss.Color("0"),
	"Orange": lipgloss.Color("0"),
	"Red":    lipgloss.Color("15"),
	"Green":  lipgloss.Color("0"),
	"Blue":   lipgloss.Color("15"),
}

// stickerCell renders one sticker as a colored two-character cell.
func stickerCell(c cubesim.Color) string {
	fg, ok := stickerText[c.Name]
	if !ok {
		fg = lipgloss.Color("0")
	}

	initial := "?"
	if c.Name != "" {
		initial = c.Name[:1]
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(fg)
	return style.Render(initial + " ")
}

// renderFace renders a face grid as stacked rows of sticker cells.
func renderFace(grid [][]cubesim.Color) string {
	rows := make([]string, len(grid))
	for i, row := range grid {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(stickerCell(c))
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, "\n")
}

// renderNet renders the whole cube as an unfolded cross of its six
// faces.
func renderNet(cube *cubesim.Cube) string {
	faces := cube.AllFaceColors()
	size := cube.Size()

	up := renderFace(faces[cubesim.FaceU])
	down := renderFace(faces[cubesim.FaceD])
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		renderFace(faces[cubesim.FaceL]),
		renderFace(faces[cubesim.FaceF]),
		renderFace(faces[cubesim.FaceR]),
		renderFace(faces[cubesim.FaceB]),
	)

	// U and D sit above and below F, one face-width in.
	indent := strings.Repeat(" ", size*2)
	up = indentBlock(up, indent)
	down = indentBlock(down, indent)

	return lipgloss.JoinVertical(lipgloss.Left, up, middle, down)
}

// indentBlock prefixes every line of a block with the given indent.
func indentBlock(block, indent string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// renderMoves joins move notations, wrapping at roughly 60 characters
// per line.
func renderMoves(moves cubesim.MoveSequence) string {
	var b strings.Builder
	var line string
	for i, m := range moves {
		n := m.Notation()
		switch {
		case line == "":
			line = n
		case len(line)+len(n)+1 > 60:
			b.WriteString(line)
			b.WriteString("\n")
			line = n
		default:
			line += " " + n
		}
		if i == len(moves)-1 {
			b.WriteString(line)
		}
	}
	return b.String()
}
