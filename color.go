package cubesim

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGB face color with a human-readable name.
type Color struct {
	R, G, B uint8
	Name    string
}

// The six standard face colors.
var (
	White  = Color{255, 255, 255, "White"}
	Yellow = Color{255, 255, 0, "Yellow"}
	Red    = Color{255, 0, 0, "Red"}
	Orange = Color{255, 165, 0, "Orange"}
	Blue   = Color{0, 0, 255, "Blue"}
	Green  = Color{0, 255, 0, "Green"}
)

// Hex returns the color as a lowercase hex string, e.g. "#ff0000".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the individual color components.
func (c Color) RGB() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// String returns the color name.
func (c Color) String() string {
	return c.Name
}

// ColorFromHex parses a hex color string such as "#ff0000" or "ff0000".
// If name is empty, the hex string itself is used as the name.
func ColorFromHex(hex, name string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("cubesim: hex color must be 6 digits, got %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("cubesim: invalid hex color %q: %w", hex, err)
	}
	if name == "" {
		name = s
	}
	return Color{
		R:    uint8(v >> 16),
		G:    uint8(v >> 8),
		B:    uint8(v),
		Name: name,
	}, nil
}

// Palette returns the six standard colors.
func Palette() []Color {
	return []Color{White, Yellow, Red, Orange, Blue, Green}
}

// SolvedColors returns the standard color scheme: which color each face
// shows on a solved cube (White up, Green front).
func SolvedColors() map[Face]Color {
	return map[Face]Color{
		FaceU: White,
		FaceD: Yellow,
		FaceL: Orange,
		FaceR: Red,
		FaceF: Green,
		FaceB: Blue,
	}
}
