// Package palette maps block ids to display colors.
package palette

import (
	"fmt"

	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
)

// RGB is an 8-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Grey marks "no block".
var Grey = RGB{R: 100, G: 100, B: 100}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorForID spreads ids evenly over the hue circle at full saturation and value.
// Negative ids map to Grey; a non-positive total is treated as one.
func ColorForID(id model.BlockID, total int) RGB {
	if id < 0 {
		return Grey
	}
	if total < 1 {
		total = 1
	}

	h := float64(id) / float64(total)
	sector := int(h * 6)
	f := h*6 - float64(sector)
	q := 1 - f

	var r, g, b float64
	switch sector % 6 {
	case 0:
		r, g, b = 1, f, 0
	case 1:
		r, g, b = q, 1, 0
	case 2:
		r, g, b = 0, 1, f
	case 3:
		r, g, b = 0, q, 1
	case 4:
		r, g, b = f, 0, 1
	default:
		r, g, b = 1, 0, q
	}
	return RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}
