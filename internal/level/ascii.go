package level

import (
	"math"
	"strings"
)

// ASCII renders the grid as text where each character covers a
// cellW x cellH pixel block; a block containing any tile prints as '#'.
func ASCII(g *Grid, worldW, worldH, cellW, cellH float64) string {
	if cellW <= 0 || cellH <= 0 {
		return ""
	}
	cols := int(math.Ceil(worldW / cellW))
	rows := int(math.Ceil(worldH / cellH))

	canvas := make([][]byte, rows)
	for i := range canvas {
		canvas[i] = []byte(strings.Repeat(".", cols))
	}

	ts := g.TileSize()
	for _, y := range g.ys {
		row := g.rows[y]
		r0 := int(y / cellH)
		r1 := int((y + ts - 1) / cellH)
		for col, on := range row {
			if !on {
				continue
			}
			x := float64(col) * ts
			c0 := int(x / cellW)
			c1 := int((x + ts - 1) / cellW)
			for r := r0; r <= r1 && r < rows; r++ {
				for c := c0; c <= c1 && c < cols; c++ {
					canvas[r][c] = '#'
				}
			}
		}
	}

	var sb strings.Builder
	for i, line := range canvas {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(line)
	}
	return sb.String()
}
