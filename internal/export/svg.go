// Package export renders RTD curves as standalone SVG images.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/rtdlab/internal/rtd"
)

// CurveSVG renders an E(t) vs t plot for one run: the curve as a path,
// a dashed vertical marker at t = τ, and an axis frame with the run id
// and τ annotated. Returns "" for a curve too short to draw.
func CurveSVG(c rtd.Curve, width, height int) string {
	if len(c.Times) < 2 || len(c.E) < 2 {
		return ""
	}

	minX, maxX := c.Times[0], c.Times[0]
	minY, maxY := c.E[0], c.E[0]
	for i := range c.Times {
		if c.Times[i] < minX {
			minX = c.Times[i]
		}
		if c.Times[i] > maxX {
			maxX = c.Times[i]
		}
		if c.E[i] < minY {
			minY = c.E[i]
		}
		if c.E[i] > maxY {
			maxY = c.E[i]
		}
	}
	if minY > 0 {
		minY = 0
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	// Margins leave room for axis labels.
	const margin = 40.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	toX := func(t float64) float64 { return margin + (t-minX)/rangeX*plotW }
	toY := func(e float64) float64 { return margin + plotH - (e-minY)/rangeY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#333333"/>
`, width, height, width, height, margin, margin, plotW, plotH))

	sb.WriteString(`<path fill="none" stroke="#1f77b4" stroke-width="1.5" d="M`)
	for i := range c.Times {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(c.Times[i]), toY(c.E[i])))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(c.Times[i]), toY(c.E[i])))
		}
	}
	sb.WriteString("\"/>\n")

	// τ marker, clamped to the frame so a tau outside the measured
	// window still draws at the edge.
	tau := c.Tau
	if tau < minX {
		tau = minX
	}
	if tau > maxX {
		tau = maxX
	}
	tx := toX(tau)
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#d62728" stroke-width="1" stroke-dasharray="5,3"/>
`, tx, margin, tx, margin+plotH))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="12" fill="#333333">RTD curve, run %s</text>
`, margin, margin-10, c.RunID))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="11" fill="#d62728">τ = %.2f s</text>
`, tx+4, margin+12, c.Tau))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="11" fill="#333333">t (s)</text>
`, margin+plotW/2, margin+plotH+25))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="11" fill="#333333" transform="rotate(-90 12 %.1f)">E(t)</text>
`, 12.0, margin+plotH/2, margin+plotH/2))

	sb.WriteString("</svg>")
	return sb.String()
}
