package ui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Each terminal cell shows two vertically stacked dots with the upper
// half block: foreground is the top dot, background the bottom one.
const halfBlock = "▀"

// previewDots returns how many dots tall the preview must be to keep the
// raster's aspect when every cell column is one dot wide.
func previewDots(img image.Image, cols int) int {
	if img == nil || cols <= 0 {
		return 0
	}
	b := img.Bounds()
	if b.Dx() == 0 {
		return 0
	}
	dots := (b.Dy()*cols + b.Dx() - 1) / b.Dx()
	return dots + dots%2
}

// renderPreview down-samples img into a cols × rows block of half-block
// cells. A nil or empty raster renders as nothing.
func renderPreview(img image.Image, cols, rows int) string {
	if img == nil || img.Bounds().Empty() || cols <= 0 || rows <= 0 {
		return ""
	}

	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			top := cellColor(small, x, row*2)
			bottom := cellColor(small, x, row*2+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render(halfBlock))
		}
	}
	return sb.String()
}

// cellColor converts one dot to a terminal color. Transparent dots have
// no color of their own and fall back to the terminal default.
func cellColor(img *image.RGBA, x, y int) lipgloss.TerminalColor {
	c, ok := colorful.MakeColor(img.RGBAAt(x, y))
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.Hex())
}
