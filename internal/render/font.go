package render

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	labelFont     *opentype.Font
	labelFontOnce sync.Once
	labelFontErr  error
)

// faceForSize returns a face of the given pixel size. If the bundled
// TrueType font cannot be loaded the fixed 7x13 bitmap face is used.
func faceForSize(size float64) font.Face {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(goregular.TTF)
		if labelFontErr != nil {
			log.Printf("parsing label font, using bitmap face: %v", labelFontErr)
		}
	})
	if labelFontErr != nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(labelFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("creating %.1fpx label face, using bitmap face: %v", size, err)
		return basicfont.Face7x13
	}
	return face
}
