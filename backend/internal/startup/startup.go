package startup

import (
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
	"image"
	"image/color"
	"vincit.fi/eink-slideshow/api/apitype"
)

const (
	borderWidth = 4.0
	lineSpacing = 1.5
)

// Generate draws the splash frame: black border and the given lines centered
// on a white canvas of the given resolution.
func Generate(resolution apitype.Resolution, lines []string) image.Image {
	width := float64(resolution.Width())
	height := float64(resolution.Height())

	dc := gg.NewContextForImage(imaging.New(resolution.Width(), resolution.Height(), color.White))
	dc.SetColor(color.Black)
	dc.SetLineWidth(borderWidth)
	dc.DrawRectangle(borderWidth/2, borderWidth/2, width-borderWidth, height-borderWidth)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	lineHeight := dc.FontHeight() * lineSpacing
	top := height/2 - lineHeight*float64(len(lines)-1)/2
	for i, line := range lines {
		dc.DrawStringAnchored(line, width/2, top+float64(i)*lineHeight, 0.5, 0.5)
	}

	return dc.Image()
}
