package normalizer

import (
	"fmt"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"image"
	"image/color"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/common/logger"
)

var background = color.White

type ImageLetterbox struct {
	resolution apitype.Resolution
	apitype.ImageOperation
}

func NewImageLetterbox(resolution apitype.Resolution) apitype.ImageOperation {
	return &ImageLetterbox{
		resolution: resolution,
	}
}

// Apply shrinks the image to fit the resolution (never enlarging it) and
// centers it on a white canvas of exactly the resolution.
func (s *ImageLetterbox) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	img := operationGroup.ImageData()
	source := apitype.ResolutionFromRectangle(img.Bounds())
	scaledSize := apitype.FitWithin(source, s.resolution)

	scaled := img
	if scaledSize != source {
		logger.Trace.Printf("Scaling %s to %s", source, scaledSize)
		scaled = resize.Resize(uint(scaledSize.Width()), uint(scaledSize.Height()), img, resize.Lanczos3)
	}

	canvas := imaging.New(s.resolution.Width(), s.resolution.Height(), background)
	offset := apitype.CenterOffset(s.resolution, scaledSize)
	return imaging.Overlay(canvas, scaled, offset, 1.0), nil
}

func (s *ImageLetterbox) String() string {
	return fmt.Sprintf("Letterbox to %s", s.resolution)
}
