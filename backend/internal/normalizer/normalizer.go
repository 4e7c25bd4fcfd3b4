// Package normalizer turns an arbitrary decoded image into a frame that fits
// the display: rotated, letterboxed to the exact resolution and enhanced.
package normalizer

import (
	"image"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/common/logger"
)

type ImageNormalizer struct {
	api.Normalizer
}

func NewNormalizer() api.Normalizer {
	return &ImageNormalizer{}
}

func (s *ImageNormalizer) Normalize(img image.Image, settings *apitype.DisplaySettings) (image.Image, error) {
	if img == nil {
		return nil, apitype.NewInvalidParameterError("no image to normalize")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	group := apitype.NewImageOperationGroup(img, OperationsFor(settings))
	logger.Trace.Printf("Normalizing with %d operations", len(group.Operations()))
	return group.Apply()
}

// OperationsFor lists the pipeline in application order: rotation, inversion,
// letterboxing, contrast and sharpness. Operations that would not change the
// image are left out.
func OperationsFor(settings *apitype.DisplaySettings) []apitype.ImageOperation {
	var operations []apitype.ImageOperation
	if settings.Orientation != apitype.Orientation0 {
		operations = append(operations, NewImageRotateToOrientation(settings.Orientation))
	}
	if settings.Inverted {
		operations = append(operations, NewImageInvert())
	}
	operations = append(operations, NewImageLetterbox(settings.Resolution))
	if settings.Enhancement.Contrast != nil {
		operations = append(operations, NewImageContrast(*settings.Enhancement.Contrast))
	}
	if settings.Enhancement.Sharpness != nil {
		operations = append(operations, NewImageSharpness(*settings.Enhancement.Sharpness))
	}
	return operations
}

// Enhance applies only the contrast and sharpness steps.
func Enhance(img image.Image, enhancement apitype.Enhancement) (image.Image, error) {
	var operations []apitype.ImageOperation
	if enhancement.Contrast != nil {
		operations = append(operations, NewImageContrast(*enhancement.Contrast))
	}
	if enhancement.Sharpness != nil {
		operations = append(operations, NewImageSharpness(*enhancement.Sharpness))
	}
	group := apitype.NewImageOperationGroup(img, operations)
	enhanced, err := group.Apply()
	if err != nil {
		return nil, err
	}
	if !group.Modified() {
		logger.Trace.Printf("No enhancement applied")
	}
	return enhanced, nil
}
