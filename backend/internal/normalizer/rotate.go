package normalizer

import (
	"fmt"
	"github.com/disintegration/imaging"
	"image"
	"vincit.fi/eink-slideshow/api/apitype"
)

type ImageRotateToOrientation struct {
	orientation apitype.Orientation
	apitype.ImageOperation
}

func NewImageRotateToOrientation(orientation apitype.Orientation) apitype.ImageOperation {
	return &ImageRotateToOrientation{
		orientation: orientation,
	}
}

// Apply turns the image counter-clockwise. Quarter turns swap the canvas
// axes so nothing is cropped.
func (s *ImageRotateToOrientation) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	return rotate(operationGroup.ImageData(), s.orientation), nil
}

func (s *ImageRotateToOrientation) String() string {
	return fmt.Sprintf("Rotate to %s", s.orientation)
}

type ImageInvert struct {
	apitype.ImageOperation
}

func NewImageInvert() apitype.ImageOperation {
	return &ImageInvert{}
}

func (s *ImageInvert) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	return imaging.Rotate180(operationGroup.ImageData()), nil
}

func (s *ImageInvert) String() string {
	return "Invert"
}

func rotate(img image.Image, orientation apitype.Orientation) image.Image {
	switch orientation {
	case apitype.Orientation90:
		return imaging.Rotate90(img)
	case apitype.Orientation180:
		return imaging.Rotate180(img)
	case apitype.Orientation270:
		return imaging.Rotate270(img)
	default:
		return nil
	}
}
