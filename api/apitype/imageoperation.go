package apitype

import (
	"image"
	"vincit.fi/eink-slideshow/common/logger"
)

// ImageOperation is a single step of the normalization pipeline. Returning a
// nil image means the operation left the image untouched.
type ImageOperation interface {
	Apply(operationGroup *ImageOperationGroup) (image.Image, error)
	String() string
}

type ImageOperationGroup struct {
	imageData       image.Image
	hasBeenModified bool
	operations      []ImageOperation
}

func NewImageOperationGroup(imageData image.Image, operations []ImageOperation) *ImageOperationGroup {
	return &ImageOperationGroup{
		imageData:       imageData,
		hasBeenModified: false,
		operations:      operations,
	}
}

func (s *ImageOperationGroup) ImageData() image.Image {
	return s.imageData
}

func (s *ImageOperationGroup) Modified() bool {
	return s.hasBeenModified
}

func (s *ImageOperationGroup) Operations() []ImageOperation {
	return s.operations
}

func (s *ImageOperationGroup) SetModified() {
	s.hasBeenModified = true
}

func (s *ImageOperationGroup) Apply() (image.Image, error) {
	for _, operation := range s.operations {
		logger.Trace.Printf("Applying: '%s'", operation)
		imgData, err := operation.Apply(s)
		if err != nil {
			return nil, err
		}

		if imgData != nil {
			s.imageData = imgData
			s.SetModified()
		}
	}
	return s.imageData, nil
}
