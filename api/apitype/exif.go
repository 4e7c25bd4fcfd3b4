package apitype

import (
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"image"
	"image/color"
	"io"
)

type ExifData struct {
	orientation uint8
	rotation    float64
	flipped     bool
}

const exifUnchangedOrientation = 1

func NewInvalidExifData() *ExifData {
	return &ExifData{exifUnchangedOrientation, 0, false}
}

func NewExifData(decodedExif *exif.Exif) (*ExifData, error) {
	if orientation, err := GetInt(decodedExif, exif.Orientation); err != nil {
		return NewInvalidExifData(), err
	} else {
		angle, flip := ExifOrientationToAngleAndFlip(orientation)
		return &ExifData{
			orientation: uint8(orientation),
			rotation:    angle,
			flipped:     flip,
		}, nil
	}
}

// DecodeExifData reads the EXIF block from an image stream. Streams without
// EXIF (PNG, BMP, stripped JPEGs) return the unchanged orientation and the
// decoder's error.
func DecodeExifData(reader io.Reader) (*ExifData, error) {
	if decodedExif, err := exif.Decode(reader); err != nil {
		return NewInvalidExifData(), err
	} else {
		return NewExifData(decodedExif)
	}
}

func (s *ExifData) ExifOrientation() uint8 {
	return s.orientation
}

func (s *ExifData) Rotation() float64 {
	return s.rotation
}

func (s *ExifData) Flipped() bool {
	return s.flipped
}

func (s *ExifData) IsUnchanged() bool {
	return s.rotation == 0 && !s.flipped
}

func GetInt(decodedExif *exif.Exif, tagName exif.FieldName) (int, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return 0, err
	} else {
		return tag.Int(0)
	}
}

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func ExifRotateImage(loadedImage image.Image, exifData *ExifData) image.Image {
	if exifData == nil || exifData.IsUnchanged() {
		return loadedImage
	}
	if exifData.rotation != noRotate {
		loadedImage = imaging.Rotate(loadedImage, exifData.rotation, color.Black)
	}
	if exifData.flipped {
		return imaging.FlipH(loadedImage)
	} else {
		return loadedImage
	}
}
