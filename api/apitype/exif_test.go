package apitype

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"image"
	"testing"
)

func TestExifOrientationToAngleAndFlip(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		orientation int
		angle       float64
		flipped     bool
	}{
		{orientation: 1, angle: 0, flipped: false},
		{orientation: 2, angle: 0, flipped: true},
		{orientation: 3, angle: 180, flipped: false},
		{orientation: 4, angle: 180, flipped: true},
		{orientation: 5, angle: 270, flipped: true},
		{orientation: 6, angle: 270, flipped: false},
		{orientation: 7, angle: 90, flipped: true},
		{orientation: 8, angle: 90, flipped: false},
		{orientation: 0, angle: 0, flipped: false},
		{orientation: 42, angle: 0, flipped: false},
	}
	for _, tt := range tests {
		angle, flipped := ExifOrientationToAngleAndFlip(tt.orientation)
		a.Equal(tt.angle, angle, "orientation %d", tt.orientation)
		a.Equal(tt.flipped, flipped, "orientation %d", tt.orientation)
	}
}

func TestExifRotateImage(t *testing.T) {
	a := assert.New(t)
	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))

	t.Run("Unchanged", func(t *testing.T) {
		a.Same(img, ExifRotateImage(img, NewInvalidExifData()))
		a.Same(img, ExifRotateImage(img, nil))
	})
	t.Run("Quarter turn swaps axes", func(t *testing.T) {
		rotated := ExifRotateImage(img, &ExifData{orientation: 6, rotation: right90})
		a.Equal(30, rotated.Bounds().Dx())
		a.Equal(40, rotated.Bounds().Dy())
	})
	t.Run("Flip keeps axes", func(t *testing.T) {
		flipped := ExifRotateImage(img, &ExifData{orientation: 2, flipped: true})
		a.Equal(40, flipped.Bounds().Dx())
		a.Equal(30, flipped.Bounds().Dy())
	})
}

func TestDecodeExifData_NoExif(t *testing.T) {
	a := assert.New(t)

	data, err := DecodeExifData(bytes.NewReader([]byte("not an image")))

	a.NotNil(err)
	a.Equal(uint8(1), data.ExifOrientation())
	a.True(data.IsUnchanged())
}
