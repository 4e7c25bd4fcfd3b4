package apitype

import (
	"fmt"
	"image"
	"math"
)

type Resolution struct {
	width  int
	height int
}

func ResolutionOf(width int, height int) Resolution {
	return Resolution{width, height}
}

func ResolutionFromRectangle(rectangle image.Rectangle) Resolution {
	return Resolution{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

func (s Resolution) Width() int {
	return s.width
}

func (s Resolution) Height() int {
	return s.height
}

func (s Resolution) Rectangle() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Swapped returns the resolution as seen before a quarter turn.
func (s Resolution) Swapped() Resolution {
	return Resolution{width: s.height, height: s.width}
}

func (s Resolution) Validate() error {
	if s.width <= 0 || s.height <= 0 {
		return NewInvalidParameterError("resolution must be positive, got %s", s)
	}
	return nil
}

func (s Resolution) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

// FitWithin returns the size of a source image shrunk to fit inside the
// target while keeping the aspect ratio. Sources that already fit are
// returned as is; the result is never larger than the source. The scaled
// side is rounded up or down, whichever keeps the aspect ratio closer.
func FitWithin(source Resolution, target Resolution) Resolution {
	if source.width <= target.width && source.height <= target.height {
		return source
	}

	aspect := float64(source.width) / float64(source.height)
	width, height := target.width, target.height
	if float64(width)/float64(height) >= aspect {
		width = roundAspect(float64(height)*aspect, func(n int) float64 {
			return math.Abs(aspect - float64(n)/float64(height))
		})
	} else {
		height = roundAspect(float64(width)/aspect, func(n int) float64 {
			if n == 0 {
				return 0
			}
			return math.Abs(aspect - float64(width)/float64(n))
		})
	}
	return Resolution{width: width, height: height}
}

// roundAspect picks floor or ceil of value by the smaller aspect error. Ties
// go to floor. The result is at least 1.
func roundAspect(value float64, aspectError func(n int) float64) int {
	n := int(math.Floor(value))
	if ceil := int(math.Ceil(value)); aspectError(ceil) < aspectError(n) {
		n = ceil
	}
	if n < 1 {
		return 1
	}
	return n
}

// CenterOffset is the top-left position of an image of the given size when
// centered on the target. Odd remainders truncate towards the top-left.
func CenterOffset(target Resolution, size Resolution) image.Point {
	return image.Pt((target.width-size.width)/2, (target.height-size.height)/2)
}
