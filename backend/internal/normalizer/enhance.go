package normalizer

import (
	"fmt"
	"github.com/disintegration/imaging"
	"image"
	"image/color"
	"math"
	"vincit.fi/eink-slideshow/api/apitype"
)

// Smoothing kernel used as the "blurred" end of the sharpness scale.
var smoothKernel = [9]float64{
	1, 1, 1,
	1, 5, 1,
	1, 1, 1,
}

// ImageContrast scales the distance of every channel from the mean
// luminance. 1.0 keeps the image, 0.0 gives a flat gray image.
type ImageContrast struct {
	factor float64
	apitype.ImageOperation
}

func NewImageContrast(factor float64) apitype.ImageOperation {
	return &ImageContrast{
		factor: factor,
	}
}

func (s *ImageContrast) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	src := imaging.Clone(operationGroup.ImageData())
	mean := meanLuminance(src)
	return imaging.AdjustFunc(src, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: blendChannel(mean, c.R, s.factor),
			G: blendChannel(mean, c.G, s.factor),
			B: blendChannel(mean, c.B, s.factor),
			A: c.A,
		}
	}), nil
}

func (s *ImageContrast) String() string {
	return fmt.Sprintf("Contrast %.2f", s.factor)
}

// ImageSharpness interpolates between a smoothed copy (0.0) and the image
// (1.0). Factors above 1.0 sharpen.
type ImageSharpness struct {
	factor float64
	apitype.ImageOperation
}

func NewImageSharpness(factor float64) apitype.ImageOperation {
	return &ImageSharpness{
		factor: factor,
	}
}

func (s *ImageSharpness) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	src := imaging.Clone(operationGroup.ImageData())
	degenerate := imaging.Convolve3x3(src, smoothKernel, &imaging.ConvolveOptions{Normalize: true})
	return blend(degenerate, src, s.factor), nil
}

func (s *ImageSharpness) String() string {
	return fmt.Sprintf("Sharpness %.2f", s.factor)
}

func meanLuminance(img *image.NRGBA) uint8 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var sum uint64
	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+bounds.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			sum += uint64(row[i])*299 + uint64(row[i+1])*587 + uint64(row[i+2])*114
		}
	}
	return uint8(math.Round(float64(sum) / 1000 / float64(pixels)))
}

// blend returns degenerate + factor * (img - degenerate) per channel, keeping
// the alpha of img. Both images must have the same bounds.
func blend(degenerate *image.NRGBA, img *image.NRGBA, factor float64) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			i := y*img.Stride + x*4
			j := y*degenerate.Stride + x*4
			k := y*dst.Stride + x*4
			dst.Pix[k+0] = blendChannel(degenerate.Pix[j+0], img.Pix[i+0], factor)
			dst.Pix[k+1] = blendChannel(degenerate.Pix[j+1], img.Pix[i+1], factor)
			dst.Pix[k+2] = blendChannel(degenerate.Pix[j+2], img.Pix[i+2], factor)
			dst.Pix[k+3] = img.Pix[i+3]
		}
	}
	return dst
}

func blendChannel(degenerate uint8, value uint8, factor float64) uint8 {
	v := float64(degenerate) + factor*(float64(value)-float64(degenerate))
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
