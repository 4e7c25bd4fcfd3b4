//go:build !libjpeg

package imageloader

import (
	"github.com/disintegration/imaging"
	"image"
	"io"
	"vincit.fi/eink-slideshow/api/apitype"
)

const decoderName = "imaging"

// decodeImage handles every format registered with the image package;
// imaging pulls in png, jpeg, bmp and tiff.
func decodeImage(imageFile *apitype.ImageFile, reader io.Reader) (image.Image, error) {
	return imaging.Decode(reader)
}
