//go:build libjpeg

package imageloader

import (
	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"io"
	"vincit.fi/eink-slideshow/api/apitype"
)

const decoderName = "libjpeg"

var options = &jpeg.DecoderOptions{}

// decodeImage uses libjpeg for JPEG files. Build with -tags libjpeg on
// targets that have the library installed.
func decodeImage(imageFile *apitype.ImageFile, reader io.Reader) (image.Image, error) {
	switch imageFile.Extension() {
	case ".jpg", ".jpeg":
		return jpeg.Decode(reader, options)
	default:
		return imaging.Decode(reader)
	}
}
