package api

import (
	"image"
	"vincit.fi/eink-slideshow/api/apitype"
)

type ImageLoader interface {
	LoadImage(*apitype.ImageFile) (image.Image, error)
	LoadExifData(*apitype.ImageFile) (*apitype.ExifData, error)
}
