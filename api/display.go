package api

import (
	"image"
	"vincit.fi/eink-slideshow/api/apitype"
)

// Display is the hardware facing collaborator. Render shows a frame that
// already has the display's resolution.
type Display interface {
	Render(image.Image) error
	Bounds() image.Rectangle
	Close() error
}

type Normalizer interface {
	Normalize(image.Image, *apitype.DisplaySettings) (image.Image, error)
}
