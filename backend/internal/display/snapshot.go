package display

import (
	"image"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/common/logger"
)

// SnapshotDisplay saves every frame to a diagnostics file before handing it
// to the wrapped display. The file holds the frame as rendered, not the
// source image.
type SnapshotDisplay struct {
	display api.Display
	path    string

	api.Display
}

func NewSnapshotDisplay(display api.Display, path string) *SnapshotDisplay {
	return &SnapshotDisplay{
		display: display,
		path:    path,
	}
}

func (s *SnapshotDisplay) Render(img image.Image) error {
	if img != nil {
		if err := savePng(s.path, img); err != nil {
			logger.Warn.Printf("Could not write current image '%s': %s", s.path, err)
		}
	}
	return s.display.Render(img)
}

func (s *SnapshotDisplay) Bounds() image.Rectangle {
	return s.display.Bounds()
}

func (s *SnapshotDisplay) Close() error {
	return s.display.Close()
}
