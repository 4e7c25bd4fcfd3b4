package display

import (
	"github.com/disintegration/imaging"
	"image"
	"image/png"
	"path/filepath"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/common/logger"
	"vincit.fi/eink-slideshow/common/util"
)

// PreviewDisplay writes every frame to a PNG file.
type PreviewDisplay struct {
	path   string
	bounds image.Rectangle

	api.Display
}

func NewPreviewDisplay(path string, resolution apitype.Resolution) (*PreviewDisplay, error) {
	if path == "" {
		return nil, apitype.NewConfigurationError("preview display needs a preview file")
	}
	return &PreviewDisplay{
		path:   path,
		bounds: resolution.Rectangle(),
	}, nil
}

func (s *PreviewDisplay) Render(img image.Image) error {
	if err := checkFrame(img, s.bounds); err != nil {
		return err
	}
	if err := savePng(s.path, img); err != nil {
		return err
	}
	logger.Debug.Printf("Preview written to '%s'", s.path)
	return nil
}

func (s *PreviewDisplay) Bounds() image.Rectangle {
	return s.bounds
}

func (s *PreviewDisplay) Close() error {
	return nil
}

func (s *PreviewDisplay) Path() string {
	return s.path
}

func savePng(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := util.MakeDirectoriesIfNotExist(dir, dir); err != nil {
		return err
	}
	return imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestSpeed))
}
