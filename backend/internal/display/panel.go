package display

import (
	"image"
	"io"
	"periph.io/x/conn/v3/display"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/common/logger"
)

// PanelDisplay renders frames to a periph.io display device.
type PanelDisplay struct {
	drawer display.Drawer
	port   io.Closer

	api.Display
}

// NewPanelDisplay takes ownership of port, which may be nil. The panel must
// have exactly the configured resolution.
func NewPanelDisplay(drawer display.Drawer, port io.Closer, resolution apitype.Resolution) (*PanelDisplay, error) {
	bounds := drawer.Bounds()
	if bounds.Dx() != resolution.Width() || bounds.Dy() != resolution.Height() {
		return nil, apitype.NewConfigurationError("%s is %dx%d, configured resolution is %s",
			drawer.String(), bounds.Dx(), bounds.Dy(), resolution.String())
	}
	return &PanelDisplay{
		drawer: drawer,
		port:   port,
	}, nil
}

func (s *PanelDisplay) Render(img image.Image) error {
	if err := checkFrame(img, s.drawer.Bounds()); err != nil {
		return err
	}
	logger.Debug.Printf("Drawing frame to %s", s.drawer.String())
	return s.drawer.Draw(s.drawer.Bounds(), img, img.Bounds().Min)
}

func (s *PanelDisplay) Bounds() image.Rectangle {
	return s.drawer.Bounds()
}

func (s *PanelDisplay) Close() error {
	err := s.drawer.Halt()
	if s.port != nil {
		if closeErr := s.port.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
