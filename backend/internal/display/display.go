// Package display contains the collaborators that frames are rendered to:
// an e-paper panel driven through periph.io and a PNG preview file for
// headless runs. Both can be decorated with a snapshot of the current frame.
package display

import (
	"image"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/common/logger"
)

type Driver string

const (
	Preview          Driver = "preview"
	Waveshare2in13v2 Driver = "waveshare2in13v2"
)

type Options struct {
	Driver           Driver
	Resolution       apitype.Resolution
	PreviewFile      string
	SpiPort          string
	CurrentImageFile string
}

// Open creates the display selected by options.Driver. When
// options.CurrentImageFile is set the display is wrapped in a SnapshotDisplay.
func Open(options Options) (api.Display, error) {
	if err := options.Resolution.Validate(); err != nil {
		return nil, err
	}

	var display api.Display
	var err error
	switch options.Driver {
	case Preview, "":
		display, err = NewPreviewDisplay(options.PreviewFile, options.Resolution)
	case Waveshare2in13v2:
		display, err = NewWaveshare2in13v2(options.SpiPort, options.Resolution)
	default:
		return nil, apitype.NewConfigurationError("unknown display driver '%s'", options.Driver)
	}
	if err != nil {
		return nil, err
	}
	logger.Info.Printf("Opened %s display %dx%d", options.Driver, display.Bounds().Dx(), display.Bounds().Dy())

	if options.CurrentImageFile != "" {
		return NewSnapshotDisplay(display, options.CurrentImageFile), nil
	}
	return display, nil
}

func checkFrame(img image.Image, bounds image.Rectangle) error {
	if img == nil {
		return apitype.NewInvalidParameterError("no frame to render")
	}
	if img.Bounds().Dx() != bounds.Dx() || img.Bounds().Dy() != bounds.Dy() {
		return apitype.NewInvalidParameterError("frame is %dx%d but display is %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), bounds.Dx(), bounds.Dy())
	}
	return nil
}
