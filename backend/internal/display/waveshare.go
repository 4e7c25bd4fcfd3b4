package display

import (
	"fmt"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/waveshare2in13v2"
	"periph.io/x/host/v3"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/common/logger"
)

// NewWaveshare2in13v2 opens the SPI port (empty name picks the first one) and
// initialises a Waveshare 2.13" v2 e-paper hat for full refreshes.
func NewWaveshare2in13v2(spiPort string, resolution apitype.Resolution) (*PanelDisplay, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("%w: periph host init failed: %w", apitype.ErrConfiguration, err)
	}

	port, err := spireg.Open(spiPort)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open SPI port '%s': %w", apitype.ErrConfiguration, spiPort, err)
	}
	logger.Debug.Printf("Opened SPI port %s", port.String())

	dev, err := waveshare2in13v2.NewHat(port, &waveshare2in13v2.EPD2in13v2)
	if err != nil {
		port.Close()
		return nil, err
	}
	if err := dev.Init(); err != nil {
		port.Close()
		return nil, err
	}

	panel, err := NewPanelDisplay(dev, port, resolution)
	if err != nil {
		port.Close()
		return nil, err
	}
	return panel, nil
}
