package config

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/api/apitype"
)

const testConfig = `
image_dir: /home/pi/images
interval: 10m
resolution:
  width: 600
  height: 448
orientation: 90
inverted_image: true
image_settings:
  contrast: 1.5
startup: true
display:
  driver: waveshare2in13v2
  spi_port: SPI0.0
`

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	a := assert.New(t)

	sut, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	a.Nil(err)
	a.Equal(DefaultValues(), sut.Values())
	a.Equal(300*time.Second, sut.Values().Interval)
	a.True(sut.GetStartupFlag())
	a.Nil(sut.Validate())
}

func TestLoad(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	sut, err := Load(writeConfig(t, testConfig))
	r.Nil(err)

	values := sut.Values()
	a.Equal("/home/pi/images", values.ImageDir)
	a.Equal(10*time.Minute, values.Interval)
	a.Equal(apitype.ResolutionOf(600, 448), sut.GetResolution())
	a.Equal("waveshare2in13v2", values.Display.Driver)
	a.Equal("SPI0.0", values.Display.SpiPort)

	t.Run("Defaults for keys not in file", func(t *testing.T) {
		a.Equal("INFO", values.LogLevel)
		a.Equal(DefaultValues().Database, values.Database)
	})
	t.Run("Display settings", func(t *testing.T) {
		settings, err := sut.DisplaySettings()
		r.Nil(err)
		a.Equal(apitype.Orientation90, settings.Orientation)
		a.True(settings.Inverted)
		r.NotNil(settings.Enhancement.Contrast)
		a.Equal(1.5, *settings.Enhancement.Contrast)
		a.Nil(settings.Enhancement.Sharpness)
	})
}

func TestLoad_InvalidYaml(t *testing.T) {
	a := assert.New(t)

	_, err := Load(writeConfig(t, "interval: [not, a, duration]"))

	a.True(errors.Is(err, apitype.ErrConfiguration))
}

func TestDeviceConfig_GetConfig(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	sut, err := Load(writeConfig(t, testConfig))
	r.Nil(err)

	value, found := sut.GetConfig("startup")
	a.True(found)
	a.Equal(true, value)

	value, found = sut.GetConfig("image_dir")
	a.True(found)
	a.Equal("/home/pi/images", value)

	_, found = sut.GetConfig("no_such_key")
	a.False(found)
}

func TestDeviceConfig_UpdateValue(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	path := writeConfig(t, testConfig)
	sut, err := Load(path)
	r.Nil(err)

	t.Run("Without write", func(t *testing.T) {
		r.Nil(sut.UpdateValue("resume", true, false))
		a.True(sut.Values().Resume)

		reloaded, err := Load(path)
		r.Nil(err)
		a.False(reloaded.Values().Resume)
	})
	t.Run("With write", func(t *testing.T) {
		r.Nil(sut.UpdateValue(api.StartupKey, false, true))
		a.False(sut.GetStartupFlag())

		reloaded, err := Load(path)
		r.Nil(err)
		a.False(reloaded.GetStartupFlag())
		a.True(reloaded.Values().Resume)
		a.Equal(10*time.Minute, reloaded.Values().Interval)
		r.NotNil(reloaded.Values().ImageSettings.Contrast)
		a.Equal(1.5, *reloaded.Values().ImageSettings.Contrast)
		a.Nil(reloaded.Values().ImageSettings.Sharpness)
	})
	t.Run("Unknown key", func(t *testing.T) {
		err := sut.UpdateValue("no_such_key", 1, false)
		a.True(errors.Is(err, apitype.ErrConfiguration))
	})
	t.Run("Wrong type", func(t *testing.T) {
		err := sut.UpdateValue("orientation", "sideways", false)
		a.True(errors.Is(err, apitype.ErrConfiguration))
		a.Equal(90, sut.Values().Orientation)
	})
}

func TestDeviceConfig_WriteCreatesFile(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "etc", "config.yaml")
	sut, err := Load(path)
	r.Nil(err)

	r.Nil(sut.Write())

	reloaded, err := Load(path)
	r.Nil(err)
	a.Equal(sut.Values(), reloaded.Values())
}

func TestDeviceConfig_Validate(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		name   string
		modify func(values *Values)
		err    error
	}{
		{name: "Valid", modify: func(values *Values) {}, err: nil},
		{name: "Zero width", modify: func(values *Values) { values.Resolution.Width = 0 }, err: apitype.ErrInvalidParameter},
		{name: "Negative height", modify: func(values *Values) { values.Resolution.Height = -1 }, err: apitype.ErrInvalidParameter},
		{name: "Orientation", modify: func(values *Values) { values.Orientation = 45 }, err: apitype.ErrInvalidParameter},
		{name: "No image dir", modify: func(values *Values) { values.ImageDir = "" }, err: apitype.ErrConfiguration},
		{name: "Zero interval", modify: func(values *Values) { values.Interval = 0 }, err: apitype.ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := DefaultValues()
			tt.modify(&values)
			err := NewDeviceConfig("", values).Validate()
			if tt.err == nil {
				a.Nil(err)
			} else {
				a.True(errors.Is(err, tt.err), "%v", err)
			}
		})
	}
}

func TestDeviceConfig_ApplyParams(t *testing.T) {
	a := assert.New(t)

	sut := NewDeviceConfig("", DefaultValues())
	sut.ApplyParams(NewParams("", "/mnt/photos", time.Minute, ""))

	a.Equal("/mnt/photos", sut.Values().ImageDir)
	a.Equal(time.Minute, sut.Values().Interval)
	a.Equal("INFO", sut.Values().LogLevel)
}

func TestDeviceConfig_ParamsAreNotWrittenBack(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	r.Nil(os.WriteFile(path, []byte("image_dir: /opt/real\nstartup: true\n"), 0644))

	sut, err := Load(path)
	r.Nil(err)
	sut.ApplyParams(NewParams(path, "/tmp/oneoff", time.Second, "TRACE"))
	r.Nil(sut.UpdateValue(api.StartupKey, false, true))

	a.Equal("/tmp/oneoff", sut.Values().ImageDir)
	a.Equal(time.Second, sut.Values().Interval)
	a.False(sut.Values().Startup)

	reloaded, err := Load(path)
	r.Nil(err)
	a.Equal("/opt/real", reloaded.Values().ImageDir)
	a.Equal(DefaultValues().Interval, reloaded.Values().Interval)
	a.Equal("INFO", reloaded.Values().LogLevel)
	a.False(reloaded.Values().Startup)
}
