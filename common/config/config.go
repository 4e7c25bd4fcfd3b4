// Package config holds the device configuration: a YAML file that is read
// once at start and written back only when a value is updated with write.
package config

import (
	"errors"
	"gopkg.in/yaml.v3"
	"os"
	"sync"
	"time"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/common/logger"
	"vincit.fi/eink-slideshow/common/util"
)

const DefaultConfigFile = "/etc/eink-slideshow/config.yaml"

type ResolutionValues struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ImageSettingsValues struct {
	Contrast  *float64 `yaml:"contrast,omitempty"`
	Sharpness *float64 `yaml:"sharpness,omitempty"`
}

type DisplayValues struct {
	Driver      string `yaml:"driver"`
	PreviewFile string `yaml:"preview_file"`
	SpiPort     string `yaml:"spi_port"`
}

type Values struct {
	ImageDir         string              `yaml:"image_dir"`
	Interval         time.Duration       `yaml:"interval"`
	Resolution       ResolutionValues    `yaml:"resolution"`
	Orientation      int                 `yaml:"orientation"`
	InvertedImage    bool                `yaml:"inverted_image"`
	ImageSettings    ImageSettingsValues `yaml:"image_settings"`
	Startup          bool                `yaml:"startup"`
	CurrentImageFile string              `yaml:"current_image_file"`
	ExifOrientation  bool                `yaml:"exif_orientation"`
	SkipUnreadable   bool                `yaml:"skip_unreadable"`
	Resume           bool                `yaml:"resume"`
	FrameCacheSize   int                 `yaml:"frame_cache_size"`
	Database         string              `yaml:"database"`
	LogLevel         string              `yaml:"log_level"`
	Display          DisplayValues       `yaml:"display"`
}

func DefaultValues() Values {
	return Values{
		ImageDir:         "/opt/eink/images",
		Interval:         300 * time.Second,
		Resolution:       ResolutionValues{Width: 800, Height: 480},
		Orientation:      0,
		Startup:          true,
		CurrentImageFile: "/tmp/eink-slideshow/current.png",
		Database:         "/var/lib/eink-slideshow/status.db",
		LogLevel:         "INFO",
		Display: DisplayValues{
			Driver:      "preview",
			PreviewFile: "/tmp/eink-slideshow/preview.png",
		},
	}
}

// DeviceConfig holds the effective values and, separately, the values backed
// by the file. Command line overrides only touch the effective values so
// they are never written back.
type DeviceConfig struct {
	path       string
	values     Values
	fileValues Values
	mux        sync.RWMutex

	api.DeviceConfig
}

func NewDeviceConfig(path string, values Values) *DeviceConfig {
	return &DeviceConfig{
		path:       path,
		values:     values,
		fileValues: values,
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error; the defaults are used and Write creates the file.
func Load(path string) (*DeviceConfig, error) {
	values := DefaultValues()

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info.Printf("No configuration in '%s', using defaults", path)
		return NewDeviceConfig(path, values), nil
	} else if err != nil {
		return nil, apitype.NewConfigurationError("could not read %s: %s", path, err)
	}

	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, apitype.NewConfigurationError("could not parse %s: %s", path, err)
	}
	logger.Info.Printf("Configuration loaded from '%s'", path)
	return NewDeviceConfig(path, values), nil
}

func (s *DeviceConfig) Path() string {
	return s.path
}

func (s *DeviceConfig) Values() Values {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.values
}

// ApplyParams overrides file values with the ones given on the command line.
// The overrides last for this process only.
func (s *DeviceConfig) ApplyParams(params *Params) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if params.ImageDir() != "" {
		s.values.ImageDir = params.ImageDir()
	}
	if params.Interval() > 0 {
		s.values.Interval = params.Interval()
	}
	if params.LogLevel() != "" {
		s.values.LogLevel = params.LogLevel()
	}
}

func (s *DeviceConfig) GetConfig(key string) (interface{}, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	asMap, err := s.toMap()
	if err != nil {
		logger.Error.Printf("Could not read configuration key '%s': %s", key, err)
		return nil, false
	}
	value, found := asMap[key]
	return value, found
}

func (s *DeviceConfig) GetResolution() apitype.Resolution {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return apitype.ResolutionOf(s.values.Resolution.Width, s.values.Resolution.Height)
}

func (s *DeviceConfig) GetStartupFlag() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.values.Startup
}

// UpdateValue sets a top level key. The value must be assignable to the key's
// type as YAML would decode it. With write the file is rewritten.
func (s *DeviceConfig) UpdateValue(key string, value interface{}, write bool) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	updated, err := withValue(s.values, key, value)
	if err != nil {
		return err
	}
	updatedFile, err := withValue(s.fileValues, key, value)
	if err != nil {
		return err
	}
	s.values = updated
	s.fileValues = updatedFile
	logger.Debug.Printf("Configuration '%s' set to %v", key, value)

	if write {
		return s.write()
	}
	return nil
}

func (s *DeviceConfig) Write() error {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.write()
}

func (s *DeviceConfig) write() error {
	if s.path == "" {
		return apitype.NewConfigurationError("configuration has no file to write to")
	}
	content, err := yaml.Marshal(&s.fileValues)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(s.path, content, 0644); err != nil {
		return apitype.NewConfigurationError("could not write %s: %s", s.path, err)
	}
	logger.Info.Printf("Configuration written to '%s'", s.path)
	return nil
}

func (s *DeviceConfig) toMap() (map[string]interface{}, error) {
	return toMap(s.values)
}

func toMap(values Values) (map[string]interface{}, error) {
	content, err := yaml.Marshal(&values)
	if err != nil {
		return nil, err
	}
	asMap := map[string]interface{}{}
	if err := yaml.Unmarshal(content, &asMap); err != nil {
		return nil, err
	}
	return asMap, nil
}

// withValue returns a copy of values with the top level key replaced.
func withValue(values Values, key string, value interface{}) (Values, error) {
	asMap, err := toMap(values)
	if err != nil {
		return values, err
	}
	if _, found := asMap[key]; !found {
		return values, apitype.NewConfigurationError("unknown configuration key '%s'", key)
	}
	asMap[key] = value

	content, err := yaml.Marshal(asMap)
	if err != nil {
		return values, apitype.NewConfigurationError("could not encode '%s': %s", key, err)
	}
	var updated Values
	if err := yaml.Unmarshal(content, &updated); err != nil {
		return values, apitype.NewConfigurationError("invalid value for '%s': %s", key, err)
	}
	return updated, nil
}

func (s *DeviceConfig) DisplaySettings() (*apitype.DisplaySettings, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	orientation, err := apitype.OrientationOf(s.values.Orientation)
	if err != nil {
		return nil, err
	}
	enhancement := apitype.NoEnhancement()
	if s.values.ImageSettings.Contrast != nil {
		enhancement = enhancement.WithContrast(*s.values.ImageSettings.Contrast)
	}
	if s.values.ImageSettings.Sharpness != nil {
		enhancement = enhancement.WithSharpness(*s.values.ImageSettings.Sharpness)
	}

	settings := &apitype.DisplaySettings{
		Resolution:  apitype.ResolutionOf(s.values.Resolution.Width, s.values.Resolution.Height),
		Orientation: orientation,
		Inverted:    s.values.InvertedImage,
		Enhancement: enhancement,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *DeviceConfig) Validate() error {
	if _, err := s.DisplaySettings(); err != nil {
		return err
	}

	values := s.Values()
	if values.ImageDir == "" {
		return apitype.NewConfigurationError("image_dir is not set")
	}
	if values.Interval <= 0 {
		return apitype.NewConfigurationError("interval must be positive, got %s", values.Interval)
	}
	if values.FrameCacheSize < 0 {
		return apitype.NewConfigurationError("frame_cache_size must not be negative, got %d", values.FrameCacheSize)
	}
	return nil
}
