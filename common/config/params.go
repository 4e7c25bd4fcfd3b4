package config

import "time"

// Params are the command line overrides of the configuration file.
type Params struct {
	configFile string
	imageDir   string
	interval   time.Duration
	logLevel   string
}

func NewParams(configFile string, imageDir string, interval time.Duration, logLevel string) *Params {
	return &Params{
		configFile: configFile,
		imageDir:   imageDir,
		interval:   interval,
		logLevel:   logLevel,
	}
}

func NewEmptyParams() *Params {
	return &Params{
		configFile: DefaultConfigFile,
	}
}

func (s *Params) ConfigFile() string {
	return s.configFile
}

func (s *Params) ImageDir() string {
	return s.imageDir
}

func (s *Params) Interval() time.Duration {
	return s.interval
}

func (s *Params) LogLevel() string {
	return s.logLevel
}
