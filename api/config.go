package api

import "vincit.fi/eink-slideshow/api/apitype"

const StartupKey = "startup"

type DeviceConfig interface {
	GetConfig(key string) (interface{}, bool)
	GetResolution() apitype.Resolution
	GetStartupFlag() bool
	UpdateValue(key string, value interface{}, write bool) error
}

// History remembers what has been displayed across process restarts.
type History interface {
	LastShownPath() (string, bool)
}
