package api

import "time"

type Topic string

const (
	SlideshowStarted Topic = "slideshow-started"
	StartupShown     Topic = "startup-shown"
	ImageShown       Topic = "image-shown"
	SlideshowStopped Topic = "slideshow-stopped"
)

type Command interface{}

type EmptyCommand struct{}

type SlideshowStartedCommand struct {
	RunId     string
	Directory string
	Total     int
	Time      time.Time
}

type StartupShownCommand struct {
	RunId string
	Time  time.Time
}

type ImageShownCommand struct {
	RunId string
	Path  string
	Index int
	Total int
	Time  time.Time
}

type SlideshowStoppedCommand struct {
	RunId string
	Err   error
	Time  time.Time
}

type Sender interface {
	SendToTopic(topic Topic)
	SendCommandToTopic(topic Topic, command Command)
}
