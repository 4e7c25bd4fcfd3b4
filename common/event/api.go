package event

import "vincit.fi/eink-slideshow/api"

// Handler receives the command published to a topic on the bus goroutine
// of its subscription.
type Handler func(command api.Command)
