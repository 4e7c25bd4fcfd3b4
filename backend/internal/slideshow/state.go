package slideshow

type State int

const (
	Stopped State = iota
	Startup
	Cycling
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "STOPPED"
	case Startup:
		return "STARTUP"
	case Cycling:
		return "CYCLING"
	}
	return "UNKNOWN"
}
