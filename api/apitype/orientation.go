package apitype

import "strconv"

// Orientation is a counter-clockwise quarter turn of the displayed image.
type Orientation int

const (
	Orientation0   Orientation = 0
	Orientation90  Orientation = 90
	Orientation180 Orientation = 180
	Orientation270 Orientation = 270
)

func OrientationOf(degrees int) (Orientation, error) {
	switch Orientation(degrees) {
	case Orientation0, Orientation90, Orientation180, Orientation270:
		return Orientation(degrees), nil
	}
	return Orientation0, NewInvalidParameterError("orientation must be 0, 90, 180 or 270, got %d", degrees)
}

func (s Orientation) Degrees() int {
	return int(s)
}

// Inverse returns the orientation that undoes this one.
func (s Orientation) Inverse() Orientation {
	return Orientation((360 - int(s)) % 360)
}

// SwapsAxes tells if the rotation exchanges width and height.
func (s Orientation) SwapsAxes() bool {
	return s == Orientation90 || s == Orientation270
}

func (s Orientation) String() string {
	return strconv.Itoa(int(s))
}
