package apitype

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestOrientationOf(t *testing.T) {
	a := assert.New(t)

	for _, degrees := range []int{0, 90, 180, 270} {
		orientation, err := OrientationOf(degrees)
		a.Nil(err)
		a.Equal(degrees, orientation.Degrees())
	}

	for _, degrees := range []int{-90, 45, 360, 91} {
		_, err := OrientationOf(degrees)
		a.True(errors.Is(err, ErrInvalidParameter), "degrees %d", degrees)
	}
}

func TestOrientation_Inverse(t *testing.T) {
	r := require.New(t)

	r.Equal(Orientation0, Orientation0.Inverse())
	r.Equal(Orientation270, Orientation90.Inverse())
	r.Equal(Orientation180, Orientation180.Inverse())
	r.Equal(Orientation90, Orientation270.Inverse())
}

func TestOrientation_SwapsAxes(t *testing.T) {
	a := assert.New(t)

	a.False(Orientation0.SwapsAxes())
	a.True(Orientation90.SwapsAxes())
	a.False(Orientation180.SwapsAxes())
	a.True(Orientation270.SwapsAxes())
}
