package apitype

// Enhancement holds optional contrast and sharpness factors. A nil factor
// means the adjustment is not applied at all.
type Enhancement struct {
	Contrast  *float64
	Sharpness *float64
}

func NoEnhancement() Enhancement {
	return Enhancement{}
}

func (s Enhancement) IsEmpty() bool {
	return s.Contrast == nil && s.Sharpness == nil
}

func (s Enhancement) WithContrast(factor float64) Enhancement {
	s.Contrast = &factor
	return s
}

func (s Enhancement) WithSharpness(factor float64) Enhancement {
	s.Sharpness = &factor
	return s
}

type DisplaySettings struct {
	Resolution  Resolution
	Orientation Orientation
	Inverted    bool
	Enhancement Enhancement
}

func (s *DisplaySettings) Validate() error {
	if err := s.Resolution.Validate(); err != nil {
		return err
	}
	if _, err := OrientationOf(s.Orientation.Degrees()); err != nil {
		return err
	}
	return nil
}

// SourceResolution is the canvas size an image should have so that it fills
// the display once rotated.
func (s *DisplaySettings) SourceResolution() Resolution {
	if s.Orientation.SwapsAxes() {
		return s.Resolution.Swapped()
	}
	return s.Resolution
}
