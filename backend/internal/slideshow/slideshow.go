// Package slideshow drives the display: it lists the images once and then
// shows them one by one, waiting the configured interval between frames.
package slideshow

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"image"
	"sync"
	"time"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/backend/internal/library"
	"vincit.fi/eink-slideshow/backend/internal/startup"
	"vincit.fi/eink-slideshow/common/logger"
)

type Options struct {
	Directory      string
	Interval       time.Duration
	SkipUnreadable bool
	Resume         bool
	FrameCacheSize int
}

type Slideshow struct {
	options    Options
	settings   *apitype.DisplaySettings
	config     api.DeviceConfig
	loader     api.ImageLoader
	normalizer api.Normalizer
	display    api.Display
	sender     api.Sender
	history    api.History
	frames     *FrameCache

	state State
	mux   sync.RWMutex
	now   func() time.Time
}

// NewSlideshow wires the collaborators. history may be nil, in which case
// resuming always starts from the first image.
func NewSlideshow(options Options, settings *apitype.DisplaySettings, config api.DeviceConfig,
	loader api.ImageLoader, normalizer api.Normalizer, display api.Display,
	sender api.Sender, history api.History) *Slideshow {
	return &Slideshow{
		options:    options,
		settings:   settings,
		config:     config,
		loader:     loader,
		normalizer: normalizer,
		display:    display,
		sender:     sender,
		history:    history,
		frames:     NewFrameCache(options.FrameCacheSize),
		state:      Stopped,
		now:        time.Now,
	}
}

func (s *Slideshow) State() State {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state
}

func (s *Slideshow) setState(state State) {
	s.mux.Lock()
	defer s.mux.Unlock()
	logger.Debug.Printf("Slideshow state %s -> %s", s.state, state)
	s.state = state
}

// Run shows images until ctx is cancelled, which is a normal stop and
// returns nil. Configuration, decode and parameter errors end the run.
func (s *Slideshow) Run(ctx context.Context) (err error) {
	if s.options.Interval <= 0 {
		return apitype.NewConfigurationError("interval must be positive, got %s", s.options.Interval)
	}
	if err := s.settings.Validate(); err != nil {
		return err
	}

	images, err := library.LoadImageList(s.options.Directory)
	if err != nil {
		return err
	}
	logger.Info.Printf("Loaded %d images from %s", images.Len(), s.options.Directory)

	runId := uuid.New().String()
	s.sender.SendCommandToTopic(api.SlideshowStarted, &api.SlideshowStartedCommand{
		RunId:     runId,
		Directory: s.options.Directory,
		Total:     images.Len(),
		Time:      s.now(),
	})
	defer func() {
		s.setState(Stopped)
		s.sender.SendCommandToTopic(api.SlideshowStopped, &api.SlideshowStoppedCommand{
			RunId: runId,
			Err:   err,
			Time:  s.now(),
		})
	}()

	if s.config.GetStartupFlag() {
		s.setState(Startup)
		if err := s.showStartupImage(runId, images); err != nil {
			return err
		}
	}

	s.setState(Cycling)
	if s.options.Resume {
		s.resume(images)
	}
	return s.cycle(ctx, runId, images)
}

func (s *Slideshow) cycle(ctx context.Context, runId string, images *apitype.ImageList) error {
	failures := 0
	for ctx.Err() == nil {
		imageFile, index := images.Next()
		logger.Info.Printf("Displaying %s", imageFile.Path())

		if err := s.ShowImage(imageFile); err != nil {
			if !s.options.SkipUnreadable || !errors.Is(err, apitype.ErrDecode) {
				return err
			}
			failures++
			logger.Warn.Printf("Skipping %s: %s", imageFile.Path(), err)
			if failures >= images.Len() {
				logger.Error.Printf("None of the %d images could be shown", images.Len())
				return err
			}
			continue
		}
		failures = 0

		s.sender.SendCommandToTopic(api.ImageShown, &api.ImageShownCommand{
			RunId: runId,
			Path:  imageFile.Path(),
			Index: index,
			Total: images.Len(),
			Time:  s.now(),
		})

		if !sleep(ctx, s.options.Interval) {
			break
		}
	}
	logger.Info.Printf("Slideshow stopped")
	return nil
}

// ShowImage decodes, normalizes and renders a single image. Normalized
// frames are reused from the frame cache when it is enabled.
func (s *Slideshow) ShowImage(imageFile *apitype.ImageFile) error {
	if frame, found := s.frames.Get(imageFile.Path()); found {
		logger.Trace.Printf("Using cached frame for '%s'", imageFile.Path())
		return s.display.Render(frame)
	}

	img, err := s.loader.LoadImage(imageFile)
	if err != nil {
		return err
	}
	normalized, err := s.normalize(img)
	if err != nil {
		return err
	}
	s.frames.Put(imageFile.Path(), normalized)
	return s.display.Render(normalized)
}

func (s *Slideshow) normalize(img image.Image) (image.Image, error) {
	return s.normalizer.Normalize(img, s.settings)
}

func (s *Slideshow) render(img image.Image) error {
	normalized, err := s.normalize(img)
	if err != nil {
		return err
	}
	return s.display.Render(normalized)
}

func (s *Slideshow) showStartupImage(runId string, images *apitype.ImageList) error {
	logger.Info.Printf("Displaying startup image")
	lines := []string{
		"eink-slideshow",
		fmt.Sprintf("%d images in %s", images.Len(), s.options.Directory),
		fmt.Sprintf("%s, every %s", s.settings.Resolution, s.options.Interval),
	}
	if err := s.render(startup.Generate(s.settings.SourceResolution(), lines)); err != nil {
		return err
	}

	// A crash before this point shows the startup image once more
	if err := s.config.UpdateValue(api.StartupKey, false, true); err != nil {
		logger.Warn.Printf("Could not clear startup flag: %s", err)
	}
	s.sender.SendCommandToTopic(api.StartupShown, &api.StartupShownCommand{
		RunId: runId,
		Time:  s.now(),
	})
	return nil
}

func (s *Slideshow) resume(images *apitype.ImageList) {
	if s.history == nil {
		return
	}
	if path, found := s.history.LastShownPath(); found {
		if index := images.IndexOf(path); index >= 0 {
			logger.Info.Printf("Resuming after %s", path)
			images.Seek(index + 1)
		} else {
			logger.Info.Printf("Last shown image %s is no longer in the list", path)
		}
	}
}

// sleep returns false if ctx was cancelled before the interval passed.
func sleep(ctx context.Context, interval time.Duration) bool {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
