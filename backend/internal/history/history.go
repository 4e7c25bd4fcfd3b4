package history

import (
	"sync"
	"time"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/backend/internal/database"
	"vincit.fi/eink-slideshow/common/event"
	"vincit.fi/eink-slideshow/common/logger"
)

// Recorder persists slideshow events into the status database. Events arrive
// on the broker's goroutines so every store access happens under mux.
type Recorder struct {
	statusStore *database.StatusStore
	frameStore  *database.FrameStore
	mux         sync.Mutex

	api.History
}

func NewRecorder(statusStore *database.StatusStore, frameStore *database.FrameStore) *Recorder {
	return &Recorder{
		statusStore: statusStore,
		frameStore:  frameStore,
	}
}

func (s *Recorder) SubscribeTo(broker *event.Broker) {
	broker.Subscribe(api.SlideshowStarted, s.onCommand)
	broker.Subscribe(api.StartupShown, s.onCommand)
	broker.Subscribe(api.ImageShown, s.onCommand)
	broker.Subscribe(api.SlideshowStopped, s.onCommand)
}

func (s *Recorder) onCommand(command api.Command) {
	s.mux.Lock()
	defer s.mux.Unlock()

	var err error
	switch c := command.(type) {
	case *api.SlideshowStartedCommand:
		err = s.frameStore.StartRun(&database.Run{
			Id:          c.RunId,
			Directory:   c.Directory,
			ImageCount:  c.Total,
			StartedTime: c.Time,
		})
	case *api.StartupShownCommand:
		err = s.statusStore.SetValue(database.LastShownTime, c.Time.Format(time.RFC3339), c.Time)
	case *api.ImageShownCommand:
		err = s.recordFrame(c)
	case *api.SlideshowStoppedCommand:
		err = s.frameStore.StopRun(c.RunId, c.Time, c.Err)
	default:
		logger.Warn.Printf("Unknown command %T", command)
	}

	if err != nil {
		logger.Error.Printf("Could not record %T: %s", command, err)
	}
}

func (s *Recorder) recordFrame(command *api.ImageShownCommand) error {
	logger.Trace.Printf("Recording frame %d/%d '%s'", command.Index+1, command.Total, command.Path)
	if err := s.frameStore.AddFrame(&database.Frame{
		RunId:      command.RunId,
		Path:       command.Path,
		FrameIndex: command.Index,
		ShownTime:  command.Time,
	}); err != nil {
		return err
	}
	if err := s.statusStore.SetValue(database.LastImagePath, command.Path, command.Time); err != nil {
		return err
	}
	return s.statusStore.SetValue(database.LastShownTime, command.Time.Format(time.RFC3339), command.Time)
}

func (s *Recorder) LastShownPath() (string, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()

	path, found, err := s.statusStore.GetValue(database.LastImagePath)
	if err != nil {
		logger.Warn.Printf("Could not read last shown image: %s", err)
		return "", false
	}
	return path, found
}
