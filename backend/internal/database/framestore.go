package database

import (
	"errors"
	"github.com/upper/db/v4"
	"time"
	"vincit.fi/eink-slideshow/common/logger"
)

type FrameStore struct {
	database *Database
}

func NewFrameStore(database *Database) *FrameStore {
	return &FrameStore{
		database: database,
	}
}

func (s *FrameStore) runs() db.Collection {
	return s.database.Session().Collection("run")
}

func (s *FrameStore) frames() db.Collection {
	return s.database.Session().Collection("frame")
}

// StartRun and StopRun may arrive in either order, so both upsert.
func (s *FrameStore) StartRun(run *Run) error {
	logger.Debug.Printf("Starting run %s", run.Id)
	result := s.runs().Find(db.Cond{"id": run.Id})
	if count, err := result.Count(); err != nil {
		return err
	} else if count == 0 {
		_, err := s.runs().Insert(run)
		return err
	} else {
		return result.Update(map[string]interface{}{
			"directory":         run.Directory,
			"image_count":       run.ImageCount,
			"started_timestamp": run.StartedTime,
		})
	}
}

func (s *FrameStore) StopRun(runId string, stopped time.Time, runErr error) error {
	errorMessage := ""
	if runErr != nil {
		errorMessage = runErr.Error()
	}
	logger.Debug.Printf("Stopping run %s", runId)
	result := s.runs().Find(db.Cond{"id": runId})
	if count, err := result.Count(); err != nil {
		return err
	} else if count == 0 {
		_, err := s.runs().Insert(&Run{
			Id:          runId,
			StoppedTime: stopped,
			Error:       errorMessage,
		})
		return err
	} else {
		return result.Update(map[string]interface{}{
			"stopped_timestamp": stopped,
			"error":             errorMessage,
		})
	}
}

func (s *FrameStore) GetRun(runId string) (*Run, error) {
	var run Run
	if err := s.runs().Find(db.Cond{"id": runId}).One(&run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *FrameStore) AddFrame(frame *Frame) error {
	_, err := s.frames().Insert(frame)
	return err
}

// LatestFrame returns nil without an error when nothing has been shown yet.
func (s *FrameStore) LatestFrame() (*Frame, error) {
	var frame Frame
	if err := s.frames().Find().OrderBy("-id").One(&frame); err != nil {
		if errors.Is(err, db.ErrNoMoreRows) {
			return nil, nil
		}
		return nil, err
	}
	return &frame, nil
}

func (s *FrameStore) CountFrames(runId string) (uint64, error) {
	return s.frames().Find(db.Cond{"run_id": runId}).Count()
}
