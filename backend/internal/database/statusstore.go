package database

import (
	"errors"
	"github.com/upper/db/v4"
	"time"
	"vincit.fi/eink-slideshow/common/logger"
)

type StatusStore struct {
	database   *Database
	collection db.Collection
}

func NewStatusStore(database *Database) *StatusStore {
	return &StatusStore{
		database: database,
	}
}

func (s *StatusStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("status")
	}
	return s.collection
}

// GetStatus returns nil without an error when the key has never been set.
func (s *StatusStore) GetStatus(key StatusKey) (*Status, error) {
	var status Status
	if err := s.getCollection().Find(db.Cond{"key": key}).One(&status); err != nil {
		if errors.Is(err, db.ErrNoMoreRows) {
			return nil, nil
		}
		return nil, err
	} else {
		return &status, nil
	}
}

func (s *StatusStore) GetValue(key StatusKey) (string, bool, error) {
	if status, err := s.GetStatus(key); err != nil || status == nil {
		return "", false, err
	} else {
		return status.Value, true, nil
	}
}

func (s *StatusStore) SetValue(key StatusKey, value string, timestamp time.Time) error {
	logger.Trace.Printf("Updating %s to '%s'", key, value)
	status := &Status{
		Key:         key,
		Value:       value,
		UpdatedTime: timestamp,
	}

	result := s.getCollection().Find(db.Cond{"key": key})
	if count, err := result.Count(); err != nil {
		return err
	} else if count == 0 {
		_, err := s.getCollection().Insert(status)
		return err
	} else {
		return result.Update(status)
	}
}
