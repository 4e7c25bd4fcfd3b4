package database

import "time"

type TableExist bool

const (
	TableNotExist TableExist = false
	TableExists   TableExist = true
)

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

type StatusKey string

const (
	LastImagePath StatusKey = "last_image_path"
	LastShownTime StatusKey = "last_shown_timestamp"
)

type Status struct {
	Key         StatusKey `db:"key"`
	Value       string    `db:"value"`
	UpdatedTime time.Time `db:"updated_timestamp"`
}

type Run struct {
	Id          string    `db:"id"`
	Directory   string    `db:"directory"`
	ImageCount  int       `db:"image_count"`
	StartedTime time.Time `db:"started_timestamp"`
	StoppedTime time.Time `db:"stopped_timestamp"`
	Error       string    `db:"error"`
}

type Frame struct {
	Id         int64     `db:"id,omitempty"`
	RunId      string    `db:"run_id"`
	Path       string    `db:"path"`
	FrameIndex int       `db:"frame_index"`
	ShownTime  time.Time `db:"shown_timestamp"`
}
