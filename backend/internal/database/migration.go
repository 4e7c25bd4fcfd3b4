package database

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Initial Tables",
		query: `
			CREATE TABLE status (
			    key TEXT PRIMARY KEY,
			    value TEXT,
			    updated_timestamp DATETIME
			);

			CREATE TABLE run (
			    id TEXT PRIMARY KEY,
			    directory TEXT,
			    image_count INT,
			    started_timestamp DATETIME,
			    stopped_timestamp DATETIME,
			    error TEXT
			);
		`,
	},
	{
		id:          1,
		description: "Frame history",
		query: `
			CREATE TABLE frame (
			    id INTEGER PRIMARY KEY,
			    run_id TEXT,
			    path TEXT,
			    frame_index INT,
			    shown_timestamp DATETIME,

			    FOREIGN KEY(run_id) REFERENCES run(id) ON DELETE CASCADE
			);

			CREATE INDEX frame_run_idx ON frame (run_id);
		`,
	},
}
