// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	train_path TEXT NOT NULL,
	test_path TEXT NOT NULL,
	train_rows INTEGER NOT NULL,
	balanced_rows INTEGER NOT NULL,
	test_rows INTEGER NOT NULL,
	trees INTEGER NOT NULL,
	learning_rate REAL NOT NULL,
	max_depth INTEGER NOT NULL,
	threshold REAL NOT NULL,
	accuracy REAL NOT NULL,
	precision REAL NOT NULL,
	recall REAL NOT NULL,
	f1 REAL NOT NULL,
	tn INTEGER NOT NULL,
	fp INTEGER NOT NULL,
	fn INTEGER NOT NULL,
	tp INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_time ON runs(time);
`
