package journal

const schema = `
CREATE TABLE IF NOT EXISTS publish_records (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id     TEXT NOT NULL,
    project        TEXT NOT NULL,
    item           TEXT NOT NULL,
    step           TEXT NOT NULL,
    version        INTEGER NOT NULL DEFAULT 0,
    state          TEXT NOT NULL DEFAULT '',
    succeeded      INTEGER NOT NULL DEFAULT 0,
    failed_stage   TEXT,
    artifacts_json TEXT,
    error_message  TEXT,
    created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_publish_records_item_step
    ON publish_records (item, step);
`
