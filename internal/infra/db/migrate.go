package db

import (
	"database/sql"
)

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS accounts (
    id             SERIAL PRIMARY KEY,
    name           TEXT NOT NULL,
    credential_ref TEXT NOT NULL,
    created_at     TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS pages (
    id          SERIAL PRIMARY KEY,
    external_id TEXT NOT NULL UNIQUE,
    name        TEXT NOT NULL,
    active      BOOLEAN DEFAULT TRUE,
    created_at  TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS page_assignments (
    id         SERIAL PRIMARY KEY,
    page_id    INTEGER NOT NULL REFERENCES pages(id),
    account_id INTEGER NOT NULL REFERENCES accounts(id),
    is_primary BOOLEAN DEFAULT FALSE,
    created_at TIMESTAMPTZ DEFAULT now(),
    UNIQUE(page_id, account_id)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS time_slots (
    id          SERIAL PRIMARY KEY,
    page_id     INTEGER NOT NULL REFERENCES pages(id),
    day_of_week SMALLINT NOT NULL,
    time_of_day VARCHAR(5) NOT NULL,
    recurring   BOOLEAN DEFAULT TRUE,
    UNIQUE(page_id, day_of_week, time_of_day)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS contents (
    id         SERIAL PRIMARY KEY,
    body       TEXT NOT NULL,
    media_refs JSONB,
    status     VARCHAR(20) NOT NULL DEFAULT 'draft',
    created_at TIMESTAMPTZ DEFAULT now(),
    updated_at TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS scheduled_items (
    id               SERIAL PRIMARY KEY,
    content_id       INTEGER NOT NULL REFERENCES contents(id),
    page_id          INTEGER NOT NULL REFERENCES pages(id),
    scheduled_time   TIMESTAMPTZ NOT NULL,
    status           VARCHAR(20) NOT NULL DEFAULT 'pending',
    retry_count      INTEGER NOT NULL DEFAULT 0,
    max_retries      INTEGER NOT NULL DEFAULT 3,
    external_post_id TEXT,
    last_error       TEXT,
    created_at       TIMESTAMPTZ DEFAULT now(),
    updated_at       TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS notifications (
    id                SERIAL PRIMARY KEY,
    kind              VARCHAR(30) NOT NULL,
    title             TEXT NOT NULL,
    message           TEXT NOT NULL,
    page_id           INTEGER REFERENCES pages(id),
    scheduled_item_id INTEGER REFERENCES scheduled_items(id),
    read              BOOLEAN DEFAULT FALSE,
    created_at        TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS publish_logs (
    id                SERIAL PRIMARY KEY,
    scheduled_item_id INTEGER NOT NULL REFERENCES scheduled_items(id),
    content_id        INTEGER NOT NULL REFERENCES contents(id),
    page_id           INTEGER NOT NULL REFERENCES pages(id),
    status            VARCHAR(20) NOT NULL,
    external_post_id  TEXT,
    error_message     TEXT,
    attempted_at      TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// due query: WHERE status = 'pending' AND scheduled_time <= now()
		`CREATE INDEX IF NOT EXISTS idx_scheduled_items_status_time ON scheduled_items(status, scheduled_time)`,
		// collision window scans per page
		`CREATE INDEX IF NOT EXISTS idx_scheduled_items_page_time ON scheduled_items(page_id, scheduled_time)`,
		`CREATE INDEX IF NOT EXISTS idx_scheduled_items_content_id ON scheduled_items(content_id)`,
		`CREATE INDEX IF NOT EXISTS idx_page_assignments_page_id ON page_assignments(page_id)`,
		`CREATE INDEX IF NOT EXISTS idx_page_assignments_account_id ON page_assignments(account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_time_slots_page_id ON time_slots(page_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(read) WHERE read = FALSE`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_created_at ON notifications(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_publish_logs_item_id ON publish_logs(scheduled_item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_active ON pages(active) WHERE active = TRUE`,
	}

	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

func MigrateDown(db *sql.DB) error {
	statements := []string{
		`DROP TABLE IF EXISTS publish_logs CASCADE`,
		`DROP TABLE IF EXISTS notifications CASCADE`,
		`DROP TABLE IF EXISTS scheduled_items CASCADE`,
		`DROP TABLE IF EXISTS contents CASCADE`,
		`DROP TABLE IF EXISTS time_slots CASCADE`,
		`DROP TABLE IF EXISTS page_assignments CASCADE`,
		`DROP TABLE IF EXISTS pages CASCADE`,
		`DROP TABLE IF EXISTS accounts CASCADE`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
