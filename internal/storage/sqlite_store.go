package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/SyreeseOfficial/Momentum/internal/engine"
	"github.com/SyreeseOfficial/Momentum/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS trackers (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	count      INTEGER NOT NULL DEFAULT 0,
	daily_goal INTEGER NOT NULL,
	sort_order INTEGER NOT NULL DEFAULT 0,
	is_active  INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS history (
	date         TEXT PRIMARY KEY,
	total_volume INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS history_details (
	history_date TEXT NOT NULL,
	position     INTEGER NOT NULL,
	tracker_name TEXT NOT NULL,
	count        INTEGER NOT NULL,
	goal         INTEGER NOT NULL,
	PRIMARY KEY (history_date, position)
);

CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		defaultSettings := models.Settings{
			ReminderEnabled: false,
			ReminderTime:    "20:00",
		}
		if err := s.SaveSettings(defaultSettings); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'momentum init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent; running it on load covers files
	// created by older versions without a migration framework.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "reminder_enabled":
			settings.ReminderEnabled = value == "true"
		case "reminder_time":
			settings.ReminderTime = value
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	enabled := "false"
	if settings.ReminderEnabled {
		enabled = "true"
	}
	if _, err := stmt.Exec("reminder_enabled", enabled); err != nil {
		return err
	}
	if _, err := stmt.Exec("reminder_time", settings.ReminderTime); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddTracker(tracker models.Tracker) error {
	return s.upsertTracker(s.db, tracker)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *SQLiteStore) upsertTracker(e execer, tracker models.Tracker) error {
	_, err := e.Exec(`
		INSERT OR REPLACE INTO trackers (id, name, count, daily_goal, sort_order, is_active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		tracker.ID, tracker.Name, tracker.Count, tracker.DailyGoal, tracker.SortOrder, tracker.IsActive,
	)
	return err
}

func (s *SQLiteStore) GetTracker(id string) (models.Tracker, error) {
	row := s.db.QueryRow(`
		SELECT id, name, count, daily_goal, sort_order, is_active
		FROM trackers WHERE id = ?`, id)
	return scanTracker(row)
}

func (s *SQLiteStore) GetTrackerByName(name string) (models.Tracker, error) {
	row := s.db.QueryRow(`
		SELECT id, name, count, daily_goal, sort_order, is_active
		FROM trackers WHERE name = ?`, name)
	return scanTracker(row)
}

func scanTracker(row *sql.Row) (models.Tracker, error) {
	var t models.Tracker
	err := row.Scan(&t.ID, &t.Name, &t.Count, &t.DailyGoal, &t.SortOrder, &t.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Tracker{}, fmt.Errorf("tracker not found")
		}
		return models.Tracker{}, err
	}
	return t, nil
}

func (s *SQLiteStore) GetAllTrackers() ([]models.Tracker, error) {
	rows, err := s.db.Query(`
		SELECT id, name, count, daily_goal, sort_order, is_active
		FROM trackers ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trackers []models.Tracker
	for rows.Next() {
		var t models.Tracker
		if err := rows.Scan(&t.ID, &t.Name, &t.Count, &t.DailyGoal, &t.SortOrder, &t.IsActive); err != nil {
			return nil, err
		}
		trackers = append(trackers, t)
	}

	return trackers, rows.Err()
}

func (s *SQLiteStore) UpdateTracker(tracker models.Tracker) error {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM trackers WHERE id = ?", tracker.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("tracker not found: %s", tracker.ID)
	}

	return s.upsertTracker(s.db, tracker)
}

func (s *SQLiteStore) DeleteTracker(id string) error {
	result, err := s.db.Exec("DELETE FROM trackers WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("tracker not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) GetHistory() (models.HistoryLog, error) {
	rows, err := s.db.Query("SELECT date, total_volume FROM history ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := models.HistoryLog{}
	for rows.Next() {
		var r models.HistoryRecord
		if err := rows.Scan(&r.Date, &r.TotalVolume); err != nil {
			return nil, err
		}
		history = append(history, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range history {
		details, err := s.getDetails(history[i].Date)
		if err != nil {
			return nil, err
		}
		history[i].Details = details
	}

	return history, nil
}

func (s *SQLiteStore) getDetails(date string) ([]models.HistoryDetail, error) {
	rows, err := s.db.Query(`
		SELECT tracker_name, count, goal
		FROM history_details WHERE history_date = ? ORDER BY position`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.HistoryDetail
	for rows.Next() {
		var d models.HistoryDetail
		if err := rows.Scan(&d.TrackerName, &d.Count, &d.Goal); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (s *SQLiteStore) UpsertHistoryRecord(record models.HistoryRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := upsertRecord(tx, record); err != nil {
		return err
	}

	return tx.Commit()
}

func upsertRecord(tx *sql.Tx, record models.HistoryRecord) error {
	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO history (date, total_volume) VALUES (?, ?)",
		record.Date, record.TotalVolume,
	); err != nil {
		return err
	}

	// Replace the detail set wholesale to keep the snapshot atomic
	if _, err := tx.Exec("DELETE FROM history_details WHERE history_date = ?", record.Date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO history_details (history_date, position, tracker_name, count, goal)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, d := range record.Details {
		if _, err := stmt.Exec(record.Date, i, d.TrackerName, d.Count, d.Goal); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) DeleteHistoryRecord(date string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM history WHERE date = ?", date)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no history record for date: %s", date)
	}

	if _, err := tx.Exec("DELETE FROM history_details WHERE history_date = ?", date); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetLastActiveDate() (string, error) {
	return s.GetMeta(MetaLastActiveDate)
}

func (s *SQLiteStore) SetLastActiveDate(date string) error {
	return s.SetMeta(MetaLastActiveDate, date)
}

func (s *SQLiteStore) GetMeta(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (s *SQLiteStore) SetMeta(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}

// ApplyRollover writes the whole day transition in one transaction so
// a crash mid-rollover cannot leave counts reset without the archive.
func (s *SQLiteStore) ApplyRollover(result engine.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, tracker := range result.Trackers {
		if err := s.upsertTracker(tx, tracker); err != nil {
			return err
		}
	}

	for _, record := range result.History {
		if err := upsertRecord(tx, record); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		MetaLastActiveDate, result.DateKey,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"trackers", "history", "history_details", "meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
