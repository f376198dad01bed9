package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/SyreeseOfficial/Momentum/internal/engine"
	"github.com/SyreeseOfficial/Momentum/internal/logger"
	"github.com/SyreeseOfficial/Momentum/internal/models"
)

type Store struct {
	Version  int                       `json:"version"`
	Settings models.Settings           `json:"settings"`
	Trackers map[string]models.Tracker `json:"trackers"`
	History  models.HistoryLog         `json:"history"`
	Meta     map[string]string         `json:"meta"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func emptyStore() *Store {
	return &Store{
		Version: 1,
		Settings: models.Settings{
			ReminderEnabled: false,
			ReminderTime:    "20:00",
		},
		Trackers: make(map[string]models.Tracker),
		History:  models.HistoryLog{},
		Meta:     make(map[string]string),
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'momentum init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Malformed data degrades to empty collections rather than
		// blocking the app; the first reconcile then runs the
		// first-run path.
		logger.Warn("storage file is malformed, starting from empty state", "path", s.path, "err", err)
		s.store = emptyStore()
		return nil
	}

	// Ensure collections are initialized
	if s.store.Trackers == nil {
		s.store.Trackers = make(map[string]models.Tracker)
	}
	if s.store.History == nil {
		s.store.History = models.HistoryLog{}
	}
	if s.store.Meta == nil {
		s.store.Meta = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddTracker(tracker models.Tracker) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Trackers[tracker.ID] = tracker
	return s.save()
}

func (s *JSONStore) GetTracker(id string) (models.Tracker, error) {
	if s.store == nil {
		return models.Tracker{}, fmt.Errorf("storage not loaded")
	}

	tracker, ok := s.store.Trackers[id]
	if !ok {
		return models.Tracker{}, fmt.Errorf("tracker not found: %s", id)
	}

	return tracker, nil
}

func (s *JSONStore) GetTrackerByName(name string) (models.Tracker, error) {
	if s.store == nil {
		return models.Tracker{}, fmt.Errorf("storage not loaded")
	}

	for _, tracker := range s.store.Trackers {
		if tracker.Name == name {
			return tracker, nil
		}
	}
	return models.Tracker{}, fmt.Errorf("tracker not found: %s", name)
}

func (s *JSONStore) GetAllTrackers() ([]models.Tracker, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	trackers := make([]models.Tracker, 0, len(s.store.Trackers))
	for _, tracker := range s.store.Trackers {
		trackers = append(trackers, tracker)
	}
	sort.Slice(trackers, func(i, j int) bool {
		return trackers[i].SortOrder < trackers[j].SortOrder
	})

	return trackers, nil
}

func (s *JSONStore) UpdateTracker(tracker models.Tracker) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Trackers[tracker.ID]; !ok {
		return fmt.Errorf("tracker not found: %s", tracker.ID)
	}

	s.store.Trackers[tracker.ID] = tracker
	return s.save()
}

func (s *JSONStore) DeleteTracker(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Trackers[id]; !ok {
		return fmt.Errorf("tracker not found: %s", id)
	}

	delete(s.store.Trackers, id)
	return s.save()
}

func (s *JSONStore) GetHistory() (models.HistoryLog, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	history := make(models.HistoryLog, len(s.store.History))
	copy(history, s.store.History)
	return history, nil
}

func (s *JSONStore) UpsertHistoryRecord(record models.HistoryRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.History = s.store.History.Upsert(record)
	return s.save()
}

func (s *JSONStore) DeleteHistoryRecord(date string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.History.Find(date); !ok {
		return fmt.Errorf("no history record for date: %s", date)
	}

	s.store.History = s.store.History.Delete(date)
	return s.save()
}

func (s *JSONStore) GetLastActiveDate() (string, error) {
	return s.GetMeta(MetaLastActiveDate)
}

func (s *JSONStore) SetLastActiveDate(date string) error {
	return s.SetMeta(MetaLastActiveDate, date)
}

func (s *JSONStore) GetMeta(key string) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.store.Meta[key], nil
}

func (s *JSONStore) SetMeta(key, value string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Meta[key] = value
	return s.save()
}

func (s *JSONStore) ApplyRollover(result engine.Result) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	trackers := make(map[string]models.Tracker, len(result.Trackers))
	for _, tracker := range result.Trackers {
		trackers[tracker.ID] = tracker
	}

	s.store.Trackers = trackers
	s.store.History = result.History
	s.store.Meta[MetaLastActiveDate] = result.DateKey
	return s.save()
}

func (s *JSONStore) Clear() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store = emptyStore()
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - A store is not safe for concurrent use by multiple goroutines
//     without external synchronization. In particular, concurrent
//     rollover reconciliations racing on the last-active-date marker
//     must be serialized by the caller; the upsert-by-date archival
//     makes an accidental double-run overwrite rather than duplicate.
//   - Running multiple momentum processes against the same storage
//     path at the same time is not supported.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
