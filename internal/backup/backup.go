// Package backup manages point-in-time snapshots of the store file.
// Snapshots live next to the store in a backups/ directory and are
// pruned to a fixed retention count.
package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// MaxSnapshots is the number of snapshots kept after pruning.
	MaxSnapshots = 10
	// DirName is the snapshot directory, relative to the store file.
	DirName = "backups"
	// FilePrefix marks snapshot files in the directory.
	FilePrefix = "momentum-"
)

const timestampLayout = "20060102-150405"

// Info describes one snapshot on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots a single store file. The store may be either a
// SQLite database or a JSON file; SQLite sources are copied with
// VACUUM INTO so a live database snapshots cleanly.
type Manager struct {
	storePath string
	dir       string
}

func NewManager(storePath string) *Manager {
	return &Manager{
		storePath: storePath,
		dir:       filepath.Join(filepath.Dir(storePath), DirName),
	}
}

// Dir returns the snapshot directory path.
func (m *Manager) Dir() string {
	return m.dir
}

// suffix preserves the store's extension so a snapshot restores to
// the same store kind it came from.
func (m *Manager) suffix() string {
	if ext := filepath.Ext(m.storePath); ext != "" {
		return ext
	}
	return ".db"
}

func (m *Manager) isSQLite() bool {
	return m.suffix() != ".json"
}

// Create writes a new snapshot and prunes old ones. It returns the
// path of the snapshot file.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipPrune bool) (string, error) {
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	// Second-precision timestamps collide only within the same
	// second; a counter suffix disambiguates that case.
	timestamp := time.Now().Format(timestampLayout)
	path := filepath.Join(m.dir, FilePrefix+timestamp+m.suffix())
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique snapshot filename")
		}
		path = filepath.Join(m.dir, fmt.Sprintf("%s%s-%d%s", FilePrefix, timestamp, counter, m.suffix()))
	}

	if err := m.copyStore(path); err != nil {
		return "", fmt.Errorf("failed to snapshot store: %w", err)
	}

	if !skipPrune {
		if err := m.prune(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to prune old snapshots: %v\n", err)
		}
	}

	return path, nil
}

func (m *Manager) copyStore(destPath string) error {
	if !m.isSQLite() {
		return copyFile(m.storePath, destPath)
	}

	db, err := sql.Open("sqlite", m.storePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("store appears to be corrupted: %w", err)
	}

	// VACUUM INTO produces a clean standalone copy; fall back to a
	// plain file copy where it is unavailable.
	if _, err := db.Exec("VACUUM INTO ?", destPath); err != nil {
		return copyFile(m.storePath, destPath)
	}
	return nil
}

// List returns available snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.dir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var snapshots []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, FilePrefix) || !strings.HasSuffix(name, m.suffix()) {
			continue
		}

		stampStr := strings.TrimSuffix(strings.TrimPrefix(name, FilePrefix), m.suffix())
		// Strip a collision counter, if any
		if idx := strings.LastIndex(stampStr, "-"); idx > 0 && len(stampStr)-idx < 5 {
			stampStr = stampStr[:idx]
		}
		timestamp, err := time.Parse(timestampLayout, stampStr)
		if err != nil {
			continue
		}

		path := filepath.Join(m.dir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		snapshots = append(snapshots, Info{Path: path, Timestamp: timestamp, Size: info.Size()})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})
	return snapshots, nil
}

func (m *Manager) prune() error {
	snapshots, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxSnapshots; i < len(snapshots); i++ {
		if err := os.Remove(snapshots[i].Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", snapshots[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store file with the given snapshot. The
// current store is snapshotted first so a bad restore is recoverable.
func (m *Manager) Restore(snapshotPath string) error {
	if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
		return fmt.Errorf("snapshot does not exist: %s", snapshotPath)
	}
	if err := m.verify(snapshotPath); err != nil {
		return fmt.Errorf("snapshot is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		safety, err := m.create(true)
		if err != nil {
			return fmt.Errorf("failed to snapshot current store before restore: %w", err)
		}
		fmt.Printf("Created snapshot of current store: %s\n", filepath.Base(safety))
	}

	// Copy to a temp file then rename so the swap is atomic
	tempPath := m.storePath + ".restore.tmp"
	if err := copyFile(snapshotPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy snapshot: %w", err)
	}
	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore store: %w", err)
	}
	return nil
}

func (m *Manager) verify(path string) error {
	if !m.isSQLite() {
		// JSON stores tolerate malformed content at load time, so
		// existence is the only check that applies here.
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
