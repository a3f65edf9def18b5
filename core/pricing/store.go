// Package pricing - Snapshot archive.
// The active snapshot is kept in latest.json; each successful refresh first
// moves the previous latest into the history set, which is capped at two
// copies. Files are written via temp file + rename.
package pricing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"archcost/internal/errors"
)

// maxHistory is the bounded retention of archived snapshots
const maxHistory = 2

// Store persists pricing snapshots on the filesystem
type Store struct {
	mu  sync.Mutex
	dir string
}

// ArchiveEntry describes one archived snapshot
type ArchiveEntry struct {
	// File is the filename within the store directory
	File string `json:"file"`

	// ArchivedAt is when the snapshot was displaced by a newer one
	ArchivedAt time.Time `json:"archived_at"`
}

// NewStore creates a store rooted at dir
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.TypeInternal, "failed to create pricing data directory", err)
	}
	return &Store{dir: dir}, nil
}

// Latest returns the most recently committed snapshot, or nil when the store
// is empty (first run).
func (s *Store) Latest() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, "latest.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.TypePricing, "failed to read latest snapshot", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.TypePricing, "corrupt latest snapshot", err)
	}
	return &snap, nil
}

// Commit archives the current latest snapshot (pruning history beyond the
// retention cap) and writes snap as the new latest.
func (s *Store) Commit(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	latestPath := filepath.Join(s.dir, "latest.json")

	// Displace the previous latest into history
	if _, err := os.Stat(latestPath); err == nil {
		archived := fmt.Sprintf("history_%s.json", time.Now().UTC().Format("20060102T150405"))
		if err := os.Rename(latestPath, filepath.Join(s.dir, archived)); err != nil {
			return errors.Wrap(errors.TypePricing, "failed to archive previous snapshot", err)
		}
		if err := s.pruneHistory(); err != nil {
			return err
		}
	}

	return s.writeJSON(latestPath, snap)
}

// History lists archived snapshots, newest first
func (s *Store) History() ([]ArchiveEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyLocked()
}

// Restore returns an archived snapshot by filename so it can be re-applied.
// The restored snapshot becomes the new latest via a normal Commit by the
// caller; the archive itself is left untouched.
func (s *Store) Restore(file string) (*Snapshot, error) {
	if filepath.Base(file) != file || !strings.HasPrefix(file, "history_") {
		return nil, errors.Input("invalid history file name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("snapshot", file)
		}
		return nil, errors.Wrap(errors.TypePricing, "failed to read archived snapshot", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.TypePricing, "corrupt archived snapshot", err)
	}
	return &snap, nil
}

func (s *Store) historyLocked() ([]ArchiveEntry, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.TypePricing, "failed to list snapshot archive", err)
	}

	var entries []ArchiveEntry
	for _, d := range dirents {
		if d.IsDir() || !strings.HasPrefix(d.Name(), "history_") {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		entries = append(entries, ArchiveEntry{File: d.Name(), ArchivedAt: info.ModTime().UTC()})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].File > entries[j].File
	})
	return entries, nil
}

// pruneHistory removes the oldest archives beyond the retention cap
func (s *Store) pruneHistory() error {
	entries, err := s.historyLocked()
	if err != nil {
		return err
	}
	for i := maxHistory; i < len(entries); i++ {
		if err := os.Remove(filepath.Join(s.dir, entries[i].File)); err != nil {
			return errors.Wrap(errors.TypePricing, "failed to prune snapshot archive", err)
		}
	}
	return nil
}

func (s *Store) writeJSON(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypeInternal, "failed to serialize snapshot", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return errors.Wrap(errors.TypePricing, "failed to write snapshot", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return errors.Wrap(errors.TypePricing, "failed to commit snapshot", err)
	}
	return nil
}
