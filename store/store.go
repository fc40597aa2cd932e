// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielhkuo/avatar-vote/models"
)

// Store reads and writes the single JSON document backing all durable state.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// DefaultSnapshot returns the document written on first start: three sample
// images, zero votes, voting open, no admin password hash yet.
func DefaultSnapshot() *models.Snapshot {
	return &models.Snapshot{
		SiteName: "QQ群新年頭像投票",
		Images: []models.Image{
			{
				ID:    "default_1",
				URL:   "https://images.unsplash.com/photo-1549451371-64aa98a6f660?w=400&h=400&fit=crop",
				Title: "新年煙花",
			},
			{
				ID:    "default_2",
				URL:   "https://images.unsplash.com/photo-1514415679929-1fd5193f14ce?w=400&h=400&fit=crop",
				Title: "紅色燈籠",
			},
			{
				ID:    "default_3",
				URL:   "https://images.unsplash.com/photo-1548783917-d0fb0be3c4e8?w=400&h=400&fit=crop",
				Title: "金色賀年",
			},
		},
		Votes: map[string]int{
			"default_1": 0,
			"default_2": 0,
			"default_3": 0,
		},
		UserVotes: map[string][]string{},
		Status:    models.StatusOpen,
	}
}

// Load reads the document from disk. A missing file is not an error: the
// default snapshot is written out and returned, so the canonical file always
// exists after the first successful Load. Older documents missing fields
// (from before a field existed) are merged over the defaults so they pick up
// new fields without losing data. Malformed JSON is fatal.
func (s *Store) Load() (*models.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		snap := DefaultSnapshot()
		if err := s.Save(snap); err != nil {
			return nil, fmt.Errorf("failed to write default data file: %w", err)
		}
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var stored models.Snapshot
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("data file %s is corrupt: %w", s.path, err)
	}

	return merge(&stored), nil
}

// merge fills any field the stored document is missing from the defaults.
func merge(stored *models.Snapshot) *models.Snapshot {
	def := DefaultSnapshot()
	if stored.SiteName == "" {
		stored.SiteName = def.SiteName
	}
	if stored.Images == nil {
		stored.Images = def.Images
	}
	if stored.Votes == nil {
		stored.Votes = def.Votes
	}
	if stored.UserVotes == nil {
		stored.UserVotes = def.UserVotes
	}
	if stored.Status == "" {
		stored.Status = def.Status
	}
	return stored
}

// Save writes the full document to a temp file in the same directory, then
// renames it over the canonical path. A crash mid-write leaves the previous
// document intact; a partial file is never observable at the canonical path.
func (s *Store) Save(snap *models.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to encode data file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp data file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp data file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
