// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/avatar-vote/models"
	"github.com/danielhkuo/avatar-vote/store"
)

var (
	ErrVotingClosed      = errors.New("voting is closed")
	ErrImageNotFound     = errors.New("image not found")
	ErrVoteLimitExceeded = errors.New("vote limit exceeded")
	ErrDuplicateURL      = errors.New("image url already exists")
	ErrInvalidSiteName   = errors.New("invalid site name")
	ErrInvalidStatus     = errors.New("invalid status")
)

// Ledger owns the in-memory snapshot after load. Every mutation runs
// read → mutate → durable save under one mutex, so concurrent requests
// serialize and never observe a half-applied transition. If the save fails,
// the in-memory change is rolled back and the error returned: memory never
// diverges from disk.
type Ledger struct {
	mu    sync.Mutex
	data  *models.Snapshot
	store *store.Store
}

// Load reads the snapshot from the store and wraps it in a Ledger.
func Load(st *store.Store) (*Ledger, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, err
	}
	return &Ledger{data: snap, store: st}, nil
}

// VoteResult describes the outcome of one vote toggle.
type VoteResult struct {
	Action         string
	NewCount       int
	Rank           int
	ImageTitle     string
	UserVotes      []string
	UserTotalVotes int
	TotalVoters    int
	Timestamp      time.Time
}

// ToggleVote adds a vote if the user has not voted for the image, removes it
// if they have. Toggling twice returns the ledger to its prior state.
func (l *Ledger) ToggleVote(userID, imageID string) (VoteResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.data.Status == models.StatusClosed {
		return VoteResult{}, ErrVotingClosed
	}

	img, ok := l.findImage(imageID)
	if !ok {
		return VoteResult{}, ErrImageNotFound
	}

	prevCount := l.data.Votes[imageID]
	prevUserVotes := l.data.UserVotes[userID]

	var action string
	if contains(prevUserVotes, imageID) {
		l.data.UserVotes[userID] = remove(prevUserVotes, imageID)
		l.data.Votes[imageID] = max(0, prevCount-1)
		action = models.ActionRemoved
	} else {
		if len(prevUserVotes) >= models.MaxVotesPerUser {
			return VoteResult{}, ErrVoteLimitExceeded
		}
		l.data.UserVotes[userID] = append(append([]string(nil), prevUserVotes...), imageID)
		l.data.Votes[imageID] = prevCount + 1
		action = models.ActionAdded
	}

	if err := l.store.Save(l.data); err != nil {
		// Roll back so memory matches the still-committed document.
		l.data.Votes[imageID] = prevCount
		if prevUserVotes == nil {
			delete(l.data.UserVotes, userID)
		} else {
			l.data.UserVotes[userID] = prevUserVotes
		}
		return VoteResult{}, fmt.Errorf("failed to persist vote: %w", err)
	}

	return VoteResult{
		Action:         action,
		NewCount:       l.data.Votes[imageID],
		Rank:           l.rankLocked(imageID),
		ImageTitle:     img.Title,
		UserVotes:      append([]string(nil), l.data.UserVotes[userID]...),
		UserTotalVotes: len(l.data.UserVotes[userID]),
		TotalVoters:    len(l.data.UserVotes),
		Timestamp:      time.Now(),
	}, nil
}

// AddImage registers a new candidate with a fresh ID and a zero count.
func (l *Ledger) AddImage(url, title string) (models.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.data.Status == models.StatusClosed {
		return models.Image{}, ErrVotingClosed
	}

	url = strings.TrimSpace(url)
	for _, img := range l.data.Images {
		if img.URL == url {
			return models.Image{}, ErrDuplicateURL
		}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = models.DefaultImageTitle
	}
	title = truncate(title, models.MaxTitleLen)

	img := models.Image{
		ID:    uuid.NewString(),
		URL:   url,
		Title: title,
	}
	l.data.Images = append(l.data.Images, img)
	l.data.Votes[img.ID] = 0

	if err := l.store.Save(l.data); err != nil {
		l.data.Images = l.data.Images[:len(l.data.Images)-1]
		delete(l.data.Votes, img.ID)
		return models.Image{}, fmt.Errorf("failed to persist image: %w", err)
	}

	return img, nil
}

// DeleteImage removes a candidate, its count entry, and every reference to it
// in user vote sets, so no orphaned votes survive.
func (l *Ledger) DeleteImage(imageID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.data.Status == models.StatusClosed {
		return ErrVotingClosed
	}

	idx := -1
	for i, img := range l.data.Images {
		if img.ID == imageID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrImageNotFound
	}

	removedImg := l.data.Images[idx]
	removedCount, hadCount := l.data.Votes[imageID]
	touched := map[string][]string{}

	l.data.Images = append(l.data.Images[:idx:idx], l.data.Images[idx+1:]...)
	delete(l.data.Votes, imageID)
	for userID, votes := range l.data.UserVotes {
		if contains(votes, imageID) {
			touched[userID] = votes
			l.data.UserVotes[userID] = remove(votes, imageID)
		}
	}

	if err := l.store.Save(l.data); err != nil {
		l.data.Images = append(l.data.Images[:idx:idx], append([]models.Image{removedImg}, l.data.Images[idx:]...)...)
		if hadCount {
			l.data.Votes[imageID] = removedCount
		}
		for userID, votes := range touched {
			l.data.UserVotes[userID] = votes
		}
		return fmt.Errorf("failed to persist image deletion: %w", err)
	}

	return nil
}

// SetStatus flips voting open or closed. Authorization is the caller's job.
func (l *Ledger) SetStatus(status string) error {
	if status != models.StatusOpen && status != models.StatusClosed {
		return ErrInvalidStatus
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.data.Status
	l.data.Status = status
	if err := l.store.Save(l.data); err != nil {
		l.data.Status = prev
		return fmt.Errorf("failed to persist status: %w", err)
	}
	return nil
}

// SetSiteName trims, caps, and stores the site name.
func (l *Ledger) SetSiteName(name string) (string, error) {
	name = truncate(strings.TrimSpace(name), models.MaxTitleLen)
	if name == "" {
		return "", ErrInvalidSiteName
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.data.SiteName
	l.data.SiteName = name
	if err := l.store.Save(l.data); err != nil {
		l.data.SiteName = prev
		return "", fmt.Errorf("failed to persist site name: %w", err)
	}
	return name, nil
}

// Stats reports totals and the top ten images by count.
func (l *Ledger) Stats() models.Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	ranked := l.rankedLocked()
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	total := 0
	for _, n := range l.data.Votes {
		total += n
	}

	return models.Stats{
		TotalVotes:  total,
		TotalImages: len(l.data.Images),
		TotalVoters: len(l.data.UserVotes),
		TopImages:   ranked,
		Status:      l.data.Status,
		Timestamp:   time.Now(),
	}
}

// UserVotes returns the image IDs the user has voted for. Never nil.
func (l *Ledger) UserVotes(userID string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.data.UserVotes[userID]...)
}

// ClientData returns the state a connected client needs to render.
func (l *Ledger) ClientData() models.ClientData {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clientDataLocked()
}

func (l *Ledger) clientDataLocked() models.ClientData {
	votes := make(map[string]int, len(l.data.Votes))
	for id, n := range l.data.Votes {
		votes[id] = n
	}
	return models.ClientData{
		SiteName: l.data.SiteName,
		Images:   append([]models.Image(nil), l.data.Images...),
		Votes:    votes,
		Status:   l.data.Status,
	}
}

func (l *Ledger) SiteName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data.SiteName
}

func (l *Ledger) Status() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data.Status
}

// ImageTitle reports the current title of an image, if it still exists.
func (l *Ledger) ImageTitle(imageID string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	img, ok := l.findImage(imageID)
	if !ok {
		return "", false
	}
	return img.Title, true
}

func (l *Ledger) PasswordHash() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data.AdminPasswordHash
}

// SetPasswordHash stores the admin password hash. Used once at startup when
// the data file carries no hash yet.
func (l *Ledger) SetPasswordHash(hash string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.data.AdminPasswordHash
	l.data.AdminPasswordHash = hash
	if err := l.store.Save(l.data); err != nil {
		l.data.AdminPasswordHash = prev
		return fmt.Errorf("failed to persist password hash: %w", err)
	}
	return nil
}

// rankedLocked sorts all images by count descending. Ties keep the original
// insertion order, so rankings are stable between identical states.
func (l *Ledger) rankedLocked() []models.RankedImage {
	ranked := make([]models.RankedImage, 0, len(l.data.Images))
	for _, img := range l.data.Images {
		ranked = append(ranked, models.RankedImage{
			ID:    img.ID,
			Title: img.Title,
			Votes: l.data.Votes[img.ID],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})
	return ranked
}

// rankLocked reports the 1-based position of imageID in the current ranking.
func (l *Ledger) rankLocked(imageID string) int {
	for i, r := range l.rankedLocked() {
		if r.ID == imageID {
			return i + 1
		}
	}
	return 0
}

func (l *Ledger) findImage(imageID string) (models.Image, bool) {
	for _, img := range l.data.Images {
		if img.ID == imageID {
			return img, true
		}
	}
	return models.Image{}, false
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
