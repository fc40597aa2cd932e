package models

import "time"

// Voting status constants
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// MaxVotesPerUser is the per-visitor vote cap.
const MaxVotesPerUser = 3

// MaxTitleLen caps image titles and the site name.
const MaxTitleLen = 50

// DefaultImageTitle is used when an image is submitted without a title.
const DefaultImageTitle = "新頭像"

// DeletedImageTitle is shown in vote logs for images that no longer exist.
const DeletedImageTitle = "已删除图片"

// Vote log actions
const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// Request types

type ToggleVoteRequest struct {
	ImageID   string `json:"imageId"`
	VisitorID string `json:"visitorId"`
}

type AddImageRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type UpdateConfigRequest struct {
	SiteName string `json:"siteName"`
}

// Response types

type ToggleVoteResponse struct {
	Success   bool     `json:"success"`
	Action    string   `json:"action"`
	NewCount  int      `json:"newCount"`
	UserVotes []string `json:"userVotes"`
}

type AddImageResponse struct {
	Success bool  `json:"success"`
	Image   Image `json:"image"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Status  string `json:"status"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type ConfigResponse struct {
	SiteName string `json:"siteName"`
}

type UpdateConfigResponse struct {
	Success  bool   `json:"success"`
	SiteName string `json:"siteName"`
}

type UserVotesResponse struct {
	UserVotes []string `json:"userVotes"`
}

type LogsResponse struct {
	Logs    []LogEntry `json:"logs"`
	Total   int        `json:"total"`
	HasMore bool       `json:"hasMore"`
}

// Domain types

// Image is one voting candidate. The ID is immutable and unique for the
// lifetime of the data file.
type Image struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Snapshot is the full persisted document: everything that survives a
// restart lives here and is written back as one unit.
type Snapshot struct {
	SiteName          string              `json:"siteName"`
	Images            []Image             `json:"images"`
	Votes             map[string]int      `json:"votes"`
	UserVotes         map[string][]string `json:"userVotes"`
	Status            string              `json:"status"`
	AdminPasswordHash string              `json:"adminPasswordHash"`
}

// ClientData is the state pushed to a freshly connected client and served
// from GET /api/data.
type ClientData struct {
	SiteName string         `json:"siteName"`
	Images   []Image        `json:"images"`
	Votes    map[string]int `json:"votes"`
	Status   string         `json:"status"`
}

// LogEntry records one vote toggle for the admin log view.
type LogEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	UserID         string    `json:"userId"`
	ImageID        string    `json:"imageId"`
	ImageTitle     string    `json:"imageTitle"`
	Action         string    `json:"action"`
	NewCount       int       `json:"newCount"`
	Rank           int       `json:"rank"`
	UserTotalVotes int       `json:"userTotalVotes"`
}

// RankedImage is one row of the stats top list.
type RankedImage struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Votes int    `json:"votes"`
}

// Stats summarizes the current standings for GET /api/stats.
type Stats struct {
	TotalVotes  int           `json:"totalVotes"`
	TotalImages int           `json:"totalImages"`
	TotalVoters int           `json:"totalVoters"`
	TopImages   []RankedImage `json:"topImages"`
	Status      string        `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
