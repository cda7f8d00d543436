package admin

import (
	"sort"
	"time"
)

type Dashboard struct {
	Users        int64 `json:"users"`
	Jobs         int64 `json:"jobs"`
	Matches      int64 `json:"matches"`
	Applications int64 `json:"applications"`
}

type UserStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type JobStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
}

type ApplicationStats struct {
	Total    int64            `json:"total"`
	Statuses map[string]int64 `json:"statuses"`
}

type ActivityType string

const (
	ActivityFeed        ActivityType = "feed"
	ActivityApplication ActivityType = "application"
	ActivityReaction    ActivityType = "reaction"
)

type Actor struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Activity struct {
	Type   ActivityType `json:"type"`
	ID     string       `json:"_id"`
	FeedID string       `json:"feedId,omitempty"`
	User   *Actor       `json:"user,omitempty"`
	Title  string       `json:"title,omitempty"`
	At     time.Time    `json:"createdAt"`
}

// latest sorts newest first and keeps at most limit items.
func latest(items []Activity, limit int) []Activity {
	sort.SliceStable(items, func(i, j int) bool { return items[i].At.After(items[j].At) })
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

type SystemHealth struct {
	Status     string  `json:"status"`
	Database   string  `json:"db"`
	PingMillis float64 `json:"pingMs,omitempty"`
	Cache      string  `json:"cache"`
	Uptime     string  `json:"uptime"`
	GoVersion  string  `json:"goVersion"`
	Goroutines int     `json:"goroutines"`
	HeapMB     float64 `json:"heapMb"`
}
