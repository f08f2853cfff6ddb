package model

import (
	"strings"
	"time"
)

// Entry represents one published content piece as produced by the site
// renderer: metadata plus a sanitized, already-rendered HTML body.
type Entry struct {
	ID        string    `json:"id"` // derived from the permalink, stable across edits
	Title     string    `json:"title"`
	Permalink string    `json:"permalink"`
	Published time.Time `json:"published"`
	Updated   time.Time `json:"updated"`
	Tags      []string  `json:"tags"`
	Summary   string    `json:"summary"`
	Body      string    `json:"body"`
}

// HasTag reports whether the entry carries the tag (case-insensitive).
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
