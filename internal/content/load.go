package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"sitefeed/internal/model"

	"gopkg.in/yaml.v3"
)

// frontmatter mirrors the metadata block the site renderer writes above each
// rendered entry artifact.
type frontmatter struct {
	Title   string    `yaml:"title"`
	URL     string    `yaml:"url"`
	Date    time.Time `yaml:"date"`
	Lastmod time.Time `yaml:"lastmod"`
	Tags    []string  `yaml:"tags"`
	Summary string    `yaml:"summary"`
}

const delim = "---"

// ParseFile reads one rendered entry artifact: YAML frontmatter between two
// "---" lines, followed by the entry's pre-rendered HTML body.
func ParseFile(path string) (model.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Entry{}, err
	}

	s := strings.ReplaceAll(string(raw), "\r\n", "\n")
	rest, ok := strings.CutPrefix(s, delim+"\n")
	if !ok {
		return model.Entry{}, fmt.Errorf("%s: missing frontmatter", path)
	}
	head, body, ok := strings.Cut(rest, "\n"+delim+"\n")
	if !ok {
		// frontmatter may also end at EOF
		if h, ok2 := strings.CutSuffix(rest, "\n"+delim); ok2 {
			head, body = h, ""
		} else {
			return model.Entry{}, fmt.Errorf("%s: unterminated frontmatter", path)
		}
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(head), &fm); err != nil {
		return model.Entry{}, fmt.Errorf("%s: %w", path, err)
	}
	if fm.URL == "" {
		return model.Entry{}, fmt.Errorf("%s: missing url", path)
	}
	if fm.Title == "" {
		return model.Entry{}, fmt.Errorf("%s: missing title", path)
	}
	if fm.Date.IsZero() {
		return model.Entry{}, fmt.Errorf("%s: missing date", path)
	}
	updated := fm.Lastmod
	if updated.IsZero() {
		updated = fm.Date
	}

	return model.Entry{
		ID:        fm.URL,
		Title:     fm.Title,
		Permalink: fm.URL,
		Published: fm.Date,
		Updated:   updated,
		Tags:      fm.Tags,
		Summary:   fm.Summary,
		Body:      strings.TrimLeft(body, "\n"),
	}, nil
}

// LoadDir parses every .html artifact directly under dir.
func LoadDir(dir string) ([]model.Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []model.Entry
	for _, de := range des {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".html") {
			continue
		}
		e, err := ParseFile(filepath.Join(dir, de.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// FilterTag returns the entries carrying the tag (case-insensitive).
func FilterTag(entries []model.Entry, tag string) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out
}

// SortNewestFirst orders entries reverse-chronologically by publish date.
func SortNewestFirst(entries []model.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Published.After(entries[j].Published)
	})
}
