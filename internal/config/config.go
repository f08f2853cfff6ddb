package config

import "strings"

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// AuthorConfig identifies the site's single author.
type AuthorConfig struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// SiteConfig holds site-wide metadata used in feed headers and attribution.
type SiteConfig struct {
	Title       string       `mapstructure:"title"`
	Description string       `mapstructure:"description"`
	BaseURL     string       `mapstructure:"base_url"` // absolute, no trailing slash
	Author      AuthorConfig `mapstructure:"author"`
}

// ContentConfig locates the rendered entry artifacts left by the site build.
type ContentConfig struct {
	Dir string `mapstructure:"dir"`
}

// FeedsConfig controls feed generation.
type FeedsConfig struct {
	Generator string       `mapstructure:"generator"`
	Icon      string       `mapstructure:"icon"`
	Logo      string       `mapstructure:"logo"`
	OutputDir string       `mapstructure:"output_dir"`
	Channels  []FeedConfig `mapstructure:"channels"`
}

// FeedConfig defines one feed channel over the site's entries.
type FeedConfig struct {
	Name      string `mapstructure:"name"`       // e.g., main, community
	Path      string `mapstructure:"path"`       // served path, e.g., feed.xml
	Tag       string `mapstructure:"tag"`        // optional tag scope
	Community bool   `mapstructure:"community"`  // adds repost attribution
	OutputDir string `mapstructure:"output_dir"` // overrides default
}

// Config is the top-level configuration structure.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Site    SiteConfig    `mapstructure:"site"`
	Content ContentConfig `mapstructure:"content"`
	Feeds   FeedsConfig   `mapstructure:"feeds"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	// Permalink construction downstream assumes no trailing slash.
	c.Site.BaseURL = strings.TrimRight(c.Site.BaseURL, "/")
	if c.Content.Dir == "" {
		c.Content.Dir = "./public/entries"
	}
	if c.Feeds.Generator == "" {
		c.Feeds.Generator = "sitefeed"
	}
	if c.Feeds.OutputDir == "" {
		c.Feeds.OutputDir = "./public"
	}
	// Fill channel defaults
	for i := range c.Feeds.Channels {
		ch := &c.Feeds.Channels[i]
		if ch.Path == "" {
			ch.Path = ch.Name + ".xml"
		}
		if ch.OutputDir == "" {
			ch.OutputDir = c.Feeds.OutputDir
		}
	}
}
