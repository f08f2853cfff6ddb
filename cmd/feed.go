package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sitefeed/internal/config"
	"sitefeed/internal/content"
	"sitefeed/internal/feed"

	"github.com/spf13/cobra"
)

// feedCmd generates the Atom feed for one configured channel.
var feedCmd = &cobra.Command{
	Use:   "feed <name>",
	Short: "Generate the Atom feed for a configured channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		cfg := GetConfig()

		ch, err := findChannel(cfg, name)
		if err != nil {
			return err
		}

		entries, err := content.LoadDir(cfg.Content.Dir)
		if err != nil {
			return fmt.Errorf("load entries: %w", err)
		}
		if ch.Tag != "" {
			entries = content.FilterTag(entries, ch.Tag)
		}
		content.SortNewestFirst(entries)

		variant := feed.Standard
		if ch.Community {
			variant = feed.CommunityRepost
		}
		extras := feed.Extras{
			SelfURL:   cfg.Site.BaseURL + "/" + ch.Path,
			IconURL:   cfg.Feeds.Icon,
			LogoURL:   cfg.Feeds.Logo,
			Generator: cfg.Feeds.Generator,
		}

		slog.Info("feed: synthesizing", "feed", ch.Name, "entries", len(entries), "community", ch.Community)
		doc, err := feed.Synthesize(cfg.Site, variant, entries, extras, time.Now())
		if err != nil {
			return err
		}

		outPath := filepath.Join(ch.OutputDir, ch.Path)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s\n", outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(feedCmd)
}

// findChannel resolves a configured feed channel by name.
func findChannel(cfg config.Config, name string) (*config.FeedConfig, error) {
	for i := range cfg.Feeds.Channels {
		if cfg.Feeds.Channels[i].Name == name {
			return &cfg.Feeds.Channels[i], nil
		}
	}
	return nil, fmt.Errorf("feed not found: %s", name)
}
