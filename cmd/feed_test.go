package cmd

import (
	"strings"
	"testing"

	"sitefeed/internal/config"
)

func TestFindChannel(t *testing.T) {
	cfg := config.Config{}
	cfg.Feeds.Channels = []config.FeedConfig{
		{Name: "main", Path: "feed.xml"},
		{Name: "community", Path: "community.xml", Tag: "community", Community: true},
	}

	ch, err := findChannel(cfg, "community")
	if err != nil {
		t.Fatalf("findChannel error: %v", err)
	}
	if !ch.Community || ch.Path != "community.xml" {
		t.Errorf("resolved wrong channel: %+v", ch)
	}

	if _, err := findChannel(cfg, "nope"); err == nil {
		t.Fatalf("expected error for unknown channel")
	} else if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the channel; got: %v", err)
	}
}

func TestFeedCmdUnknownChannel(t *testing.T) {
	prev := appCfg
	defer func() { appCfg = prev }()
	appCfg = config.Config{}
	appCfg.FillDefaults()

	err := feedCmd.RunE(feedCmd, []string{"nope"})
	if err == nil {
		t.Fatalf("expected error for unknown channel")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the channel; got: %v", err)
	}
}
