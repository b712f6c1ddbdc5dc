package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"nuclight.org/discord-fetcher/app/discord"
	"nuclight.org/discord-fetcher/app/export"
	"nuclight.org/discord-fetcher/app/links"
	"nuclight.org/discord-fetcher/pkg/logger"
)

var opts struct {
	Token        string        `long:"token" env:"DISCORD_TOKEN" required:"true" description:"discord api token"`
	ChannelID    string        `long:"channel-id" env:"CHANNEL_ID" required:"true" description:"id of the channel to fetch from"`
	Limit        string        `short:"l" long:"limit" default:"100" description:"number of messages to fetch, or \"all\" for the whole channel"`
	Output       string        `short:"o" long:"output" default:"messages.txt" description:"output file for the messages export"`
	ExtractLinks bool          `long:"extract-links" description:"also extract all links into a separate file"`
	LinksOutput  string        `long:"links-output" default:"links.txt" description:"output file for the links export"`
	Timeout      time.Duration `long:"timeout" env:"REQUEST_TIMEOUT" default:"30s" description:"per-request http timeout"`
	Debug        bool          `long:"debug" description:"enable debug logging"`
}

var Revision = "dev"

func main() {
	// .env is optional, flags and real env vars take over when absent
	_ = godotenv.Load()

	_, err := flags.Parse(&opts)
	if err != nil {
		os.Exit(1)
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	log := logger.NewLogger(level)
	log.Info("starting fetch", "revision", Revision, "channel_id", opts.ChannelID)

	limit, err := parseLimit(opts.Limit)
	if err != nil {
		log.Error("parsing limit", "error", err)
		os.Exit(1)
	}

	output := ensureTxt(opts.Output)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := &discord.Client{
		Log:        log,
		Token:      opts.Token,
		HTTPClient: &http.Client{Timeout: opts.Timeout},
	}

	messages, err := client.FetchMessages(ctx, opts.ChannelID, limit)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("cancelled, nothing written")
			os.Exit(0)
		}

		log.Error("fetching messages", "error", err)
		os.Exit(1)
	}

	if len(messages) == 0 {
		log.Info("no messages were fetched")
		os.Exit(0)
	}

	if err := export.WriteMessages(output, messages); err != nil {
		log.Error("writing messages export", "error", err)
		os.Exit(1)
	}

	log.Info("messages saved", "count", len(messages), "path", output)

	if opts.ExtractLinks {
		found := links.Extract(messages)
		if len(found) == 0 {
			log.Info("no links found in messages")
			os.Exit(0)
		}

		linksOutput := ensureTxt(opts.LinksOutput)
		if err := export.WriteLinks(linksOutput, found); err != nil {
			log.Error("writing links export", "error", err)
			os.Exit(1)
		}

		log.Info("links saved", "count", len(found), "path", linksOutput)
	}

	os.Exit(0)
}

func parseLimit(s string) (discord.Limit, error) {
	if strings.EqualFold(s, "all") {
		return discord.Unbounded(), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return discord.Limit{}, fmt.Errorf("invalid limit %q: use a number or \"all\"", s)
	}

	if n <= 0 {
		return discord.Limit{}, fmt.Errorf("limit must be greater than 0, got %d", n)
	}

	return discord.Bounded(n), nil
}

func ensureTxt(path string) string {
	if strings.HasSuffix(path, ".txt") {
		return path
	}

	return path + ".txt"
}
