// nexus-downloader is a command line front end for the download
// orchestration core: resolve video metadata, run concurrent downloads
// through yt-dlp, and keep a local history of what was fetched.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/khanhnv219/nexus-downloader/internal/config"
	"github.com/khanhnv219/nexus-downloader/internal/credentials"
	"github.com/khanhnv219/nexus-downloader/internal/download"
	"github.com/khanhnv219/nexus-downloader/internal/fetch"
	"github.com/khanhnv219/nexus-downloader/internal/history"
	"github.com/khanhnv219/nexus-downloader/internal/model"
	"github.com/khanhnv219/nexus-downloader/internal/platform"
	"github.com/khanhnv219/nexus-downloader/internal/ytdlp"
)

// metadata lookups per minute; keeps batch fetches under site rate limits
const fetchPerMinute = 30

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)
	store := config.NewSettingsStore(cfg.SettingsPath())
	settings := store.Load()

	app := &cli.App{
		Name:  "nexus-downloader",
		Usage: "download videos from YouTube, Bilibili, Xiaohongshu, TikTok and more",
		Commands: []*cli.Command{
			fetchCommand(cfg, settings, logger),
			getCommand(cfg, settings, logger),
			historyCommand(cfg),
		},
	}

	return app.Run(args)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

func cookiesFor(url string, s config.Settings) string {
	return credentials.Resolve(url, credentials.Mapping{
		Bilibili:    s.BilibiliCookiesPath,
		Xiaohongshu: s.XiaohongshuCookiesPath,
		Facebook:    s.FacebookCookiesPath,
	})
}

func fetchCommand(cfg *config.Config, settings config.Settings, logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "resolve a URL and list the videos behind it without downloading",
		ArgsUsage: "URL",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("fetch requires exactly one URL", 1)
			}
			url := c.Args().First()

			client := ytdlp.NewClient(logger)
			svc := fetch.NewService(client, fetchPerMinute, logger)

			videos, errMsg := svc.Fetch(c.Context, url, cookiesFor(url, settings))
			if errMsg != "" {
				return cli.Exit(errMsg, 1)
			}

			fmt.Printf("Found %d video(s) on %s:\n", len(videos), platform.Detect(url))
			for i, v := range videos {
				line := fmt.Sprintf("  %d. %s", i+1, v.Title)
				if v.Duration != "" {
					line += fmt.Sprintf(" [%s]", v.Duration)
				}
				fmt.Println(line)
				fmt.Printf("     %s\n", v.URL)
			}
			return nil
		},
	}
}

func getCommand(cfg *config.Config, settings config.Settings, logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "download one or more URLs",
		ArgsUsage: "URL...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "quality",
				Aliases: []string{"q"},
				Usage:   "quality preset: " + strings.Join(model.QualityOptionsList, ", "),
				Value:   settings.VideoQuality,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "video container: " + strings.Join(model.VideoFormatOptionsList, ", "),
				Value:   settings.VideoFormat,
			},
			&cli.StringFlag{
				Name:  "audio-format",
				Usage: "audio format for 'Audio Only' quality: " + strings.Join(model.AudioFormatOptionsList, ", "),
				Value: settings.AudioFormat,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "destination directory",
				Value:   settings.DownloadFolderPath,
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"c"},
				Usage:   "parallel downloads (1-10)",
				Value:   settings.ConcurrentDownloadsLimit,
			},
			&cli.BoolFlag{
				Name:  "subs",
				Usage: "download subtitles",
				Value: settings.SubtitlesEnabled,
			},
			&cli.StringFlag{
				Name:  "sub-lang",
				Usage: "subtitle language: " + strings.Join(model.SubtitleLanguageOptionsList, ", "),
				Value: settings.SubtitleLanguage,
			},
			&cli.BoolFlag{
				Name:  "embed-subs",
				Usage: "embed subtitles into the video file",
				Value: settings.EmbedSubtitles,
			},
			&cli.BoolFlag{
				Name:  "by-platform",
				Usage: "organize downloads into per-platform subfolders",
				Value: settings.OrganizeByPlatform,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("get requires at least one URL", 1)
			}
			return runGet(c, cfg, settings, logger)
		},
	}
}

func runGet(c *cli.Context, cfg *config.Config, settings config.Settings, logger zerolog.Logger) error {
	quality := c.String("quality")
	videoFormat := model.VideoFormatExt(c.String("format"))
	audioFormat := model.AudioFormatExt(c.String("audio-format"))
	destBase := c.String("output")
	limit := config.ClampConcurrency(c.Int("concurrency"))
	byPlatform := c.Bool("by-platform")

	subs := model.SubtitleOptions{
		Enabled:  c.Bool("subs"),
		Language: model.SubtitleLangCode(c.String("sub-lang")),
		Embed:    c.Bool("embed-subs"),
	}

	if err := platform.EnsureDir(destBase); err != nil {
		return err
	}

	hist, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer hist.Close()

	client := ytdlp.NewClient(logger)
	fetchSvc := fetch.NewService(client, fetchPerMinute, logger)

	// Resolve every URL up front so the batch is fully known before any
	// transfer starts.
	var requests []*model.DownloadRequest
	titles := make(map[string]string)
	for _, url := range c.Args().Slice() {
		cookies := cookiesFor(url, settings)
		videos, errMsg := fetchSvc.Fetch(c.Context, url, cookies)
		if errMsg != "" {
			fmt.Println(color.RedString("✗ %s: %s", url, errMsg))
			continue
		}
		for _, v := range videos {
			dest := destBase
			if byPlatform {
				dest = platform.OrganizedPath(destBase, v.URL)
			}
			if err := platform.EnsureDir(dest); err != nil {
				return err
			}
			requests = append(requests, &model.DownloadRequest{
				ID:          xid.New().String(),
				URL:         v.URL,
				Title:       v.Title,
				DestDir:     dest,
				Quality:     model.FormatString(quality),
				VideoFormat: videoFormat,
				AudioFormat: audioFormat,
				Subtitles:   subs,
				CookiesFile: cookies,
				CreatedAt:   time.Now(),
			})
			titles[v.URL] = v.Title
		}
	}
	if len(requests) == 0 {
		return cli.Exit("nothing to download", 1)
	}

	fmt.Printf("Downloading %d video(s) to %s (limit %d)\n", len(requests), destBase, limit)

	orch := download.NewOrchestrator(client, limit, logger)
	orch.SetProgressCallback(func(url string, update model.ProgressUpdate) {
		if update.TotalBytes > 0 {
			fmt.Printf("\r%-50.50s %5.1f%% %s ETA %s   ", titles[url], update.Percent, update.Speed, update.ETAString())
		}
	})
	orch.SetOutcomeCallback(func(url string, outcome model.Outcome) {
		fmt.Println()
		title := titles[url]
		switch outcome.Kind {
		case model.OutcomeCompleted:
			fmt.Println(color.GreenString("✓ %s", title))
		case model.OutcomeCancelled:
			fmt.Println(color.YellowString("⊘ %s (cancelled)", title))
		default:
			fmt.Println(color.RedString("✗ %s: %s", title, outcome.Message))
		}

		entry := model.NewHistoryEntry(
			url, title, platform.Detect(url),
			outcome.OutputPath, platform.FileSize(outcome.OutputPath),
			quality, videoFormat, outcome.Status(),
		)
		if err := hist.Append(entry); err != nil {
			logger.Warn().Err(err).Str("url", url).Msg("failed to record history entry")
		}
	})

	done := make(chan struct{})
	orch.SetSummaryCallback(func(succeeded, failed int) {
		fmt.Printf("Successful: %d, Failed: %d\n", succeeded, failed)
		close(done)
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Println(color.YellowString("\nStopping... finishing cleanup"))
		orch.RequestStop()
	}()

	orch.SubmitBatch(requests)
	<-done
	return nil
}

func historyCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "history",
		Usage:     "list recorded downloads, optionally filtered by a search term",
		ArgsUsage: "[QUERY]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "maximum entries to show (0 for all)",
				Value:   20,
			},
		},
		Action: func(c *cli.Context) error {
			hist, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("failed to open history: %w", err)
			}
			defer hist.Close()

			var entries []model.HistoryEntry
			if query := c.Args().First(); query != "" {
				entries, err = hist.Search(query)
			} else {
				entries, err = hist.List(c.Int("limit"))
			}
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No downloads recorded.")
				return nil
			}

			limit := c.Int("limit")
			for i, e := range entries {
				if limit > 0 && i >= limit {
					break
				}
				status := e.Status
				switch e.Status {
				case "completed":
					status = color.GreenString(e.Status)
				case "failed":
					status = color.RedString(e.Status)
				case "cancelled":
					status = color.YellowString(e.Status)
				}
				fmt.Printf("%s  %-9s  %s  [%s]\n", e.DownloadDate, status, e.Title, e.Platform)
				fmt.Printf("    %s\n", e.URL)
			}
			return nil
		},
	}
}
