// Command dashboard is the NFL stats dashboard CLI.
//
// Usage:
//
//	dashboard scoreboard --season 2024 --week 5
//	dashboard game 2024_05_BUF_KC
//	dashboard players --query mahomes
//	dashboard profile 00-0033873 --seasons 2023,2024
//	dashboard compare 00-0033873 --position QB --mode similarity
//	dashboard watch --season 2024 --week 5 --interval 60s
//	dashboard backfill --season 2024 --through-week 10
//	dashboard articles list
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"nfl-stats-dashboard/internal/app/games"
	"nfl-stats-dashboard/internal/app/players"
	"nfl-stats-dashboard/internal/articles"
	"nfl-stats-dashboard/internal/cache"
	"nfl-stats-dashboard/internal/compare"
	"nfl-stats-dashboard/internal/config"
	"nfl-stats-dashboard/internal/logging"
	"nfl-stats-dashboard/internal/metrics"
	"nfl-stats-dashboard/internal/poller"
	"nfl-stats-dashboard/internal/providers"
	"nfl-stats-dashboard/internal/providers/fixture"
	"nfl-stats-dashboard/internal/providers/nflverse"
	"nfl-stats-dashboard/internal/snapshots"
	"nfl-stats-dashboard/internal/store"
	"nfl-stats-dashboard/internal/timeutil"
)

const appVersion = "dev"

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "NFL stats dashboard CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(scoreboardCmd())
	root.AddCommand(gameCmd())
	root.AddCommand(playersCmd())
	root.AddCommand(profileCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(watchCmd())
	root.AddCommand(backfillCmd())
	root.AddCommand(articlesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app bundles the wired services a command needs.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	provider providers.DataProvider
	store    *store.MemoryStore
	cache    *cache.Cache
	metrics  *metrics.Recorder
	promHTTP http.Handler
	shutdown func(context.Context) error
	snapshot *snapshots.FSStore
	writer   *snapshots.Writer
	games    *games.Service
	players  *players.Service
}

func buildApp(ctx context.Context) (*app, error) {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nfl-stats-dashboard",
		Version: appVersion,
	})

	recorder, promHandler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return nil, fmt.Errorf("setup metrics: %w", err)
	}

	var base providers.DataProvider
	switch cfg.Provider {
	case "fixture":
		base = fixture.New()
	default:
		base = nflverse.NewClient(nflverse.Config{
			BaseURL:           cfg.Backend.BaseURL,
			APIKey:            cfg.Backend.APIKey,
			RequestsPerMinute: cfg.Backend.RequestsPerMinute,
			Logger:            logger,
		})
	}
	provider := providers.NewLoggingProvider(
		providers.NewRetryingProvider(base, logger, 3, 500*time.Millisecond),
		logger, recorder, cfg.Provider,
	)

	memStore := store.NewMemoryStore()
	responseCache := cache.New(cfg.Cache.Enabled)
	ttls := cache.TTLs{Current: cfg.Cache.CurrentTTL, Historical: cfg.Cache.HistoricalTTL}
	fsStore := snapshots.NewFSStore(cfg.Snapshots.Dir)
	writer := snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionWeeks)
	ranker := compare.NewRanker(language.AmericanEnglish, cfg.PPRWeight)

	return &app{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		store:    memStore,
		cache:    responseCache,
		metrics:  recorder,
		promHTTP: promHandler,
		shutdown: shutdown,
		snapshot: fsStore,
		writer:   writer,
		games:    games.NewService(provider, memStore, fsStore, responseCache, ttls, recorder, logger),
		players:  players.NewService(provider, memStore, responseCache, cfg.Cache.CurrentTTL, ranker, recorder, logger),
	}, nil
}

func (a *app) close(ctx context.Context) {
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			a.logger.Warn("metrics shutdown failed", "error", err)
		}
	}
}

// resolveWeek fills season and week from config and the wall clock when the
// flags were left at zero.
func (a *app) resolveWeek(season, week int) (int, int) {
	if season == 0 {
		season = a.cfg.Season
	}
	if season == 0 {
		season = timeutil.SeasonFor(time.Now().UTC())
	}
	if week == 0 {
		week = a.cfg.Week
	}
	if week == 0 {
		week = timeutil.MinWeek
	}
	return season, timeutil.ClampWeek(week)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func scoreboardCmd() *cobra.Command {
	var season, week int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "scoreboard",
		Short: "Show the scoreboard for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			season, week = a.resolveWeek(season, week)
			summary, err := a.games.Scoreboard(ctx, season, week)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(summary)
			}
			renderScoreboard(os.Stdout, summary)
			return nil
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Season year (default: current)")
	cmd.Flags().IntVar(&week, "week", 0, "Week number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func gameCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "game <game_id>",
		Short: "Show a game's box score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			view, err := a.games.GameDetail(ctx, args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(view)
			}
			renderGame(os.Stdout, view)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func playersCmd() *cobra.Command {
	var query string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "players",
		Short: "List or search the player directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			items, err := a.players.Search(ctx, query)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(items)
			}
			renderPlayers(os.Stdout, items)
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive name substring")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func profileCmd() *cobra.Command {
	var seasons []int
	cmd := &cobra.Command{
		Use:   "profile <player_id>",
		Short: "Show a player's profile and season stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			profile, err := a.players.Profile(ctx, args[0], seasons)
			if err != nil {
				return err
			}
			return printJSON(profile)
		},
	}
	cmd.Flags().IntSliceVar(&seasons, "seasons", nil, "Seasons to include (default: all)")
	return cmd
}

func compareCmd() *cobra.Command {
	var (
		position string
		scope    string
		limit    int
		season   int
		mode     string
	)
	cmd := &cobra.Command{
		Use:   "compare <player_id>",
		Short: "Rank players similar to a reference player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			rankMode, err := parseMode(mode)
			if err != nil {
				return err
			}
			candidates, err := a.players.Candidates(ctx, providers.SimilarQuery{
				PlayerID: args[0],
				Position: position,
				Scope:    scope,
				Limit:    limit,
				Season:   season,
			}, rankMode)
			if err != nil {
				return err
			}
			renderCandidates(os.Stdout, candidates, a.cfg.PPRWeight)
			return nil
		},
	}
	cmd.Flags().StringVar(&position, "position", "QB", "Position to compare within")
	cmd.Flags().StringVar(&scope, "type", "", "Comparison scope (career, season)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum candidates")
	cmd.Flags().IntVar(&season, "season", 0, "Season filter")
	cmd.Flags().StringVar(&mode, "mode", "similarity", "Ordering: similarity, fantasy, alphabetical")
	return cmd
}

func parseMode(v string) (compare.Mode, error) {
	switch v {
	case "similarity":
		return compare.ModeSimilarity, nil
	case "fantasy":
		return compare.ModeFantasy, nil
	case "alphabetical":
		return compare.ModeAlphabetical, nil
	default:
		return compare.ModeSimilarity, fmt.Errorf("unknown mode %q", v)
	}
}

func watchCmd() *cobra.Command {
	var season, week int
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll a week's scoreboard until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(context.Background())

			season, week = a.resolveWeek(season, week)
			if interval <= 0 {
				interval = a.cfg.PollInterval
			}

			if a.promHTTP != nil {
				mux := http.NewServeMux()
				mux.Handle("/metrics", a.promHTTP)
				srv := &http.Server{Addr: ":" + a.cfg.Metrics.Port, Handler: mux}
				go func() {
					if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
						a.logger.Error("metrics server failed", "error", serveErr)
					}
				}()
				defer srv.Shutdown(context.Background())
			}

			p := poller.New(a.provider, a.writer, a.store, a.logger, a.metrics, season, week, interval)
			p.Start(ctx)
			<-ctx.Done()
			return p.Stop(context.Background())
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Season year (default: current)")
	cmd.Flags().IntVar(&week, "week", 0, "Week number")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Poll interval (default: POLL_INTERVAL)")
	return cmd
}

func backfillCmd() *cobra.Command {
	var season, throughWeek int
	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Write week snapshots for a season to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(context.Background())

			season, throughWeek = a.resolveWeek(season, throughWeek)
			syncer := snapshots.NewSyncer(a.provider, a.writer, a.snapshot, snapshots.SyncConfig{
				Season:      season,
				ThroughWeek: throughWeek,
				Interval:    a.cfg.Snapshots.BackfillInterval,
			}, a.logger, a.store)
			syncer.Run(ctx)
			return nil
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Season year (default: current)")
	cmd.Flags().IntVar(&throughWeek, "through-week", 0, "Last week to backfill")
	return cmd
}

func articlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Manage backend articles",
	}

	newClient := func() *articles.Client {
		cfg := config.Load()
		return articles.NewClient(cfg.Backend.BaseURL, cfg.Backend.APIKey, nil)
	}

	var includeDrafts bool
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List articles, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			items, total, err := newClient().List(ctx, articles.ListOptions{
				PublishedOnly: !includeDrafts,
				Limit:         limit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%d of %d articles\n", len(items), total)
			return printJSON(items)
		},
	}
	list.Flags().BoolVar(&includeDrafts, "drafts", false, "Include unpublished articles")
	list.Flags().IntVar(&limit, "limit", 20, "Maximum articles to return")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			article, err := newClient().Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(article)
		},
	}

	var file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an article from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			article, err := readArticleFile(file)
			if err != nil {
				return err
			}
			created, err := newClient().Create(ctx, article)
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&file, "file", "", "Path to a JSON article body")
	_ = create.MarkFlagRequired("file")

	var updateFile string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an article from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			article, err := readArticleFile(updateFile)
			if err != nil {
				return err
			}
			updated, err := newClient().Update(ctx, args[0], article)
			if err != nil {
				return err
			}
			return printJSON(updated)
		},
	}
	update.Flags().StringVar(&updateFile, "file", "", "Path to a JSON article body")
	_ = update.MarkFlagRequired("file")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			return newClient().Delete(ctx, args[0])
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}

func readArticleFile(path string) (articles.Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return articles.Article{}, fmt.Errorf("read article file: %w", err)
	}
	var article articles.Article
	if err := json.Unmarshal(raw, &article); err != nil {
		return articles.Article{}, fmt.Errorf("parse article file: %w", err)
	}
	return article, nil
}
