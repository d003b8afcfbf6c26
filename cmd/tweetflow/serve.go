package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/tweetflow/internal/config"
	"github.com/aretw0/tweetflow/internal/metrics"
	"github.com/aretw0/tweetflow/internal/presentation/tui"
	httpAdapter "github.com/aretw0/tweetflow/pkg/adapters/http"
	"github.com/aretw0/tweetflow/pkg/adapters/memory"
	"github.com/aretw0/tweetflow/pkg/adapters/redis"
	"github.com/aretw0/tweetflow/pkg/content"
	"github.com/aretw0/tweetflow/pkg/ports"
	"github.com/aretw0/tweetflow/pkg/simulate"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the HTTP API: workflow generation, rendering and simulation, plus the content
endpoints (tweet, image, comment, DM) the built workflows call.

Without OPENAI_API_KEY the content endpoints run in demo mode and return canned content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			settings.Addr, _ = cmd.Flags().GetString("addr")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		spec, err := httpAdapter.LoadSpec(ctx)
		if err != nil {
			return err
		}

		m := metrics.New()
		gen, closeGen, err := newGenerator(ctx, settings, m, logger)
		if err != nil {
			return err
		}
		defer closeGen()

		var buildOpts []workflow.Option
		var simOpts []simulate.Option
		if skip, _ := cmd.Flags().GetBool("skip-empty-accounts"); skip {
			buildOpts = append(buildOpts, workflow.WithoutEmptyAccounts())
			simOpts = append(simOpts, simulate.WithoutEmptyAccounts())
		}
		if exact, _ := cmd.Flags().GetBool("exact-schedule"); exact {
			buildOpts = append(buildOpts, workflow.WithExactSchedule())
		}

		handler := httpAdapter.NewHandler(gen,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(m),
			httpAdapter.WithBuildOptions(buildOpts...),
			httpAdapter.WithSimulator(simulate.New(simOpts...)),
			httpAdapter.WithRequestValidation(spec),
		)

		if noBanner, _ := cmd.Flags().GetBool("no-banner"); !noBanner && tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		logger.Info("starting tweetflow",
			"addr", settings.Addr,
			"demo", settings.DemoMode(),
			"cache", settings.Cache.Backend,
		)

		if err := httpAdapter.ListenAndServe(ctx, settings.Addr, handler, logger); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("tweetflow stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", config.DefaultAddr, "Address to listen on")
	serveCmd.Flags().Bool("no-banner", false, "Do not print the startup banner")
	serveCmd.Flags().Bool("exact-schedule", false, "Give twice-daily and weekly their own schedule rules")
	serveCmd.Flags().Bool("skip-empty-accounts", false, "Ignore blank entries of the account list")
}

// newGenerator assembles the content generator: OpenAI or demo, instrumented,
// behind the configured cache. The returned func releases the cache.
func newGenerator(ctx context.Context, s config.Settings, m *metrics.Metrics, logger *slog.Logger) (content.Generator, func(), error) {
	var base content.Generator = content.Demo{}
	if !s.DemoMode() {
		g, err := content.NewOpenAI(content.OpenAIConfig{
			APIKey:     s.OpenAIAPIKey,
			BaseURL:    s.OpenAIBaseURL,
			Model:      s.OpenAIModel,
			ImageModel: s.ImageModel,
			Timeout:    s.GenerationTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		base = g
	}
	gen := content.Generator(content.NewInstrumented(base, m))

	var cache ports.ContentCache
	closeFn := func() {}
	switch s.Cache.Backend {
	case "memory":
		mc := memory.NewCache(memory.WithTTL(s.Cache.TTL), memory.WithMaxEntries(s.Cache.MaxEntries))
		if s.Cache.SweepInterval > 0 {
			closeFn = mc.StartJanitor(s.Cache.SweepInterval)
		}
		cache = mc
	case "redis":
		rc := redis.New(s.Cache.RedisAddr, s.Cache.RedisPassword, s.Cache.RedisDB, redis.WithTTL(s.Cache.TTL))
		if err := rc.Ping(ctx); err != nil {
			rc.Close()
			return nil, nil, err
		}
		cache = rc
		closeFn = func() {
			if err := rc.Close(); err != nil {
				logger.Warn("failed to close redis cache", "err", err)
			}
		}
	}
	if cache != nil {
		gen = content.NewCached(gen, cache, logger)
	}
	return gen, closeFn, nil
}
