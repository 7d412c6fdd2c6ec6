package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphlift/graphlift/internal/server"
	"github.com/graphlift/graphlift/pkg/cache"
	"github.com/graphlift/graphlift/pkg/config"
	"github.com/graphlift/graphlift/pkg/pipeline"
	"github.com/graphlift/graphlift/pkg/store"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const shutdownTimeout = 10 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	config string // config file path ("" means graphlift.toml if present)
	addr   string // listen address override
}

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the conversion HTTP API",
		Long: `Run the HTTP API exposing conversion and graph storage.

Configuration is read from graphlift.toml in the working directory (or
--config), with GRAPHLIFT_* environment variables taking precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (graphlift.toml if present)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe wires the configured backends together and runs the server
// until ctx is cancelled or the listener fails.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}

	// --verbose wins over the configured level
	if c.Logger.GetLevel() != log.DebugLevel {
		if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
			c.SetLogLevel(level)
		}
	}
	logger := loggerFromContext(ctx)

	cch, err := newServerCache(cfg)
	if err != nil {
		return err
	}
	var keyer cache.Keyer
	if cfg.Cache.Namespace != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.Namespace+":")
	}
	runner := pipeline.NewRunner(cch, keyer, logger)
	runner.TTL = cfg.CacheTTL()
	defer runner.Close()
	logger.Infof("Cache backend: %s", cfg.Cache.Backend)

	st, err := newServerStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())
	logger.Infof("Store backend: %s", cfg.Store.Backend)

	var publisher *store.Neo4jPublisher
	if cfg.Neo4j.Enabled {
		publisher, err = store.NewNeo4jPublisher(ctx, cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password, cfg.Neo4j.Database)
		if err != nil {
			return err
		}
		defer publisher.Close(context.Background())
		logger.Infof("Mirroring graphs to %s", cfg.Neo4j.URI)
	}

	server.RegisterMetrics()

	srv := server.New(cfg, logger, runner, st, publisher)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	logger.Infof("Serving on %s", cfg.Server.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newServerCache builds the cache backend selected by the config.
func newServerCache(cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return cache.NewRedisCache(cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return cache.NewFileCache(cfg.Cache.Dir)
	}
}

// newServerStore builds the store backend selected by the config.
func newServerStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.Store.Backend == "mongo" {
		return store.NewMongoStore(ctx, cfg.Store.Mongo.URI, cfg.Store.Mongo.Database)
	}
	return store.NewMemoryStore(), nil
}
