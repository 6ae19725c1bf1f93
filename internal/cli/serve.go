package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/runoshun/todoboard/internal/app"
	"github.com/runoshun/todoboard/internal/domain"
)

// newServeCommand creates the serve command that runs the development backend.
func newServeCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Addr     string
		Store    string
		Path     string
		RedisURL string
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a development task service",
		Long: `Run a local implementation of the /todo service for development.

Tasks are kept in a JSON file (default) or in Redis. Flags override the
[serve] section of the configuration.

Examples:
  # JSON file in the state directory
  todoboard serve

  # Redis on a custom port
  todoboard serve --store redis --redis-url redis://localhost:6380/0 --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := c.AppConfig.Serve
			if cmd.Flags().Changed("addr") {
				sc.Addr = opts.Addr
			}
			if cmd.Flags().Changed("store") {
				store, err := domain.ParseStoreBackend(opts.Store)
				if err != nil {
					return err
				}
				sc.Store = store
			}
			if cmd.Flags().Changed("path") {
				sc.Path = opts.Path
			}
			if cmd.Flags().Changed("redis-url") {
				sc.RedisURL = opts.RedisURL
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c.SetLogOutput(cmd.ErrOrStderr())

			repo, closeRepo, err := c.TaskRepository(ctx, sc)
			if err != nil {
				return err
			}
			defer func() { _ = closeRepo() }()

			c.Logger.Info("store ready", "backend", string(sc.Store))
			return c.Server(repo).ListenAndServe(ctx, sc.Addr)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", domain.DefaultAddr, "Listen address")
	cmd.Flags().StringVar(&opts.Store, "store", string(domain.StoreJSON), "Storage backend: json or redis")
	cmd.Flags().StringVar(&opts.Path, "path", "", "JSON store file (default <state dir>/tasks.json)")
	cmd.Flags().StringVar(&opts.RedisURL, "redis-url", domain.DefaultRedisURL, "Redis connection URL")

	return cmd
}
