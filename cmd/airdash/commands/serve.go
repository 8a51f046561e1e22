package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/EladdadMahdi/Data-visualization/internal/config"
	"github.com/EladdadMahdi/Data-visualization/internal/dataset"
	"github.com/EladdadMahdi/Data-visualization/internal/observability"
	"github.com/EladdadMahdi/Data-visualization/internal/server"
)

const (
	serveCmdUse   = "serve"
	serveCmdShort = "Serve the interactive flights dashboard over HTTP"

	configFlag  = "config"
	configShort = "c"
	configUsage = "config file path (default: .airdash.yaml in CWD or $HOME)"

	dataFlag  = "data"
	dataShort = "d"
	dataUsage = "flight records file (.csv, .csv.gz, .csv.lz4)"

	listenFlag  = "listen"
	listenShort = "l"
	listenUsage = "bind address for the HTTP server"

	themeFlag  = "theme"
	themeUsage = "dashboard color theme: light or dark"
)

// NewServeCommand creates the serve subcommand.
func NewServeCommand() *cobra.Command {
	var configPath, dataPath, listen, theme string

	cmd := &cobra.Command{
		Use:   serveCmdUse,
		Short: serveCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(configPath, dataPath, listen, theme)
			if err != nil {
				return err
			}

			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, configFlag, configShort, "", configUsage)
	cmd.Flags().StringVarP(&dataPath, dataFlag, dataShort, "", dataUsage)
	cmd.Flags().StringVarP(&listen, listenFlag, listenShort, "", listenUsage)
	cmd.Flags().StringVar(&theme, themeFlag, "", themeUsage)

	return cmd
}

// resolveConfig merges command-line flags over the file/env configuration.
// Flags win; validation runs after the merge so --data alone is enough.
func resolveConfig(configPath, dataPath, listen, theme string) (*config.Config, error) {
	cfg, err := config.Read(configPath)
	if err != nil {
		return nil, err
	}

	if dataPath != "" {
		cfg.Data = dataPath
	}

	if listen != "" {
		cfg.Listen = listen
	}

	if theme != "" {
		cfg.Theme = theme
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := observability.NewLogger(observability.LogConfig{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
	})

	table, err := dataset.Load(cfg.Data)
	if err != nil {
		return err
	}

	logger.Info("dataset loaded", "path", cfg.Data, "rows", table.Len())

	srv := server.New(table, cfg.PageTheme(), logger)

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := srv.ListenAndServe(signalCtx, cfg.Listen)
	if serveErr != nil {
		return fmt.Errorf("serve dashboard: %w", serveErr)
	}

	return nil
}
