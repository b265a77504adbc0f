package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-community-client/internal/adapter"
	"github.com/MKhiriev/go-community-client/internal/config"
	"github.com/MKhiriev/go-community-client/internal/logger"
	"github.com/MKhiriev/go-community-client/internal/service"
	"github.com/MKhiriev/go-community-client/models"
	"github.com/spf13/cobra"
)

const appName = "community-client"

// App is the command line client. Configuration, dispatcher and services are
// built lazily by the root command before any subcommand runs.
type App struct {
	root      *cobra.Command
	flags     *config.Flags
	buildInfo models.AppBuildInfo

	cfg        *config.ClientConfig
	dispatcher adapter.Dispatcher
	services   *service.ClientServices
	logger     *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the command tree.
func NewApp(buildInfo models.AppBuildInfo) *App {
	a := &App{buildInfo: buildInfo}

	a.root = &cobra.Command{
		Use:               appName,
		Short:             "Command line client for the Morphic community API",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	a.flags = config.RegisterFlags(a.root.PersistentFlags())

	a.root.AddCommand(
		a.versionCmd(),
		a.configCmd(),
		a.plansCmd(),
		a.billingCmd(),
		a.communitiesCmd(),
		a.barsCmd(),
		a.membersCmd(),
	)

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// Command exposes the root command, mainly so callers can redirect output.
func (a *App) Command() *cobra.Command {
	return a.root
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(appName, cfg.Environment.Production)
	cmdLog := log.GetChildLogger("command", cmd.CommandPath())
	cmdLog.Debug().
		Str("env", cfg.Environment.Env.String()).
		Str("api_url", cfg.Environment.APIURL).
		Msg("resolved configuration")
	cmd.SetContext(logger.WithContext(cmd.Context(), cmdLog))

	dispatcher, err := adapter.NewHTTPDispatcher(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create dispatcher: %w", err)
	}

	a.cfg = cfg
	a.logger = log
	a.dispatcher = dispatcher
	a.services = service.NewClientServices(dispatcher, cfg.Environment, log)

	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", a.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", a.buildInfo.BuildCommit())
		},
	}
}

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved environment configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printYAML(cmd.OutOrStdout(), a.cfg.Environment)
		},
	}
}
