package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pfio-labs/pfio/internal/branding"
	"github.com/pfio-labs/pfio/internal/config"
	"github.com/pfio-labs/pfio/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	configPath string
	logLevel   string
)

// appEnv is built once per invocation and handed to every command through
// the command context.
type appEnv struct {
	fs  afero.Fs
	cfg *config.Config
	log *slog.Logger
}

type envKey struct{}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` forwards file, directory and window calls straight to the
operating system. Every command performs one facade call per step and
reports the platform's result unchanged.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(afero.NewOsFs(), cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(context.WithValue(ctx, envKey{}, env))
		return nil
	},
}

func newAppEnv(fsys afero.Fs, cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Load(fsys, configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.LogLevel()
	if logLevel != "" {
		level = logLevel
	}
	log, err := logging.New(cmd.ErrOrStderr(), level, cfg.LogFormat())
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	return &appEnv{fs: fsys, cfg: cfg, log: log}, nil
}

// envFrom returns the invocation environment stored by PersistentPreRunE.
// Outside an Execute call it falls back to defaults on the OS filesystem.
func envFrom(cmd *cobra.Command) *appEnv {
	if ctx := cmd.Context(); ctx != nil {
		if env, ok := ctx.Value(envKey{}).(*appEnv); ok {
			return env
		}
	}
	return &appEnv{fs: afero.NewOsFs(), cfg: config.Defaults(), log: logging.Discard()}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
