// Package main provides the CLI entrypoint for wolftimer.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wolftimer/internal/config"
	"wolftimer/internal/core/model"
	"wolftimer/internal/platform"
)

const (
	appName = "WolfTimer"
	appID   = "com.wolftimer.app"
)

var (
	sessionMinutes   int
	sessionBlocks    int
	sessionQuestions int
	sessionOpacity   int
	logLevel         string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := model.DefaultSessionConfig()

	rootCmd := &cobra.Command{
		Use:           "wolftimer",
		Short:         "Study session timer with question and block countdowns",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runDesktopCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&sessionMinutes, "minutes", defaults.TimePerBlockMinutes, "minutes per block")
	flags.IntVar(&sessionBlocks, "blocks", defaults.NumBlocks, "number of blocks")
	flags.IntVar(&sessionQuestions, "questions", defaults.NumQuestionsPerBlock, "questions per block")
	flags.IntVar(&sessionOpacity, "opacity", defaults.OpacityPercent, "timer bar opacity in percent (20-100)")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newLogger(level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(parsed)
	return logger, nil
}

func appDir() (string, error) {
	dir, err := platform.NewService().AppDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve app directory: %w", err)
	}
	return dir, nil
}

// loadSessionConfig layers the config file over the defaults and the
// explicitly set flags over the file.
func loadSessionConfig(cmd *cobra.Command, dir string) (model.SessionConfig, error) {
	fileCfg, err := config.LoadConfig(config.ConfigPath(dir))
	if err != nil {
		return model.SessionConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	session := fileCfg.Apply(model.DefaultSessionConfig())

	applyIntFlag(cmd, "minutes", &session.TimePerBlockMinutes, sessionMinutes)
	applyIntFlag(cmd, "blocks", &session.NumBlocks, sessionBlocks)
	applyIntFlag(cmd, "questions", &session.NumQuestionsPerBlock, sessionQuestions)
	applyIntFlag(cmd, "opacity", &session.OpacityPercent, sessionOpacity)

	if err := validateSession(session); err != nil {
		return model.SessionConfig{}, err
	}
	session.OpacityPercent = model.ClampOpacity(session.OpacityPercent)
	session.Derive()
	return session, nil
}

func validateSession(session model.SessionConfig) error {
	if session.TimePerBlockMinutes <= 0 {
		return fmt.Errorf("minutes must be > 0")
	}
	if session.NumBlocks <= 0 {
		return fmt.Errorf("blocks must be > 0")
	}
	if session.NumQuestionsPerBlock <= 0 {
		return fmt.Errorf("questions must be > 0")
	}
	return nil
}

func applyIntFlag(cmd *cobra.Command, name string, target *int, value int) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}
