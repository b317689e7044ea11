package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wolftimer/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create the config file if missing and print its path",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	dir, err := appDir()
	if err != nil {
		return err
	}
	path := config.ConfigPath(dir)
	created, err := config.EnsureTemplate(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if created {
		fmt.Fprintf(cmd.ErrOrStderr(), "created %s\n", path)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
