// Package main implements studyctl, the operator CLI for the persisted
// study state: it inspects and resets the stored blob, imports decks,
// runs reviews and serves the local inspection API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	envFile    string
	key        string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "studyctl",
		Short:         "Inspect and drive the persisted study state",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default ./studyctl.yaml if present)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().StringVar(&opts.key, "key", "", "storage key (overrides storage.key)")

	root.AddCommand(newStateCmd(opts))
	root.AddCommand(newDeckCmd(opts))
	root.AddCommand(newReviewCmd(opts))
	root.AddCommand(newXPCmd(opts))
	root.AddCommand(newStreakCmd(opts))
	root.AddCommand(newServeCmd(opts))
	return root
}
