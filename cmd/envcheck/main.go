package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"piterface-backend/internal/envfile"
)

var requiredKeys []string

var rootCmd = &cobra.Command{
	Use:   "envcheck",
	Short: "Validate .env style configuration files",
	Long: `envcheck lints the KEY=VALUE configuration files used by deploy
tooling: it parses the file, checks the canonical required keys and
validates value formats (tokens, chat ids, emails, flags).`,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a single env file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := envfile.Load(args[0])
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		var keys []string
		if len(requiredKeys) > 0 {
			keys = requiredKeys
		}
		res := envfile.Validate(values, keys)

		for _, w := range res.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
		}
		if !res.Valid() {
			return fmt.Errorf("%s is invalid:\n  %s", args[0], strings.Join(res.Errors, "\n  "))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d keys)\n", args[0], len(values))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringSliceVar(&requiredKeys, "require", nil, "override the canonical required key list")
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
