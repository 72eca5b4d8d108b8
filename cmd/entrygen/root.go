package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lanternworks/entrygen/internal/logging"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "entrygen",
		Short: "Scaffold generator for extension bundling",
		Long: `entrygen generates the glue files an extension bundler needs: an HTML
entry document per UI surface (popup, options, devtools, newtab) and a
thin mount script importing each discovered module under a synthetic
alias.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
	rootCmd.AddCommand(generateCmd)
}
