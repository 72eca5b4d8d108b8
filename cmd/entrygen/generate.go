package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lanternworks/entrygen"
)

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Generate scaffold entries for an extension project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := entrygen.LoadConfig(root)
		if err != nil {
			return err
		}

		layout := entrygen.NewLayout(root, cfg)
		app := entrygen.New(layout,
			entrygen.WithUIExtensions(layout.UIExtensions()),
			entrygen.WithLogger(log.Logger),
		)

		results, err := app.Init(cmd.Context())
		if err != nil {
			return err
		}

		for _, r := range results {
			status := fmt.Sprintf("default (~%s)", r.Kind)
			if r.HasIndex {
				status = "found"
			}
			fmt.Printf("  %-10s %s\n", r.Kind, status)
		}

		return nil
	},
}
