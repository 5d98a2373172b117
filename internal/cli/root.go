// Package cli implements the command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kubepick/kubepick/internal/app"
	"github.com/kubepick/kubepick/internal/config"
	"github.com/kubepick/kubepick/internal/dispatch"
	"github.com/kubepick/kubepick/internal/paths"
	"github.com/kubepick/kubepick/internal/usage"
)

// NewRootCmd creates the kp command.
func NewRootCmd() *cobra.Command {
	var (
		namespace string
		wide      bool
		query     string
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "kp [resource-type]",
		Short: "Interactive kubectl resource picker",
		Long: `kp lists a kubernetes resource type, lets you fuzzy-pick one or more
entries, and runs the kubectl action bound to the key that accepted the
selection. Press ctrl+p inside the picker to see the available bindings.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return usage.InvalidConfig(paths.ConfigFilePath(), err)
			}

			application, err := app.New(app.Options{
				Config:       cfg,
				StyleEnabled: !noColor,
			})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close(application) }()

			resourceType := ""
			if len(args) == 1 {
				resourceType = args[0]
			}

			loop := dispatch.New(application, dispatch.Options{
				Namespace:    namespace,
				ResourceType: resourceType,
				Wide:         wide,
				InitialQuery: query,
				ColumnCap:    cfg.ColumnBindingCap,
			})
			return loop.Run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace to scope the listing to")
	rootCmd.Flags().BoolVarP(&wide, "wide", "w", false, "request the wide column set")
	rootCmd.Flags().StringVarP(&query, "query", "q", "", "initial filter query")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(NewHistoryCmd())

	return rootCmd
}
