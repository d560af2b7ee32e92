package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"i18next-typesafe/feature/generate"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the TranslationKey type from the canonical locale",
	Long: `Flattens the canonical locale file into dotted keys and writes a TypeScript
union type of all of them. With --watch the file is regenerated whenever the
input changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.logg.Sync()

		g := generate.NewGenerator(afero.NewOsFs(), rt.cfg.Input, rt.cfg.Output, rt.logg)
		out := cmd.OutOrStdout()
		report := func(res *generate.Result) {
			fmt.Fprintf(out, "✓ Generated %d translation keys to %s\n", res.Keys, res.Output)
		}

		if !rt.cfg.Watch {
			res, err := g.Generate()
			if err != nil {
				return err
			}
			report(res)
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt.logg.Info("Watching for changes", zap.String("input", g.Input()))
		return g.Watch(ctx, generate.Ticks(ctx, generate.PollInterval), report)
	},
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "generated type declaration file")
	generateCmd.Flags().BoolP("watch", "w", false, "regenerate when the input changes")
	RootCmd.AddCommand(generateCmd)
}
