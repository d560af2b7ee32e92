package cmd

import (
	"context"
	"errors"

	"i18next-typesafe/core/locale"
	"i18next-typesafe/core/reconcile"
	"i18next-typesafe/feature/validation"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run all translation checks",
	Long:  `Runs the sync, unused-block and unused-key checks one after another and prints a summary. Fails if any step fails.`,
	Args:  cobra.NoArgs,
	RunE: runValidation(func(ctx context.Context, svc *validation.Service, p *validation.Printer) (bool, error) {
		sum := svc.RunAll(ctx)
		return sum.Passed, p.Summary(sum)
	}),
}

// validateSyncCmd represents the validate:sync command
var validateSyncCmd = &cobra.Command{
	Use:   "validate:sync",
	Short: "Check that every language defines the same keys",
	Args:  cobra.NoArgs,
	RunE: runValidation(func(ctx context.Context, svc *validation.Service, p *validation.Printer) (bool, error) {
		report, err := svc.ValidateSync(ctx)
		if err != nil {
			if errors.Is(err, reconcile.ErrTooFewLanguages) {
				return false, errors.New("need at least 2 valid language files to compare (set --languages)")
			}
			return false, err
		}
		return report.Passed, p.Sync(report)
	}),
}

// validateBlocksCmd represents the validate:blocks command
var validateBlocksCmd = &cobra.Command{
	Use:   "validate:blocks",
	Short: "Find translation blocks that no source file references",
	Args:  cobra.NoArgs,
	RunE: runValidation(func(ctx context.Context, svc *validation.Service, p *validation.Printer) (bool, error) {
		report, err := svc.ValidateBlocks(ctx)
		if err != nil {
			return false, err
		}
		return report.Passed, p.Blocks(report)
	}),
}

// validateKeysCmd represents the validate:keys command
var validateKeysCmd = &cobra.Command{
	Use:   "validate:keys",
	Short: "Find translation keys that no t() call references",
	Long:  `Lists leaf keys never passed to a t() style call. Fails only when the count exceeds validation.maxUnusedKeys.`,
	Args:  cobra.NoArgs,
	RunE: runValidation(func(ctx context.Context, svc *validation.Service, p *validation.Printer) (bool, error) {
		report, err := svc.ValidateKeys(ctx)
		if err != nil {
			return false, err
		}
		return report.Passed, p.Keys(report)
	}),
}

type validationRun func(ctx context.Context, svc *validation.Service, p *validation.Printer) (bool, error)

// runValidation wires configuration, the locale source and the printer around a single check.
func runValidation(run validationRun) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.logg.Sync()

		format, _ := cmd.Flags().GetString("format")
		printer, err := validation.NewPrinter(cmd.OutOrStdout(), format)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		fsys := afero.NewOsFs()
		source, err := locale.Open(ctx, rt.cfg, fsys)
		if err != nil {
			return err
		}

		svc := validation.NewService(validation.OptionsFromConfig(rt.cfg), source, fsys, rt.logg)
		passed, err := run(ctx, svc, printer)
		if err != nil {
			return err
		}
		if !passed {
			return validation.ErrValidationFailed
		}
		return nil
	}
}

func init() {
	for _, c := range []*cobra.Command{validateCmd, validateSyncCmd, validateBlocksCmd, validateKeysCmd} {
		c.Flags().StringP("format", "f", validation.FormatText, "report format: text or json")
		RootCmd.AddCommand(c)
	}
}
