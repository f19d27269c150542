package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/macaudit/macaudit/internal/app/audit"
	"github.com/macaudit/macaudit/internal/app/ui"
	appver "github.com/macaudit/macaudit/internal/version"
)

var (
	quick    bool
	noReport bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "macaudit",
	Short: "macaudit is an interactive, read-only audit for buying a used Mac: it cross-checks the hardware identity, management enrollment, storage, battery, display, security posture and crash history, stress-tests the CPU, and ends with a risk verdict and a handover checklist.",
	Args:  cobra.NoArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{
		UnknownFlags: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := audit.Run(audit.Options{
			Quick:    quick,
			NoReport: noReport,
			Verbose:  verbose,
		})
		if err != nil {
			os.Exit(1)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = appver.Value

	rootCmd.Flags().BoolVar(&quick, "quick", false, "Skip the CPU stress test")
	rootCmd.Flags().BoolVar(&noReport, "no-report", false, "Do not write the report file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Echo each data acquisition as it happens")

	rootCmd.Long = ui.AsciiArt + `
macaudit walks you through checking a second-hand Mac before you pay for it.
It never changes anything on the machine: every probe is a read.

Usage:
  macaudit [flags]

Example:
  macaudit
  macaudit --quick
  macaudit --no-report -v

Flags:
  --quick        Skip the CPU stress test
  --no-report    Do not write the report file
  -v, --verbose  Echo each data acquisition as it happens

Run it on the machine you are about to buy, with the seller present.
`
}
