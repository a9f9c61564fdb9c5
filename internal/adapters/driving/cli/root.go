// Package cli implements the deskmate command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/oakline-labs/deskmate/internal/config"
	"github.com/oakline-labs/deskmate/internal/core/ports/driving"
	"github.com/oakline-labs/deskmate/internal/logger"
)

var version = "0.1.0"

// Services injected by main before Execute.
var (
	ingestService    driving.IngestService
	answerService    driving.AnswerService
	responderService driving.ResponderService
	catalogService   driving.CatalogService
	submitService    driving.SubmitService

	// dryRunResponder prints replies instead of dispatching them.
	// Selected by the batch command's --dry-run flag.
	dryRunResponder driving.ResponderService

	appConfig *config.Config
)

var (
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "deskmate",
	Short: "Support automation for product catalogs",
	Long: `Deskmate ingests product datasets, answers free-text product
queries, and turns uploaded customer-query spreadsheets into templated
email replies.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	// main reads --config from os.Args before Execute, since services
	// are wired from the config file ahead of flag parsing.
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetIngestService injects the ingest service.
func SetIngestService(s driving.IngestService) {
	ingestService = s
}

// SetAnswerService injects the answer service.
func SetAnswerService(s driving.AnswerService) {
	answerService = s
}

// SetResponderService injects the batch responder service.
func SetResponderService(s driving.ResponderService) {
	responderService = s
}

// SetDryRunResponderService injects the dry-run responder used by
// batch --dry-run.
func SetDryRunResponderService(s driving.ResponderService) {
	dryRunResponder = s
}

// SetCatalogService injects the catalog service.
func SetCatalogService(s driving.CatalogService) {
	catalogService = s
}

// SetSubmitService injects the submit service.
func SetSubmitService(s driving.SubmitService) {
	submitService = s
}

// SetConfig injects the loaded configuration.
func SetConfig(cfg *config.Config) {
	appConfig = cfg
}
