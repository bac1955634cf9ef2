// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"github.com/disciplemakers/VIS-to-FA/internal/config"
	"github.com/disciplemakers/VIS-to-FA/internal/logging"
)

// CommonFlags are the flags shared by the conversion commands.
type CommonFlags struct {
	Transactions string
	Cardholders  string
	Output       string
	RecordType   string
	AccountsFile string
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.NewLogrusAdapterFromLogger(config.Logger)

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "vis-to-fa",
		Short: "Translate VIS cardholder expense exports into FA accounting-import ledgers.",
		Long: `vis-to-fa reads a VIS ledger export of cardholder expense transactions
(credit-card charges or expense-report entries), groups them per cardholder,
appends balancing payable entries, reconciles totals to the cent, and writes
the FA accounting-import CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLogging())

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = cfg
		},
	}

	// SharedFlags holds the common flag values.
	SharedFlags = CommonFlags{}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Transactions, "input", "i", "", "Transaction export file (.csv or .xlsx)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Cardholders, "cardholders", "c", "", "Cardholder directory file (.csv or .xlsx)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "FA import CSV to write")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.RecordType, "type", "t", "credit-card", "Export type: credit-card or expense-report")
	Cmd.PersistentFlags().StringVar(&SharedFlags.AccountsFile, "accounts", "", "Account-rule override YAML (defaults to the compiled-in rules)")
}
