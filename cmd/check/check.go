// Package check implements the dry-run command: translate and reconcile
// without writing anything.
package check

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/disciplemakers/VIS-to-FA/cmd/common"
	"github.com/disciplemakers/VIS-to-FA/cmd/root"
	"github.com/disciplemakers/VIS-to-FA/internal/config"
	"github.com/disciplemakers/VIS-to-FA/internal/schema"
)

var (
	postingDate string
	refStart    int
)

// Cmd represents the check command.
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Translate and reconcile a VIS export without writing output",
	Run:   checkFunc,
}

func init() {
	Cmd.Flags().StringVar(&postingDate, "date", "", "Posting date MM/DD/YYYY (prompted when omitted)")
	Cmd.Flags().IntVar(&refStart, "ref-start", 1, "Starting reference suffix")
}

func checkFunc(cmd *cobra.Command, args []string) {
	log := root.Log.WithField("run_id", uuid.NewString())

	recordType, err := schema.ParseRecordType(root.SharedFlags.RecordType)
	if err != nil {
		log.WithError(err).Fatal("Invalid --type flag")
	}

	rules, err := config.LoadAccountRules(root.SharedFlags.AccountsFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to load account rules")
	}

	opts := common.Options{
		Transactions:   root.SharedFlags.Transactions,
		Cardholders:    root.SharedFlags.Cardholders,
		RecordType:     recordType,
		Rules:          rules,
		PostingDate:    postingDate,
		ReferenceStart: refStart,
		DryRun:         true,
	}
	if err := common.Run(opts, log); err != nil {
		log.WithError(err).Fatal("Check failed")
	}
	log.Info("Check completed, export reconciles")
}
