// Package convert implements the full conversion command.
package convert

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
	assumeYes   bool
	noArchive   bool
)

// Cmd represents the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Translate a VIS export into an FA import CSV",
	Long: `Translate a VIS export into an FA import CSV, grouped per cardholder with
balancing payable entries, and archive the consumed export.`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().StringVar(&postingDate, "date", "", "Posting date MM/DD/YYYY (prompted when omitted)")
	Cmd.Flags().IntVar(&refStart, "ref-start", 0, "Starting reference suffix (prompted when omitted)")
	Cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Write without asking for confirmation")
	Cmd.Flags().BoolVar(&noArchive, "no-archive", false, "Skip archiving the consumed export")
}

func convertFunc(cmd *cobra.Command, args []string) {
	log := root.Log.WithField("run_id", uuid.NewString())

	recordType, err := schema.ParseRecordType(root.SharedFlags.RecordType)
	if err != nil {
		log.WithError(err).Fatal("Invalid --type flag")
	}

	rules, err := config.LoadAccountRules(accountsFile())
	if err != nil {
		log.WithError(err).Fatal("Failed to load account rules")
	}

	archiveDir := ""
	if root.Cfg.Archive.Enabled && !noArchive {
		archiveDir = root.Cfg.Archive.Directory
	}

	opts := common.Options{
		Transactions:   root.SharedFlags.Transactions,
		Cardholders:    root.SharedFlags.Cardholders,
		Output:         root.SharedFlags.Output,
		RecordType:     recordType,
		Rules:          rules,
		PostingDate:    postingDate,
		ReferenceStart: refStart,
		AssumeYes:      assumeYes,
		ArchiveDir:     archiveDir,
	}
	if err := common.Run(opts, log); err != nil {
		log.WithError(err).Fatal("Conversion failed, nothing persisted")
	}
	log.Info("Conversion completed successfully")
}

func accountsFile() string {
	if root.SharedFlags.AccountsFile != "" {
		return root.SharedFlags.AccountsFile
	}
	return root.Cfg.Accounts.File
}
