package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/disciplemakers/VIS-to-FA/internal/models"
)

// LoadAccountRules returns the account rules for a run. With an empty path
// the compiled-in defaults apply; otherwise the YAML file is laid over the
// defaults, so a partial file only overrides what it names.
func LoadAccountRules(path string) (models.AccountRules, error) {
	rules := models.DefaultAccountRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- operator-provided rules file
	if err != nil {
		return rules, fmt.Errorf("error reading account rules %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("error parsing account rules %s: %w", path, err)
	}

	if err := validateAccountRules(rules); err != nil {
		return rules, fmt.Errorf("invalid account rules %s: %w", path, err)
	}
	return rules, nil
}

func validateAccountRules(rules models.AccountRules) error {
	switch {
	case rules.PersonalARAccount == "":
		return fmt.Errorf("personal_ar_account must not be empty")
	case rules.BookTableAccount == "":
		return fmt.Errorf("book_table_account must not be empty")
	case rules.APCreditCard.Account == "" || rules.APCreditCard.Memo == "":
		return fmt.Errorf("ap_credit_card account and memo must not be empty")
	case rules.APExpenseReport.Account == "" || rules.APExpenseReport.Memo == "":
		return fmt.Errorf("ap_expense_report account and memo must not be empty")
	case rules.APCreditCard.Memo == rules.APExpenseReport.Memo:
		return fmt.Errorf("payable memos must be distinct, both are %q", rules.APCreditCard.Memo)
	}
	return nil
}
