package schema

import (
	"fmt"
	"strings"
)

// ParseRecordType maps a CLI flag value to a RecordType.
func ParseRecordType(s string) (RecordType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "credit-card", "creditcard", "cc":
		return CreditCard, nil
	case "expense-report", "expensereport", "er":
		return ExpenseReport, nil
	default:
		return CreditCard, fmt.Errorf("unknown record type %q (want credit-card or expense-report)", s)
	}
}
