package models

// Header sentinels. The VIS export tooling names its first column the same
// way in every layout; a different first header cell means the wrong file
// was handed in.
const (
	DirectoryHeaderSentinel   = "CARDHOLDER_ID_0"
	TransactionHeaderSentinel = "CARDHOLDER_ID"
)

// Default G/L codes and fixed texts. Overridable through the account-rule
// file, see config.LoadAccountRules.
const (
	DefaultPersonalARAccount = "11510"
	DefaultPersonalARDim1    = "GEN"
	DefaultPersonalARDim2    = "STAFF-AR"
	DefaultPersonalARMemo    = "Personal charge receivable"

	DefaultBookTableAccount = "14300"

	DefaultAPCreditCardAccount = "20110"
	DefaultAPCreditCardMemo    = "VISA payable to card issuer"

	DefaultAPExpenseReportAccount = "20120"
	DefaultAPExpenseReportMemo    = "Expense report reimbursement payable"

	// Cardholder name on statement rows where the organization pays itself.
	// Blank-amount rows for this holder are expected and skipped silently.
	DefaultSelfPaymentName = "Disciplemakers"
)

// SellerMemoLimit caps how much of the seller name is quoted in a
// credit-card memo.
const SellerMemoLimit = 15

// File permissions, matching the rest of the toolchain.
const (
	PermissionOutputFile = 0o644
	PermissionDirectory  = 0o750
)
