package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldCategory    = "category"
	FieldSource      = "source"
	FieldAmountCents = "amount_cents"
	FieldExpenseID   = "expense_id"
	FieldIncomeID    = "income_id"
	FieldSnapshotKey = "snapshot_key"
	FieldPath        = "path"
	FieldCount       = "count"
	FieldBytes       = "bytes"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentLedger   = "ledger"
	ComponentStorage  = "storage"
	ComponentSnapshot = "snapshot"
	ComponentReminder = "reminder"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpAdd      = "add"
	OpDelete   = "delete"
	OpBudget   = "budget"
	OpSave     = "save"
	OpLoad     = "load"
	OpReset    = "reset"
	OpExport   = "export"
	OpValidate = "validate"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)
