package logging

// Standardized field names for structured logging so log output stays
// consistent and easy to filter.
const (
	FieldFile     = "file_path"
	FieldAccount  = "account_id"
	FieldCategory = "category"
	FieldPeriod   = "period"
	FieldCount    = "count"
	FieldError    = "error"
	FieldDate     = "date"
)
