package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldErrorType = "error_type"
	FieldCardName  = "card_name"
	FieldGrade     = "grade"
	FieldBucket    = "bucket"
	FieldCost      = "cost"
	FieldRevenue   = "revenue"
	FieldProfit    = "profit"
	FieldQuantity  = "quantity"
	FieldGraded    = "total_graded"
	FieldRows      = "rows"
	FieldPath      = "path"
	FieldReport    = "report"
	FieldCommand   = "command"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentReport = "report"
	ComponentExport = "export"
	ComponentConfig = "config"
	ComponentMenu   = "menu"
	ComponentTUI    = "tui"
)

// Operations defines standard operation names
const (
	OpAdd      = "add_card"
	OpRemove   = "remove_card"
	OpRevenue  = "update_revenue"
	OpExport   = "export"
	OpParse    = "parse"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeIO            = "io_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithCard adds the card name and, when known, its grade.
func (f LogFields) WithCard(name string, grade int, hasGrade bool) LogFields {
	f[FieldCardName] = name
	if hasGrade {
		f[FieldGrade] = grade
	}
	return f
}

// WithAmounts adds money fields rendered as strings to keep precision.
func (f LogFields) WithAmounts(cost, revenue, profit string) LogFields {
	f[FieldCost] = cost
	f[FieldRevenue] = revenue
	f[FieldProfit] = profit
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
