package transaction

// Type is the direction of money movement.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Source records where a transaction came from.
type Source string

const (
	SourceManual    Source = "manual"
	SourceWise      Source = "wise"
	SourceCSV       Source = "csv"
	SourceWhatsApp  Source = "whatsapp"
	SourceRecurring Source = "recurring"
	SourcePlaid     Source = "plaid"
)

// IsValid returns true if the source is one of the defined constants.
func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceWise, SourceCSV, SourceWhatsApp, SourceRecurring, SourcePlaid:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Source) String() string {
	return string(s)
}
