package locale

// Category identifies one locale category, numbered the way the C runtime
// numbers them. All sits in the middle of the range for historical
// reasons; its slot never appears in a CategoryMask.
type Category int

const (
	Ctype Category = iota
	Numeric
	Time
	Collate
	Monetary
	Messages
	All
	Paper
	Name
	Address
	Telephone
	Measurement
	Identification
)

// valid reports whether c is inside the legal category range. All is a
// legal selector for Setlocale even though it owns no mask bit.
func (c Category) valid() bool {
	return c >= Ctype && c <= Identification
}

// CategoryMask selects a set of categories for New. One bit per real
// category; bit 6, All's slot, is never set in a well-formed mask.
type CategoryMask int

const (
	CtypeMask          CategoryMask = 1 << Ctype
	NumericMask        CategoryMask = 1 << Numeric
	TimeMask           CategoryMask = 1 << Time
	CollateMask        CategoryMask = 1 << Collate
	MonetaryMask       CategoryMask = 1 << Monetary
	MessagesMask       CategoryMask = 1 << Messages
	PaperMask          CategoryMask = 1 << Paper
	NameMask           CategoryMask = 1 << Name
	AddressMask        CategoryMask = 1 << Address
	TelephoneMask      CategoryMask = 1 << Telephone
	MeasurementMask    CategoryMask = 1 << Measurement
	IdentificationMask CategoryMask = 1 << Identification

	// AllMask is every real category bit.
	AllMask = CtypeMask | NumericMask | TimeMask | CollateMask |
		MonetaryMask | MessagesMask | PaperMask | NameMask |
		AddressMask | TelephoneMask | MeasurementMask | IdentificationMask
)

func (m CategoryMask) valid() bool {
	return m&^AllMask == 0
}
