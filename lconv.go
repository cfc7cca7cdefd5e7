package locale

// CharMax is the "not available" sentinel for the numeric Lconv fields,
// matching CHAR_MAX in the C record.
const CharMax byte = 127

// Lconv is the numeric and monetary formatting record, the localeconv(3)
// result. No supported locale provides monetary or grouping data, so every
// field other than DecimalPoint holds its not-available sentinel: "" for
// the textual fields, CharMax for the numeric ones. That is a property of
// the two-personality model, not an omission, and it holds no matter which
// locale is active.
type Lconv struct {
	DecimalPoint    string `json:"decimal_point" yaml:"decimal_point"`
	ThousandsSep    string `json:"thousands_sep" yaml:"thousands_sep"`
	Grouping        string `json:"grouping" yaml:"grouping"`
	IntCurrSymbol   string `json:"int_curr_symbol" yaml:"int_curr_symbol"`
	CurrencySymbol  string `json:"currency_symbol" yaml:"currency_symbol"`
	MonDecimalPoint string `json:"mon_decimal_point" yaml:"mon_decimal_point"`
	MonThousandsSep string `json:"mon_thousands_sep" yaml:"mon_thousands_sep"`
	MonGrouping     string `json:"mon_grouping" yaml:"mon_grouping"`
	PositiveSign    string `json:"positive_sign" yaml:"positive_sign"`
	NegativeSign    string `json:"negative_sign" yaml:"negative_sign"`

	IntFracDigits  byte `json:"int_frac_digits" yaml:"int_frac_digits"`
	FracDigits     byte `json:"frac_digits" yaml:"frac_digits"`
	PCSPrecedes    byte `json:"p_cs_precedes" yaml:"p_cs_precedes"`
	PSepBySpace    byte `json:"p_sep_by_space" yaml:"p_sep_by_space"`
	NCSPrecedes    byte `json:"n_cs_precedes" yaml:"n_cs_precedes"`
	NSepBySpace    byte `json:"n_sep_by_space" yaml:"n_sep_by_space"`
	PSignPosn      byte `json:"p_sign_posn" yaml:"p_sign_posn"`
	NSignPosn      byte `json:"n_sign_posn" yaml:"n_sign_posn"`
	IntPCSPrecedes byte `json:"int_p_cs_precedes" yaml:"int_p_cs_precedes"`
	IntPSepBySpace byte `json:"int_p_sep_by_space" yaml:"int_p_sep_by_space"`
	IntNCSPrecedes byte `json:"int_n_cs_precedes" yaml:"int_n_cs_precedes"`
	IntNSepBySpace byte `json:"int_n_sep_by_space" yaml:"int_n_sep_by_space"`
	IntPSignPosn   byte `json:"int_p_sign_posn" yaml:"int_p_sign_posn"`
	IntNSignPosn   byte `json:"int_n_sign_posn" yaml:"int_n_sign_posn"`
}

// newLconv builds the one record every locale shares. The textual
// not-available fields rely on the string zero value.
func newLconv() *Lconv {
	return &Lconv{
		DecimalPoint: ".",

		IntFracDigits:  CharMax,
		FracDigits:     CharMax,
		PCSPrecedes:    CharMax,
		PSepBySpace:    CharMax,
		NCSPrecedes:    CharMax,
		NSepBySpace:    CharMax,
		PSignPosn:      CharMax,
		NSignPosn:      CharMax,
		IntPCSPrecedes: CharMax,
		IntPSepBySpace: CharMax,
		IntNCSPrecedes: CharMax,
		IntNSepBySpace: CharMax,
		IntPSignPosn:   CharMax,
		IntNSignPosn:   CharMax,
	}
}

// Localeconv returns the default System's formatting record. See
// System.Localeconv.
func Localeconv() *Lconv {
	return defaultSystem.Localeconv()
}

// Localeconv returns the shared formatting record, initializing it exactly
// once on first access. Concurrent first callers block until the single
// initializer finishes; everyone observes the fully initialized record.
// The record is immutable after that and shared, so callers must not
// modify it.
func (s *System) Localeconv() *Lconv {
	s.lconvOnce.Do(func() {
		init := s.lconvInit
		if init == nil {
			init = newLconv
		}
		s.lconv = init()
	})
	return s.lconv
}
