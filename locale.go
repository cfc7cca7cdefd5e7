// Package locale implements the locale subsystem of a minimal C-style
// runtime: locale handles, the process-wide default locale, per-owner
// locale overrides, and the numeric/monetary formatting record.
//
// We only support two locale personalities, the "C" locale (also known as
// "POSIX"), and the "C.UTF-8" locale (also known as "en_US.UTF-8"). The two
// differ in exactly one observable: the maximum width of a multibyte
// character, one byte or four.
package locale

// Locale is one configured locale personality. The only thing a
// personality carries is the maximum width, in bytes, of a multibyte
// character, fixed at construction.
//
// A Locale is exclusively owned by whoever holds it. Free it exactly once
// and never use it afterwards; the subsystem does not reference-count or
// detect misuse.
type Locale struct {
	mbCurMax int
}

// Global is the distinguished handle meaning "track the process-wide
// default locale dynamically" rather than a fixed width. It is compared by
// identity and never carries a width of its own. Callers routinely hold
// Global without owning it, so Free tolerates it.
var Global = &Locale{}

// New constructs a handle for the named locale. mask selects the
// categories the handle covers and may only contain bits from AllMask;
// since no category behaves differently from any other here, the mask is
// validated and otherwise unused. There is no base argument: this runtime
// never composes partial per-category locales.
//
// New fails with ErrInvalidArgument for a bad mask and ErrUnsupportedName
// for a name outside the supported set.
func New(mask CategoryMask, name string) (*Locale, error) {
	if !mask.valid() {
		return nil, ErrInvalidArgument
	}
	if !Supported(name) {
		return nil, ErrUnsupportedName
	}

	width := 1
	if IsUTF8Name(name) {
		width = 4
	}
	return &Locale{mbCurMax: width}, nil
}

// Duplicate returns a new handle with the same width as l, against the
// default System. See System.Duplicate.
func Duplicate(l *Locale) *Locale {
	return defaultSystem.Duplicate(l)
}

// Free releases a handle obtained from New or Duplicate. Freeing Global or
// nil is a no-op. Freeing the same handle twice, or using a handle after
// freeing it, is caller error; it is documented here, not detected.
func Free(l *Locale) {
	if l == nil || l == Global {
		return
	}
	// Poison the width so a use-after-free is at least conspicuous.
	l.mbCurMax = 0
}

// MBCurMax resolves l to a multibyte width against the default System. See
// System.MBCurMax.
func MBCurMax(l *Locale) int {
	return defaultSystem.MBCurMax(l)
}

// Duplicate returns a new handle with the same width as l. Duplicating
// Global snapshots the default personality at the instant of the call;
// later Setlocale calls do not affect the duplicate. Never fails.
func (s *System) Duplicate(l *Locale) *Locale {
	if l == nil || l == Global {
		return &Locale{mbCurMax: s.width()}
	}
	return &Locale{mbCurMax: l.mbCurMax}
}

// MBCurMax returns the maximum multibyte character width under l: the
// stored width for a real handle, the current default personality's width
// for Global or nil.
func (s *System) MBCurMax(l *Locale) int {
	if l == nil || l == Global {
		return s.width()
	}
	return l.mbCurMax
}
