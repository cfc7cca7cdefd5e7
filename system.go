package locale

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// System holds the process-wide locale state: the default-personality flag
// and the lazily initialized formatting record. The package-level
// functions operate on a single default System, which is all a C runtime
// ever exposes; independent instances exist so tests and embedders can
// start from a clean slate.
//
// The default flag is atomic. The reference behavior leaves it
// unsynchronized, but nothing observable depends on the race, so we don't
// keep it.
type System struct {
	utf8 atomic.Bool

	lconvOnce sync.Once
	lconv     *Lconv
	lconvInit func() *Lconv // replaced by tests to observe initialization
}

var defaultSystem = newSystem()

func newSystem() *System {
	s := &System{lconvInit: newLconv}
	// A fresh process starts in the UTF-8 personality.
	s.utf8.Store(true)
	return s
}

// Default returns the process-wide System the package-level functions
// operate on.
func Default() *System {
	return defaultSystem
}

// Option mutates a System during construction.
type Option func(*System) error

// NewSystem builds a System via the supplied options.
func NewSystem(opts ...Option) (*System, error) {
	s := newSystem()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// WithDefaultLocale sets the initial default personality from a supported
// locale name.
func WithDefaultLocale(name string) Option {
	return func(s *System) error {
		if !Supported(name) {
			return fmt.Errorf("locale: default %q: %w", name, ErrUnsupportedName)
		}
		s.utf8.Store(IsUTF8Name(name))
		return nil
	}
}

// WithEnvironment seeds the default personality from LC_ALL, LC_CTYPE and
// LANG, the way SetNative does. An unset or unserviceable environment
// leaves the UTF-8 default in place.
func WithEnvironment() Option {
	return func(s *System) error {
		if name, ok := EnvName(); ok {
			s.utf8.Store(IsUTF8Name(name))
		}
		return nil
	}
}

// Setlocale sets the default locale on the default System. See
// System.Setlocale.
func Setlocale(category Category, name string) (string, error) {
	return defaultSystem.Setlocale(category, name)
}

// Query returns the default System's canonical locale name. See
// System.Query.
func Query(category Category) (string, error) {
	return defaultSystem.Query(category)
}

// Setlocale installs the named locale as the default and returns the new
// canonical name, "C" or "C.UTF-8". The empty name is itself a supported
// name and selects the UTF-8 default, matching setlocale(cat, "")
// semantics. An unsupported name fails with ErrUnsupportedName and leaves
// the state untouched; a category outside Ctype..Identification fails with
// ErrInvalidArgument.
//
// The C query form, setlocale with a null name, is Query: Go has no null
// string to pass.
func (s *System) Setlocale(category Category, name string) (string, error) {
	if !category.valid() {
		return "", ErrInvalidArgument
	}
	if !Supported(name) {
		return "", ErrUnsupportedName
	}

	utf8 := IsUTF8Name(name)
	s.utf8.Store(utf8)
	return canonicalName(utf8), nil
}

// Query returns the canonical name of the current default locale without
// changing it. The category is validated like Setlocale's and otherwise
// unused.
func (s *System) Query(category Category) (string, error) {
	if !category.valid() {
		return "", ErrInvalidArgument
	}
	return canonicalName(s.utf8.Load()), nil
}

// width is the default personality resolved to a multibyte width.
func (s *System) width() int {
	if s.utf8.Load() {
		return 4
	}
	return 1
}
