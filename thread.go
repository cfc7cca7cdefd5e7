package locale

import "context"

// Binding is one owner's locale slot, the Go stand-in for the C runtime's
// per-thread locale. The zero value is an empty slot, which defers to the
// system default and reads as Global. A Binding belongs to a single
// goroutine and performs no synchronization; sharing one across goroutines
// is caller error.
type Binding struct {
	sys *System
	cur *Locale
}

// NewBinding returns an empty Binding resolving against the default
// System.
func NewBinding() *Binding {
	return defaultSystem.NewBinding()
}

// NewBinding returns an empty Binding resolving against s.
func (s *System) NewBinding() *Binding {
	return &Binding{sys: s}
}

// Current returns the installed override, or Global when none was ever
// installed. The first call on a fresh Binding always returns Global.
// Equivalent to Use(nil).
func (b *Binding) Current() *Locale {
	return b.Use(nil)
}

// Use installs l as the owner's locale and returns what the slot held
// immediately before the call, translating an empty slot to Global.
//
// A nil l performs a pure query and never mutates the slot; installing
// Global clears the slot back to tracking the system default. The
// asymmetry between nil and Global is deliberate and mirrors uselocale(3):
// both read as "no override", only nil fails to mutate.
func (b *Binding) Use(l *Locale) *Locale {
	if b == nil {
		return Global
	}

	prev := b.cur
	if prev == nil {
		prev = Global
	}

	if l != nil {
		if l == Global {
			b.cur = nil
		} else {
			b.cur = l
		}
	}

	return prev
}

// MBCurMax returns the maximum multibyte character width under the owner's
// active locale: the override's fixed width when one is installed, the
// default personality's width otherwise. This is the hot read path of the
// runtime; every wide-character-aware caller ends up here.
func (b *Binding) MBCurMax() int {
	if b == nil || b.cur == nil {
		return b.system().width()
	}
	return b.cur.mbCurMax
}

func (b *Binding) system() *System {
	if b == nil || b.sys == nil {
		return defaultSystem
	}
	return b.sys
}

type contextKey string

const bindingContextKey contextKey = "locale:binding"

// NewContext returns a context carrying b, for plumbing a locale override
// through request-scoped code.
func NewContext(ctx context.Context, b *Binding) context.Context {
	return context.WithValue(ctx, bindingContextKey, b)
}

// FromContext returns the Binding carried by ctx. A context without one
// yields nil, and a nil Binding resolves every query against the default
// System, so callers may use the result without checking.
func FromContext(ctx context.Context) *Binding {
	b, _ := ctx.Value(bindingContextKey).(*Binding)
	return b
}
