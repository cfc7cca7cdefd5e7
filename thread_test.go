package locale

import (
	"context"
	"testing"
)

func TestBindingFirstReadIsGlobal(t *testing.T) {
	b := NewBinding()
	if got := b.Current(); got != Global {
		t.Fatalf("fresh Binding Current() = %v want Global", got)
	}

	// Same on a binding created by another goroutine.
	done := make(chan *Locale)
	go func() {
		done <- NewBinding().Current()
	}()
	if got := <-done; got != Global {
		t.Fatalf("fresh goroutine Current() = %v want Global", got)
	}
}

func TestBindingUseAsymmetry(t *testing.T) {
	sys, err := NewSystem()
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	b := sys.NewBinding()

	l, err := New(CtypeMask, "C")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if prev := b.Use(l); prev != Global {
		t.Fatalf("Use on an empty slot returned %v want Global", prev)
	}
	if got := b.Current(); got != l {
		t.Fatalf("Current after Use = %v want the installed handle", got)
	}
	if got := b.MBCurMax(); got != 1 {
		t.Fatalf("MBCurMax with C override = %d want 1", got)
	}

	// nil is a pure query and never clears.
	if prev := b.Use(nil); prev != l {
		t.Fatalf("Use(nil) returned %v want the installed handle", prev)
	}
	if got := b.Current(); got != l {
		t.Fatal("Use(nil) mutated the slot")
	}

	// Installing the sentinel clears the slot.
	if prev := b.Use(Global); prev != l {
		t.Fatalf("Use(Global) returned %v want the installed handle", prev)
	}
	if got := b.Current(); got != Global {
		t.Fatalf("Current after Use(Global) = %v want Global", got)
	}

	Free(l)
}

func TestBindingTracksDefaultWhenEmpty(t *testing.T) {
	sys, err := NewSystem()
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	b := sys.NewBinding()

	if _, err := sys.Setlocale(All, "C"); err != nil {
		t.Fatalf("Setlocale(C): %v", err)
	}
	if got := b.MBCurMax(); got != 1 {
		t.Fatalf("empty binding width = %d want 1", got)
	}

	if _, err := sys.Setlocale(All, "C.UTF-8"); err != nil {
		t.Fatalf("Setlocale(C.UTF-8): %v", err)
	}
	if got := b.MBCurMax(); got != 4 {
		t.Fatalf("empty binding width = %d want 4", got)
	}

	// An installed override pins the width against default changes.
	l, err := New(CtypeMask, "C")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Use(l)
	if _, err := sys.Setlocale(All, ""); err != nil {
		t.Fatalf("Setlocale(\"\"): %v", err)
	}
	if got := b.MBCurMax(); got != 1 {
		t.Fatalf("override width = %d want 1", got)
	}
	Free(l)
}

func TestContextCarriesBinding(t *testing.T) {
	sys, err := NewSystem()
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	b := sys.NewBinding()

	l, err := New(CtypeMask, "en_US.UTF-8")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Use(l)

	ctx := NewContext(context.Background(), b)
	if got := FromContext(ctx); got != b {
		t.Fatalf("FromContext = %v want the installed binding", got)
	}
	if got := FromContext(ctx).MBCurMax(); got != 4 {
		t.Fatalf("context binding width = %d want 4", got)
	}

	// A bare context yields a nil binding that still resolves.
	bare := FromContext(context.Background())
	if bare != nil {
		t.Fatalf("FromContext on a bare context = %v want nil", bare)
	}
	if got := bare.Current(); got != Global {
		t.Fatalf("nil binding Current() = %v want Global", got)
	}
	if got := bare.MBCurMax(); got <= 0 {
		t.Fatalf("nil binding MBCurMax() = %d", got)
	}

	Free(l)
}
