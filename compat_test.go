package locale

import "testing"

func TestShimsIgnoreHandle(t *testing.T) {
	freed, err := New(CtypeMask, "C")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Free(freed)

	// Any handle value is an inert token here, even a freed one.
	handles := []*Locale{nil, Global, freed}

	for _, l := range handles {
		if got := CompareFold("Hello", "hello", l); got != 0 {
			t.Fatalf("CompareFold(Hello, hello) = %d", got)
		}
		if got := CompareFold("abc", "abd", l); got >= 0 {
			t.Fatalf("CompareFold(abc, abd) = %d", got)
		}
		if got := Compare("a", "b", l); got >= 0 {
			t.Fatalf("Compare(a, b) = %d", got)
		}
		if got := Compare("same", "same", l); got != 0 {
			t.Fatalf("Compare(same, same) = %d", got)
		}
		if got := Transform("abc", l); got != "abc" {
			t.Fatalf("Transform(abc) = %q", got)
		}

		f, err := ParseFloat("3.25", 64, l)
		if err != nil || f != 3.25 {
			t.Fatalf("ParseFloat(3.25) = %v, %v", f, err)
		}
		n, err := ParseInt("-42", 10, 64, l)
		if err != nil || n != -42 {
			t.Fatalf("ParseInt(-42) = %v, %v", n, err)
		}
		u, err := ParseUint("42", 10, 64, l)
		if err != nil || u != 42 {
			t.Fatalf("ParseUint(42) = %v, %v", u, err)
		}
	}
}

func TestShimsMatchDelegates(t *testing.T) {
	// The shims never grow locale awareness: the decimal separator stays
	// "." whatever the active personality claims.
	sys, err := NewSystem(WithDefaultLocale("C"))
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	l := sys.Duplicate(Global)
	defer Free(l)

	if _, err := ParseFloat("3,25", 64, l); err == nil {
		t.Fatal("ParseFloat accepted a comma decimal separator")
	}
	if f, err := ParseFloat("1e3", 64, l); err != nil || f != 1000 {
		t.Fatalf("ParseFloat(1e3) = %v, %v", f, err)
	}
}
