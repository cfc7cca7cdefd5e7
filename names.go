package locale

import "strings"

// supportedNames is the complete set of accepted locale names. The empty
// string selects the implementation default, which always resolves to the
// UTF-8 personality.
var supportedNames = []string{"", "C", "POSIX", "C.UTF-8", "en_US.UTF-8"}

// Supported reports whether name is one of the locale names this runtime
// accepts. Matching is exact; "c" or "en_US" are not supported.
func Supported(name string) bool {
	for _, candidate := range supportedNames {
		if name == candidate {
			return true
		}
	}
	return false
}

// IsUTF8Name reports whether name selects the UTF-8 personality: the empty
// string, or any name containing "UTF-8".
func IsUTF8Name(name string) bool {
	return name == "" || strings.Contains(name, "UTF-8")
}

// canonicalName is the name Query reports for a personality.
func canonicalName(utf8 bool) string {
	if utf8 {
		return "C.UTF-8"
	}
	return "C"
}
