package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// ctypeVars is the precedence the C runtime gives the locale environment
// when resolving the character type.
var ctypeVars = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// CtypeVar reports which environment variable currently decides the
// charset, and its raw value, for diagnostics. Both are empty when none is
// set.
func CtypeVar() (name, value string) {
	for _, candidate := range ctypeVars {
		if v := os.Getenv(candidate); v != "" {
			return candidate, v
		}
	}
	return "", ""
}

// EnvName inspects the locale environment, highest precedence first, and
// maps the first set variable onto a supported locale name. ok is false
// when no variable is set, or when the requested locale cannot be served
// by either supported personality. Later variables are not consulted once
// one is set, matching the C runtime's resolution.
func EnvName() (name string, ok bool) {
	_, value := CtypeVar()
	if value == "" {
		return "", false
	}
	return mapEnvName(value)
}

// mapEnvName maps an environment locale value such as "en_US.utf8" or
// "POSIX" onto the supported name set. Any UTF-8 locale is serviceable by
// the multibyte personality; single-byte locales only exist for C and
// POSIX.
func mapEnvName(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if Supported(value) {
		return value, true
	}

	base, codeset := value, ""
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		base, codeset = value[:idx], value[idx+1:]
	}
	if idx := strings.IndexByte(codeset, '@'); idx >= 0 {
		codeset = codeset[:idx]
	}
	utf8 := strings.EqualFold(codeset, "UTF-8") || strings.EqualFold(codeset, "UTF8")

	switch base {
	case "C", "POSIX":
		if utf8 {
			return "C.UTF-8", true
		}
		return base, true
	}

	tag, err := language.Parse(strings.ReplaceAll(base, "_", "-"))
	if err != nil {
		return "", false
	}
	if !utf8 {
		return "", false
	}
	if lang, _ := tag.Base(); lang.String() == "en" {
		return "en_US.UTF-8", true
	}
	return "C.UTF-8", true
}

// SetNative selects the default personality from the environment on the
// default System. See System.SetNative.
func SetNative() (string, bool) {
	return defaultSystem.SetNative()
}

// SetNative selects the default personality from the environment, the way
// a runtime bootstrap honors LC_ALL, LC_CTYPE and LANG. When no variable
// is set, or the requested locale cannot be served here, the default is
// left untouched and the current canonical name is returned with ok set to
// false; CtypeVar then names the variable that asked for the unavailable
// locale.
func (s *System) SetNative() (string, bool) {
	name, ok := EnvName()
	if !ok {
		return canonicalName(s.utf8.Load()), false
	}

	canonical, err := s.Setlocale(All, name)
	if err != nil {
		return canonicalName(s.utf8.Load()), false
	}
	return canonical, true
}
