package config

import (
	"fmt"
	"regexp"
	"strings"
)

// envRefPattern matches ${env://VAR} and ${env://VAR:-default}.
var envRefPattern = regexp.MustCompile(`\$\{env://([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// MissingEnvError reports the variables referenced without a default that
// were unset or empty during expansion.
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("environment variable substitution failed: required variables not set: %s",
		strings.Join(e.Names, ", "))
}

// splitDefault splits "VAR:-default" into its name and default value.
func splitDefault(ref string) (name, def string, hasDefault bool) {
	name, def, hasDefault = strings.Cut(ref, ":-")
	return name, def, hasDefault
}

// ExpandEnv replaces every ${env://VAR} reference in content with the value
// returned by lookup. Unset or empty variables take their default when one is
// given; otherwise they are collected into a *MissingEnvError and the
// reference is left in place.
func ExpandEnv(content string, lookup func(string) string) (string, error) {
	var missing []string

	out := envRefPattern.ReplaceAllStringFunc(content, func(match string) string {
		ref := strings.TrimSuffix(strings.TrimPrefix(match, "${env://"), "}")
		name, def, hasDefault := splitDefault(ref)

		if v := lookup(name); v != "" {
			return v
		}
		if hasDefault {
			return def
		}
		missing = append(missing, name)
		return match
	})

	if len(missing) > 0 {
		return "", &MissingEnvError{Names: missing}
	}
	return out, nil
}

// HasEnvRefs reports whether content contains any ${env://...} reference.
func HasEnvRefs(content string) bool {
	return envRefPattern.MatchString(content)
}
