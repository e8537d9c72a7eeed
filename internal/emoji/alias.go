package emoji

import (
	"fmt"
	"strings"
)

const aliasPrefix = "alias:"

// MaxAliasDepth bounds how many alias hops ResolveFinalName follows.
const MaxAliasDepth = 32

// ResolveFinalName follows "alias:<target>" values in list starting at name
// and returns the last name whose value is not an alias. The URL for the
// emoji is list[finalName].
func ResolveFinalName(name string, list map[string]string) (string, error) {
	start := name
	var chain []string
	seen := make(map[string]bool)

	for {
		value := list[name]
		if value == "" {
			if len(chain) == 0 {
				return "", fmt.Errorf("%w: %q", ErrUnresolvableReference, name)
			}
			return "", fmt.Errorf("%w: %q is an alias of missing %q", ErrUnresolvableReference, start, name)
		}

		target, ok := aliasTarget(value)
		if !ok {
			return name, nil
		}

		seen[name] = true
		chain = append(chain, name)
		if seen[target] || len(chain) >= MaxAliasDepth {
			return "", &CyclicAliasError{Name: start, Chain: append(chain, target)}
		}
		name = target
	}
}

// aliasTarget returns everything after the alias prefix.
func aliasTarget(value string) (string, bool) {
	if !strings.HasPrefix(value, aliasPrefix) {
		return "", false
	}
	return strings.TrimPrefix(value, aliasPrefix), true
}
