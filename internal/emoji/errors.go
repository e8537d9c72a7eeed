package emoji

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolvableReference is returned when an alias chain dead-ends or
	// the name has no entry in the custom emoji list.
	ErrUnresolvableReference = errors.New("unresolvable emoji reference")

	// ErrAssetNotFound is returned when neither the custom emoji list nor the
	// basic emoji table knows the name.
	ErrAssetNotFound = errors.New("emoji found neither in custom nor basic emoji")

	// ErrDownloadFailed wraps errors from the download capability.
	ErrDownloadFailed = errors.New("emoji download failed")
)

// CyclicAliasError reports an alias chain that revisits a name or does not
// terminate within MaxAliasDepth hops.
type CyclicAliasError struct {
	Name  string
	Chain []string
}

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("alias chain for %q does not terminate: %s", e.Name, strings.Join(e.Chain, " -> "))
}

// Is makes a cyclic chain match ErrUnresolvableReference.
func (e *CyclicAliasError) Is(target error) bool {
	return target == ErrUnresolvableReference
}

// Failure records a single emoji that could not be materialized.
type Failure struct {
	Name string
	Kind Kind
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("emoji :%s: (%s): %v", f.Name, f.Kind, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}
