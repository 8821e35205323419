// internal/save/names.go
//
// Save file names.
// Responsibilities:
//   - Clean user input into a usable name (spaces become underscores).
//   - Offer "name[N]" when the name is taken and overwriting is declined.

package save

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidName = errors.New("invalid save name")

// Catalog is what name resolution needs to know about existing saves.
type Catalog interface {
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]string, error)
}

// ConfirmOverwrite asks whether name should be overwritten; alt is the
// name that will be used instead if not.
type ConfirmOverwrite func(name, alt string) (bool, error)

// CleanName turns user input into a save name: spaces become
// underscores, and anything that could escape the save location is
// rejected.
func CleanName(raw string) (string, error) {
	name := strings.ReplaceAll(strings.TrimSpace(raw), " ", "_")
	switch {
	case name == "":
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	case strings.ContainsAny(name, `/\`), strings.HasPrefix(name, "."):
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}

// ResolveName returns the name to save under. A new name is used as is.
// For an existing one the user may overwrite it or take an alternate of
// the form name[N], where N starts at the number of saves and grows until
// the alternate is free.
func ResolveName(ctx context.Context, c Catalog, name string, confirm ConfirmOverwrite) (string, error) {
	exists, err := c.Exists(ctx, name)
	if err != nil {
		return "", err
	}
	if !exists {
		return name, nil
	}

	names, err := c.List(ctx)
	if err != nil {
		return "", err
	}
	taken := make(map[string]struct{}, len(names))
	for _, n := range names {
		taken[n] = struct{}{}
	}
	n := len(names)
	alt := fmt.Sprintf("%s[%d]", name, n)
	for {
		if _, ok := taken[alt]; !ok {
			break
		}
		n++
		alt = fmt.Sprintf("%s[%d]", name, n)
	}

	overwrite, err := confirm(name, alt)
	if err != nil {
		return "", err
	}
	if overwrite {
		return name, nil
	}
	return alt, nil
}
