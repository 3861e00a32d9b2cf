package cli

import (
	"fmt"
	"slices"

	actx "go.hackfix.me/stash/app/context"
)

// The Ls command prints keys in the namespace.
type Ls struct{}

// Run the ls command.
func (c *Ls) Run(appCtx *actx.Context) error {
	keys, err := appCtx.Store.Keys()
	if err != nil {
		return err
	}

	// Driver enumeration order is unspecified, so sort for stable output.
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Fprintf(appCtx.Stdout, "%s\n", key)
	}

	return nil
}
