package cli

import (
	"fmt"

	actx "go.hackfix.me/stash/app/context"
)

// The Len command prints the number of keys in the namespace.
type Len struct{}

// Run the len command.
func (c *Len) Run(appCtx *actx.Context) error {
	n, err := appCtx.Store.Length()
	if err != nil {
		return err
	}

	fmt.Fprintf(appCtx.Stdout, "%d\n", n)

	return nil
}
