package cli

import (
	actx "go.hackfix.me/stash/app/context"
)

// The Clear command deletes all keys in the namespace. Keys outside the
// namespace are left untouched.
type Clear struct{}

// Run the clear command.
func (c *Clear) Run(appCtx *actx.Context) error {
	return appCtx.Store.Clear()
}
