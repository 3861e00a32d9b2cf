package cli

import (
	"encoding/json"

	actx "go.hackfix.me/stash/app/context"
)

// The Set command stores the value of a key.
type Set struct {
	Key   string `arg:"" help:"The unique key that identifies the value."`
	Value string `arg:"" help:"The value. Parsed as JSON if possible, otherwise stored as a string."`
}

// Run the set command.
func (c *Set) Run(appCtx *actx.Context) error {
	var val any
	if err := json.Unmarshal([]byte(c.Value), &val); err != nil {
		val = c.Value
	}

	return appCtx.Store.SetItem(c.Key, val)
}
