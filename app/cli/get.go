package cli

import (
	"encoding/json"
	"fmt"
	"slices"

	actx "go.hackfix.me/stash/app/context"
)

// The Get command retrieves and prints the value of a key.
type Get struct {
	Key string `arg:"" help:"The unique key associated with the value."`
}

// Run the get command.
func (c *Get) Run(appCtx *actx.Context) error {
	val, err := appCtx.Store.GetItem(c.Key)
	if err != nil {
		return err
	}

	if val == nil {
		// A nil value is either a stored null or an absent key.
		keys, kerr := appCtx.Store.Keys()
		if kerr != nil {
			return kerr
		}
		if !slices.Contains(keys, c.Key) {
			return fmt.Errorf("key '%s' doesn't exist", c.Key)
		}
	}

	if s, ok := val.(string); ok {
		fmt.Fprintf(appCtx.Stdout, "%s\n", s)
		return nil
	}

	enc, err := json.Marshal(val)
	if err != nil {
		return err
	}
	fmt.Fprintf(appCtx.Stdout, "%s\n", enc)

	return nil
}
