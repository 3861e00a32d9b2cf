package cli

import (
	"github.com/alecthomas/kong"

	actx "go.hackfix.me/stash/app/context"
)

// CLI is the command line interface of stash.
type CLI struct {
	Ctx *kong.Context

	Get   Get   `kong:"cmd,help='Get the value of a key.'"`
	Set   Set   `kong:"cmd,help='Set the value of a key.'"`
	Rm    Rm    `kong:"cmd,help='Delete a key.'"`
	Ls    Ls    `kong:"cmd,help='List keys in the namespace.'"`
	Clear Clear `kong:"cmd,help='Delete all keys in the namespace.'"`
	Len   Len   `kong:"cmd,help='Print the number of keys in the namespace.'"`

	Driver  string `kong:"default='badger',enum='badger,memory,sqlite',help='The backing store driver.'"`
	Prefix  string `kong:"default='stash/',help='The key prefix that scopes this namespace.'"`
	DataDir string `kong:"help='The directory persistent drivers keep their data in.'"`
}

// Setup the command-line interface.
func (c *CLI) Setup(appCtx *actx.Context, args []string, exit func(int)) error {
	parser, err := kong.New(c,
		kong.Name("stash"),
		kong.UsageOnError(),
		kong.DefaultEnvars("STASH"),
		kong.Exit(exit),
		kong.Writers(appCtx.Stdout, appCtx.Stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)
	if err != nil {
		return err
	}

	c.Ctx, err = parser.Parse(args)
	if err != nil {
		return err
	}

	return nil
}
