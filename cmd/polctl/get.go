package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/polkit/pkg/types"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <key> [name]",
		Short: "Get the effective value for a key and name",
		Long: `The get command prints the record that wins for a key and value name.
When a file sets the same value more than once the last record wins.
Omit the name to read the default value.

Example:
  polctl get Registry.pol "Software\Policies\Microsoft\Windows\WindowsUpdate\AU" NoAutoUpdate
  polctl get Registry.pol "Software\Policies\Test" --type`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	f, _, err := loadSource(args[:1], "")
	if err != nil {
		return err
	}
	key, name := args[1], ""
	if len(args) == 3 {
		name = args[2]
	}

	p, ok := f.Lookup(key, name)
	if !ok {
		return &types.Error{
			Kind: types.ErrKindNotFound,
			Msg:  fmt.Sprintf("no record for %s\\%s", key, displayName(name)),
		}
	}

	if ok, err := printStructured(viewOf(p)); ok {
		return err
	}
	if getShowType {
		printInfo("%s %s\n", p.Type, formatValue(p))
		return nil
	}
	printInfo("%s\n", formatValue(p))
	return nil
}
