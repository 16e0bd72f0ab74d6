package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/polkit/pkg/types"
)

var infoScope string

func init() {
	cmd := newInfoCmd()
	cmd.Flags().StringVar(&infoScope, "scope", "", "Summarize the User or Machine store instead of a file")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Summarize a policy file",
		Long: `The info command prints the header fields of a Registry.pol file, the number
of records and keys, and how many records carry each value type.

Example:
  polctl info Registry.pol
  polctl info --scope User --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// fileInfo is the info summary.
type fileInfo struct {
	File       string         `json:"file" yaml:"file"`
	Signature  string         `json:"signature" yaml:"signature"`
	Version    uint32         `json:"version" yaml:"version"`
	Records    int            `json:"records" yaml:"records"`
	Keys       int            `json:"keys" yaml:"keys"`
	Directives int            `json:"directives" yaml:"directives"`
	Types      map[string]int `json:"types" yaml:"types"`
}

func summarize(label string, f types.PolFile) fileInfo {
	info := fileInfo{
		File:      label,
		Signature: fmt.Sprintf("0x%08x", f.Signature),
		Version:   f.Version,
		Records:   len(f.Policies),
		Keys:      len(f.Keys()),
		Types:     make(map[string]int),
	}
	for _, p := range f.Policies {
		info.Types[p.Type.String()]++
		if d, _ := p.Directive(); d != types.DirectiveSet {
			info.Directives++
		}
	}
	return info
}

func runInfo(args []string) error {
	f, label, err := loadSource(args, infoScope)
	if err != nil {
		return err
	}
	info := summarize(label, f)

	if ok, err := printStructured(info); ok {
		return err
	}

	printInfo("File:        %s\n", info.File)
	printInfo("Signature:   %s\n", info.Signature)
	printInfo("Version:     %d\n", info.Version)
	printInfo("Records:     %d\n", info.Records)
	printInfo("Keys:        %d\n", info.Keys)
	printInfo("Directives:  %d\n", info.Directives)
	if len(info.Types) == 0 {
		return nil
	}

	names := make([]string, 0, len(info.Types))
	for name := range info.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	printInfo("\nTypes:\n")
	for _, name := range names {
		printInfo("  %-28s %d\n", name, info.Types[name])
	}
	return nil
}
