package cmd

import (
	"github.com/l10n-kit/po-sync-helper/util"
	"github.com/spf13/cobra"
)

type diffCommand struct {
	cmd *cobra.Command
	O   struct {
		JSON bool
	}
}

func (v *diffCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "diff <old.po> <new.po>",
		Short: "Show entry-level differences between two catalogs",
		Long: `Show entry-level differences between two catalogs: entries added,
deleted, or changed by msgid. Source references and comments are ignored
when comparing, so a pure re-extraction shows up empty.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	v.cmd.Flags().BoolVar(&v.O.JSON, "json", false,
		"output differences as JSON")

	return v.cmd
}

func (v diffCommand) Execute(args []string) error {
	if len(args) != 2 {
		return newUserError("diff requires exactly two arguments: <old.po> <new.po>")
	}
	return util.CmdDiff(args[0], args[1], v.O.JSON)
}

var diffCmd = diffCommand{}

func init() {
	rootCmd.AddCommand(diffCmd.Command())
}
