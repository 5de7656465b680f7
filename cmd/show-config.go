package cmd

import (
	"github.com/l10n-kit/po-sync-helper/util"
	"github.com/spf13/cobra"
)

type showConfigCommand struct {
	cmd *cobra.Command
}

func (v *showConfigCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "show-config",
		Short: "Show the merged configuration as YAML",
		Long: `Show the configuration after merging built-in defaults,
~/.po-sync-helper.yaml, the po-sync-helper.yaml of the worktree, and the
file given by --config.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v showConfigCommand) Execute(args []string) error {
	if len(args) != 0 {
		return newUserError("show-config command needs no arguments")
	}
	cfg, err := loadConfig()
	if err != nil {
		return NewStandardErrorF("fail to load configuration: %v", err)
	}
	return util.CmdShowConfig(cfg)
}

var showConfigCmd = showConfigCommand{}

func init() {
	rootCmd.AddCommand(showConfigCmd.Command())
}
