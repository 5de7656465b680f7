package cmd

import (
	"github.com/l10n-kit/po-sync-helper/config"
	"github.com/l10n-kit/po-sync-helper/util"
	"github.com/spf13/cobra"
)

type initCommand struct {
	cmd *cobra.Command
	O   struct {
		Messages         string
		Output           string
		Force            bool
		ProjectIDVersion string
		ReportBugsTo     string
		LanguageTeam     string
		Language         string
	}
}

func (v *initCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "init",
		Short: "Create a catalog template from a message inventory",
		Long: `Create a catalog template (POT file) from a message inventory.

The inventory is a JSON file of extracted messages (an object with an
"entries" array, a bare array, or JSON lines). Records that share a msgid
are folded into one entry that carries every source reference.

Header fields come from the configuration file and can be overridden on
the command line.

Examples:
  po-sync-helper init -m messages.json
  po-sync-helper init -m messages.json -o po/app.pot --language-team "de <de@li.org>"`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false

	fs.StringVarP(&v.O.Messages, "messages", "m", "",
		"message inventory to read (defaults to the configured inventory)")
	fs.StringVarP(&v.O.Output, "output", "o", "messages.pot",
		"write the catalog template to this file (use - for stdout)")
	fs.BoolVar(&v.O.Force, "force", false,
		"overwrite the output file without asking")
	flagGroup(fs, "General options", "messages", "output", "force")

	fs.StringVar(&v.O.ProjectIDVersion, "project-id-version", "",
		"Project-Id-Version header field")
	fs.StringVar(&v.O.ReportBugsTo, "report-msgid-bugs-to", "",
		"Report-Msgid-Bugs-To header field")
	fs.StringVar(&v.O.LanguageTeam, "language-team", "",
		"Language-Team header field")
	fs.StringVar(&v.O.Language, "language", "",
		"Language header field")
	flagGroup(fs, "Header fields",
		"project-id-version", "report-msgid-bugs-to", "language-team", "language")

	useGroupedFlagHelp(v.cmd)

	return v.cmd
}

func (v initCommand) Execute(args []string) error {
	if len(args) != 0 {
		return newUserError("init command needs no arguments")
	}
	cfg, err := loadConfig()
	if err != nil {
		return NewStandardErrorF("fail to load configuration: %v", err)
	}
	v.applyHeaderFlags(cfg)
	messages := v.O.Messages
	if messages == "" {
		messages = cfg.Messages
	}
	return util.CmdInit(messages, v.O.Output, cfg, v.O.Force)
}

// applyHeaderFlags overrides configured header fields with command-line
// values.
func (v initCommand) applyHeaderFlags(cfg *config.Config) {
	if v.O.ProjectIDVersion != "" {
		cfg.Header.ProjectIDVersion = v.O.ProjectIDVersion
	}
	if v.O.ReportBugsTo != "" {
		cfg.Header.ReportBugsTo = v.O.ReportBugsTo
	}
	if v.O.LanguageTeam != "" {
		cfg.Header.LanguageTeam = v.O.LanguageTeam
	}
	if v.O.Language != "" {
		cfg.Header.Language = v.O.Language
	}
}

var initCmd = initCommand{}

func init() {
	rootCmd.AddCommand(initCmd.Command())
}
