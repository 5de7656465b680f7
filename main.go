package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/l10n-kit/po-sync-helper/cmd"
)

const (
	// Program is name for this project
	Program = "po-sync-helper"
)

func main() {
	resp := cmd.Execute()

	if resp.Err != nil {
		errOut := resp.Cmd.ErrOrStderr()
		if resp.IsUserError() {
			if resp.Cmd.SilenceErrors {
				fmt.Fprintf(errOut, "ERROR: %s\n\n", resp.Err)
			}
			fmt.Fprint(errOut, resp.Cmd.UsageString())
		} else if resp.Cmd.SilenceErrors {
			// Use CommandPath() to get the full command path (e.g., "po-sync-helper update")
			// and remove the Program prefix to get the subcommand path (e.g., "update").
			cmdPath := resp.Cmd.CommandPath()
			subCmdPath := strings.TrimPrefix(cmdPath, Program+" ")
			if subCmdPath == "" {
				// Fallback to Name() if CommandPath() only contains Program
				subCmdPath = resp.Cmd.Name()
			}
			fmt.Fprintln(errOut, "")
			fmt.Fprintf(errOut, "ERROR: fail to execute \"%s %s\": %s\n", Program, subCmdPath, resp.Err)
		}
		os.Exit(-1)
	}
}
