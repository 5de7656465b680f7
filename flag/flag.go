// Package flag provides read access to persistent command-line flags
// bound in the cmd package.
package flag

import "github.com/spf13/viper"

// Verbose returns the count of the --verbose flag.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns the count of the --quiet flag.
func Quiet() int {
	return viper.GetInt("quiet")
}

// DryRun returns true when running in dryrun mode.
func DryRun() bool {
	return viper.GetBool("dryrun")
}

// GitHubActionEvent returns the github-action event name, or "" when not
// running inside a GitHub Action.
func GitHubActionEvent() string {
	return viper.GetString("github-action-event")
}

// ConfigFile returns the configuration file given by --config, or "".
func ConfigFile() string {
	return viper.GetString("config")
}
