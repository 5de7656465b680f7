// Package util provides catalog file discovery and selection.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// PoDir is the conventional directory for translation catalogs.
const PoDir = "po"

// DiscoverCatalogs returns the catalog files a command works on when none
// are given on the command line. The configured catalog list wins; without
// one, "*.po" files under the po/ directory of workDir are used, sorted by
// name. Paths are returned relative to the current directory convention of
// the caller (configured paths verbatim, discovered paths as po/XX.po).
func DiscoverCatalogs(configured []string, workDir string) []string {
	if len(configured) > 0 {
		return configured
	}
	poDir := filepath.Join(workDir, PoDir)
	if !IsDir(poDir) {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(poDir, "*.po"))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	var catalogs []string
	for _, m := range matches {
		catalogs = append(catalogs, filepath.ToSlash(filepath.Join(PoDir, filepath.Base(m))))
	}
	return catalogs
}

// SelectCatalog resolves the single catalog file to work on when the user
// did not name one: auto when there is exactly one candidate, interactive
// when multiple and connected to a terminal, an error otherwise.
func SelectCatalog(candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("no catalog files found\nHint: Specify po/XX.po explicitly or list catalogs in po-sync-helper.yaml")
	case 1:
		poFile := candidates[0]
		log.Infof("auto-selected catalog: %s", poFile)
		return poFile, nil
	default:
		if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Printf("Multiple catalog files found:\n")
			for i, f := range candidates {
				fmt.Printf("  [%d] %s\n", i+1, f)
			}
			answer := GetUserInput(fmt.Sprintf("Select file (1-%d): ", len(candidates)), "1")
			var idx int
			if _, err := fmt.Sscanf(answer, "%d", &idx); err != nil || idx < 1 || idx > len(candidates) {
				return "", fmt.Errorf("invalid selection: %s", answer)
			}
			poFile := candidates[idx-1]
			log.Infof("user selected catalog: %s", poFile)
			return poFile, nil
		}
		return "", fmt.Errorf("multiple catalog files found (%s), specify one explicitly in non-interactive mode\nHint: Run with po/XX.po argument", strings.Join(candidates, ", "))
	}
}

// ConfirmOverwrite asks before clobbering path. Non-interactive runs must
// pass force.
func ConfirmOverwrite(path string, force bool) error {
	if !Exist(path) || force {
		return nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		answer := GetUserInput(fmt.Sprintf("File %s exists. Overwrite? (y/N): ", path), "n")
		if AnswerIsTrue(answer) {
			return nil
		}
		return fmt.Errorf("will not overwrite %s", path)
	}
	return fmt.Errorf("file %s exists, use --force to overwrite", path)
}
