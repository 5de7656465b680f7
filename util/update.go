// Package util provides the init and update command logic.
package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/l10n-kit/po-sync-helper/config"
	"github.com/l10n-kit/po-sync-helper/flag"
	"github.com/l10n-kit/po-sync-helper/pofile"
	log "github.com/sirupsen/logrus"
)

// CmdInit implements the init command: build a fresh catalog from a
// message inventory, stamp configured header fields, and write it.
func CmdInit(messagesFile, output string, cfg *config.Config, force bool) error {
	raw, err := LoadMessages(messagesFile)
	if err != nil {
		return err
	}
	f := pofile.FromUnmerged(raw)
	StampHeader(f, cfg)

	if flag.DryRun() {
		log.Infof("dryrun: would create %s with %d entries", output, len(f.Entries))
		return nil
	}
	if err := ConfirmOverwrite(output, force); err != nil {
		return err
	}
	if err := WriteCatalog(f, output); err != nil {
		return err
	}
	log.Infof("created %s with %d entries", output, len(f.Entries))
	return nil
}

// CmdUpdate implements the update command for one catalog file. A missing
// catalog is created from scratch instead.
func CmdUpdate(poFile, messagesFile, output string, cfg *config.Config) bool {
	raw, err := LoadMessages(messagesFile)
	if err != nil {
		log.Errorf("%s", err)
		return false
	}

	existing := &pofile.File{Header: pofile.DefaultHeader()}
	var f *pofile.File
	if Exist(poFile) {
		existing, err = ReadCatalog(poFile)
		if err != nil {
			log.Errorf("%s", err)
			return false
		}
		f = existing.Update(raw)
		log.Debugf("updated %s: %d entries before, %d after",
			poFile, len(existing.Entries), len(f.Entries))
	} else {
		log.Warnf("catalog %s does not exist, creating from scratch", poFile)
		f = pofile.FromUnmerged(raw)
		StampHeader(f, cfg)
	}

	if output == "" {
		output = poFile
	}
	if flag.DryRun() {
		stat, _ := CompareCatalogs(existing, f)
		log.Infof("dryrun: would write %s: %d added, %d changed, %d deleted",
			output, stat.Added, stat.Changed, stat.Deleted)
		return true
	}
	if err := WriteCatalog(f, output); err != nil {
		log.Errorf("%s", err)
		return false
	}
	log.Infof("wrote %s: %d entries", output, len(f.Entries))
	return true
}

// StampHeader applies configured header fields to the catalog header.
func StampHeader(f *pofile.File, cfg *config.Config) {
	if cfg == nil {
		return
	}
	for _, field := range cfg.Header.Fields() {
		f.SetHeaderField(field[0], field[1])
	}
}

// WriteCatalog writes the catalog to path, "-" meaning stdout.
func WriteCatalog(f *pofile.File, path string) error {
	if path == "-" {
		if err := f.Write(os.Stdout); err != nil {
			return fmt.Errorf("failed to write catalog: %w", err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." && !Exist(dir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(f.String()), 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}
