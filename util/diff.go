// Package util provides entry-level catalog comparison.
package util

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/l10n-kit/po-sync-helper/pofile"
	log "github.com/sirupsen/logrus"
)

// DiffStat holds the diff statistics between two catalogs.
type DiffStat struct {
	Added   int `json:"added"`   // entries in new but not in old
	Changed int `json:"changed"` // same msgid but different content
	Deleted int `json:"deleted"` // entries in old but not in new
}

// EntryChange describes one added, changed, or deleted entry.
type EntryChange struct {
	Kind  string `json:"kind"` // "added", "changed", or "deleted"
	MsgID string `json:"msgid"`
}

// EntriesEqual checks if two entries have equal content: context, msgid,
// plural forms, translation, and flags. References and comments do not
// count.
func EntriesEqual(e1, e2 *pofile.Entry) bool {
	if e1.Flags != e2.Flags {
		return false
	}
	if e1.Context != e2.Context {
		return false
	}
	if e1.MsgID != e2.MsgID {
		return false
	}
	if e1.MsgIDPlural != e2.MsgIDPlural {
		return false
	}
	if len(e1.MsgStr) != len(e2.MsgStr) {
		return false
	}
	for i := range e1.MsgStr {
		if e1.MsgStr[i] != e2.MsgStr[i] {
			return false
		}
	}
	return true
}

// CompareCatalogs compares two catalogs entry-by-entry with a two-pointer
// walk over msgid-sorted copies. Returns diff statistics and the changes in
// msgid order.
func CompareCatalogs(oldFile, newFile *pofile.File) (DiffStat, []EntryChange) {
	oldEntries := sortedByMsgID(oldFile.Entries)
	newEntries := sortedByMsgID(newFile.Entries)

	var stat DiffStat
	var changes []EntryChange
	i, j := 0, 0
	for i < len(oldEntries) && j < len(newEntries) {
		cmp := strings.Compare(oldEntries[i].MsgID, newEntries[j].MsgID)
		if cmp < 0 {
			stat.Deleted++
			changes = append(changes, EntryChange{Kind: "deleted", MsgID: oldEntries[i].MsgID})
			i++
		} else if cmp > 0 {
			stat.Added++
			changes = append(changes, EntryChange{Kind: "added", MsgID: newEntries[j].MsgID})
			j++
		} else {
			if !EntriesEqual(&oldEntries[i], &newEntries[j]) {
				stat.Changed++
				changes = append(changes, EntryChange{Kind: "changed", MsgID: newEntries[j].MsgID})
			}
			i++
			j++
		}
	}
	for i < len(oldEntries) {
		stat.Deleted++
		changes = append(changes, EntryChange{Kind: "deleted", MsgID: oldEntries[i].MsgID})
		i++
	}
	for j < len(newEntries) {
		stat.Added++
		changes = append(changes, EntryChange{Kind: "added", MsgID: newEntries[j].MsgID})
		j++
	}
	log.Debugf("diff stats: added=%d, changed=%d, deleted=%d", stat.Added, stat.Changed, stat.Deleted)
	return stat, changes
}

func sortedByMsgID(entries []pofile.Entry) []pofile.Entry {
	out := make([]pofile.Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].MsgID < out[j].MsgID })
	return out
}

// CmdDiff implements the diff command logic.
func CmdDiff(oldPath, newPath string, asJSON bool) error {
	oldFile, err := ReadCatalog(oldPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", oldPath, err)
	}
	newFile, err := ReadCatalog(newPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", newPath, err)
	}

	stat, changes := CompareCatalogs(oldFile, newFile)
	if asJSON {
		if changes == nil {
			changes = []EntryChange{}
		}
		out := struct {
			DiffStat
			Changes []EntryChange `json:"changes"`
		}{stat, changes}
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode diff JSON: %w", err)
		}
		return nil
	}

	for _, c := range changes {
		fmt.Printf("%-8s %q\n", c.Kind, c.MsgID)
	}
	fmt.Printf("%d added, %d changed, %d deleted\n", stat.Added, stat.Changed, stat.Deleted)
	return nil
}
