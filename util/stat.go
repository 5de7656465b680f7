// Package util provides catalog statistics.
package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/l10n-kit/po-sync-helper/pofile"
)

// CatalogStats holds entry statistics for a catalog.
type CatalogStats struct {
	Translated   int `json:"translated"`   // entries with a non-empty translation
	Untranslated int `json:"untranslated"` // entries with an empty msgstr
	Same         int `json:"same"`         // entries where msgstr equals msgid (suspect untranslated)
	Fuzzy        int `json:"fuzzy"`        // entries with the fuzzy flag
	Plural       int `json:"plural"`       // entries with a msgid_plural
	Obsolete     int `json:"obsolete"`     // obsolete entries (#~ format)
}

// CountCatalogStats reads a catalog file and returns entry statistics.
func CountCatalogStats(path string) (*CatalogStats, error) {
	f, err := ReadCatalog(path)
	if err != nil {
		return nil, err
	}
	stats := CountStats(f)
	obsolete, err := countObsoleteEntries(path)
	if err != nil {
		return nil, fmt.Errorf("failed to count obsolete entries: %w", err)
	}
	stats.Obsolete = obsolete
	return stats, nil
}

// CountStats counts entry statistics for a parsed catalog. The header is
// not an entry and is never counted.
func CountStats(f *pofile.File) *CatalogStats {
	stats := &CatalogStats{}
	for _, e := range f.Entries {
		if e.IsPlural() {
			stats.Plural++
		}

		hasTranslation := false
		msgstrValue := ""
		for _, s := range e.MsgStr {
			if s != "" {
				hasTranslation = true
				break
			}
		}
		if len(e.MsgStr) > 0 {
			msgstrValue = e.MsgStr[0]
		}

		if e.IsFuzzy() {
			stats.Fuzzy++
			continue
		}
		if !hasTranslation {
			stats.Untranslated++
			continue
		}
		if msgstrValue == e.MsgID {
			stats.Same++
			// To be compatible with msgfmt --statistics, we count same as translated.
			stats.Translated++
			continue
		}
		stats.Translated++
	}
	return stats
}

// FormatStatLine formats stats in one line, similar to msgfmt --statistics,
// but also includes same, plural, and obsolete. Only non-zero categories
// are shown.
func FormatStatLine(stats *CatalogStats) string {
	var parts []string
	if stats.Translated > 0 {
		if stats.Translated == 1 {
			parts = append(parts, "1 translated message")
		} else {
			parts = append(parts, fmt.Sprintf("%d translated messages", stats.Translated))
		}
	}
	if stats.Fuzzy > 0 {
		if stats.Fuzzy == 1 {
			parts = append(parts, "1 fuzzy translation")
		} else {
			parts = append(parts, fmt.Sprintf("%d fuzzy translations", stats.Fuzzy))
		}
	}
	if stats.Untranslated > 0 {
		if stats.Untranslated == 1 {
			parts = append(parts, "1 untranslated message")
		} else {
			parts = append(parts, fmt.Sprintf("%d untranslated messages", stats.Untranslated))
		}
	}
	if stats.Same > 0 {
		if stats.Same == 1 {
			parts = append(parts, "1 same message")
		} else {
			parts = append(parts, fmt.Sprintf("%d same messages", stats.Same))
		}
	}
	if stats.Plural > 0 {
		if stats.Plural == 1 {
			parts = append(parts, "1 plural message")
		} else {
			parts = append(parts, fmt.Sprintf("%d plural messages", stats.Plural))
		}
	}
	if stats.Obsolete > 0 {
		if stats.Obsolete == 1 {
			parts = append(parts, "1 obsolete entry")
		} else {
			parts = append(parts, fmt.Sprintf("%d obsolete entries", stats.Obsolete))
		}
	}
	if len(parts) == 0 {
		return "0 translated messages.\n"
	}
	return strings.Join(parts, ", ") + ".\n"
}

// countObsoleteEntries counts lines starting with "#~ msgid " in the file.
func countObsoleteEntries(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.HasPrefix(strings.TrimSpace(scanner.Text()), "#~ msgid ") {
			count++
		}
	}
	return count, scanner.Err()
}
