package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/l10n-kit/po-sync-helper/pofile"
)

func TestCountStats(t *testing.T) {
	f := &pofile.File{
		Header: pofile.DefaultHeader(),
		Entries: []pofile.Entry{
			{MsgID: "Hello", MsgStr: []string{"Hallo"}},
			{MsgID: "Bye", MsgStr: []string{""}},
			{MsgID: "OK", MsgStr: []string{"OK"}},
			{MsgID: "Maybe", Flags: "fuzzy", MsgStr: []string{"Vielleicht"}},
			{MsgID: "One file", MsgIDPlural: "Many files", MsgStr: []string{"Eine Datei", ""}},
		},
	}
	stats := CountStats(f)
	if stats.Translated != 3 {
		t.Errorf("translated: want 3, got %d", stats.Translated)
	}
	if stats.Untranslated != 1 {
		t.Errorf("untranslated: want 1, got %d", stats.Untranslated)
	}
	if stats.Same != 1 {
		t.Errorf("same: want 1, got %d", stats.Same)
	}
	if stats.Fuzzy != 1 {
		t.Errorf("fuzzy: want 1, got %d", stats.Fuzzy)
	}
	if stats.Plural != 1 {
		t.Errorf("plural: want 1, got %d", stats.Plural)
	}
}

func TestCountStatsFuzzyWinsOverUntranslated(t *testing.T) {
	f := &pofile.File{
		Entries: []pofile.Entry{
			{MsgID: "Hello", Flags: "fuzzy", MsgStr: []string{""}},
		},
	}
	stats := CountStats(f)
	if stats.Fuzzy != 1 || stats.Untranslated != 0 {
		t.Errorf("want fuzzy=1 untranslated=0, got fuzzy=%d untranslated=%d",
			stats.Fuzzy, stats.Untranslated)
	}
}

func TestCountCatalogStats(t *testing.T) {
	poContent := `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Hello"
msgstr "Hallo"

msgid "Bye"
msgstr ""

#~ msgid "Old"
#~ msgstr "Alt"
`
	path := filepath.Join(t.TempDir(), "de.po")
	if err := os.WriteFile(path, []byte(poContent), 0644); err != nil {
		t.Fatalf("fail to write po file: %s", err)
	}
	stats, err := CountCatalogStats(path)
	if err != nil {
		t.Fatalf("fail to count stats: %s", err)
	}
	if stats.Translated != 1 {
		t.Errorf("translated: want 1, got %d", stats.Translated)
	}
	if stats.Untranslated != 1 {
		t.Errorf("untranslated: want 1, got %d", stats.Untranslated)
	}
	if stats.Obsolete != 1 {
		t.Errorf("obsolete: want 1, got %d", stats.Obsolete)
	}
}

func TestFormatStatLine(t *testing.T) {
	tests := []struct {
		name  string
		stats CatalogStats
		want  string
	}{
		{
			name:  "empty",
			stats: CatalogStats{},
			want:  "0 translated messages.\n",
		},
		{
			name:  "singular forms",
			stats: CatalogStats{Translated: 1, Fuzzy: 1, Untranslated: 1},
			want:  "1 translated message, 1 fuzzy translation, 1 untranslated message.\n",
		},
		{
			name:  "plural forms",
			stats: CatalogStats{Translated: 5, Untranslated: 3, Same: 2, Obsolete: 4},
			want:  "5 translated messages, 3 untranslated messages, 2 same messages, 4 obsolete entries.\n",
		},
		{
			name:  "plural category",
			stats: CatalogStats{Translated: 2, Plural: 1},
			want:  "2 translated messages, 1 plural message.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStatLine(&tt.stats); got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}
