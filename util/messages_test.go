package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMessagesObject(t *testing.T) {
	data := `{
  "entries": [
    {"msgid": "Hello", "reference": "a.kt:10"},
    {"msgid": "Bye", "references": ["b.kt:4", "c.kt:9"], "comments": ["farewell"]},
    {"msgid": "One file", "msgid_plural": "Many files", "reference": "d.kt:2"},
    {"msgid": "Menu", "msgctxt": "ui", "flags": "kotlin-format"}
  ]
}`
	entries, err := ParseMessages([]byte(data))
	if err != nil {
		t.Fatalf("fail to parse inventory: %s", err)
	}
	if len(entries) != 4 {
		t.Fatalf("want 4 entries, got %d", len(entries))
	}
	if entries[0].MsgID != "Hello" || len(entries[0].References) != 1 ||
		entries[0].References[0] != "a.kt:10" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if got := strings.Join(entries[1].References, " "); got != "b.kt:4 c.kt:9" {
		t.Errorf("references: want %q, got %q", "b.kt:4 c.kt:9", got)
	}
	if len(entries[1].ExtractedComments) != 1 || entries[1].ExtractedComments[0] != "farewell" {
		t.Errorf("unexpected comments: %v", entries[1].ExtractedComments)
	}
	if entries[2].MsgIDPlural != "Many files" {
		t.Errorf("msgid_plural: want %q, got %q", "Many files", entries[2].MsgIDPlural)
	}
	if len(entries[2].MsgStr) != 2 || entries[2].MsgStr[0] != "" || entries[2].MsgStr[1] != "" {
		t.Errorf("plural entry msgstr not normalized: %q", entries[2].MsgStr)
	}
	if entries[3].Context != "ui" || entries[3].Flags != "kotlin-format" {
		t.Errorf("unexpected context entry: %+v", entries[3])
	}
	if len(entries[0].MsgStr) != 1 || entries[0].MsgStr[0] != "" {
		t.Errorf("singular entry msgstr not normalized: %q", entries[0].MsgStr)
	}
}

func TestParseMessagesBareArray(t *testing.T) {
	data := `[{"msgid": "Hello", "reference": "a.kt:1"}, {"msgid": "Bye"}]`
	entries, err := ParseMessages([]byte(data))
	if err != nil {
		t.Fatalf("fail to parse inventory: %s", err)
	}
	if len(entries) != 2 || entries[0].MsgID != "Hello" || entries[1].MsgID != "Bye" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestParseMessagesJSONLines(t *testing.T) {
	data := `{"msgid": "Hello", "reference": "a.kt:1"}
{"msgid": "Bye", "reference": "b.kt:2"}
{"msgid": "Menu"`
	entries, err := ParseMessages([]byte(data))
	if err != nil {
		t.Fatalf("fail to parse inventory: %s", err)
	}
	if len(entries) < 2 {
		t.Fatalf("want at least the 2 complete records, got %d", len(entries))
	}
	if entries[0].MsgID != "Hello" || entries[1].MsgID != "Bye" {
		t.Errorf("unexpected entries: %+v", entries[:2])
	}
}

func TestParseMessagesSingleRecord(t *testing.T) {
	entries, err := ParseMessages([]byte(`{"msgid": "Hello", "reference": "a.kt:1"}`))
	if err != nil {
		t.Fatalf("fail to parse inventory: %s", err)
	}
	if len(entries) != 1 || entries[0].MsgID != "Hello" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestParseMessagesSkipsRecordsWithoutMsgID(t *testing.T) {
	data := `[{"reference": "a.kt:1"}, {"msgid": ""}, {"msgid": "Hello"}]`
	entries, err := ParseMessages([]byte(data))
	if err != nil {
		t.Fatalf("fail to parse inventory: %s", err)
	}
	if len(entries) != 1 || entries[0].MsgID != "Hello" {
		t.Errorf("want only the Hello record, got %+v", entries)
	}
}

func TestParseMessagesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"blank", "  \n  "},
		{"object without entries", `{"messages": []}`},
		{"no usable records", `[{"reference": "a.kt:1"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if entries, err := ParseMessages([]byte(tt.data)); err == nil {
				t.Errorf("want error, got %d entries", len(entries))
			}
		})
	}
}

func TestLoadMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.json")
	data := `{"entries": [{"msgid": "Hello", "reference": "a.kt:1"}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("fail to write inventory: %s", err)
	}
	entries, err := LoadMessages(path)
	if err != nil {
		t.Fatalf("fail to load inventory: %s", err)
	}
	if len(entries) != 1 || entries[0].MsgID != "Hello" {
		t.Errorf("unexpected entries: %+v", entries)
	}

	if _, err := LoadMessages(filepath.Join(t.TempDir(), "no-such.json")); err == nil {
		t.Error("want error for missing inventory file")
	}
}
