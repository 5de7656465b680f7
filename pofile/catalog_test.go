package pofile

import (
	"strings"
	"testing"
)

func refsEqual(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("references: got %q, want %q", got, want)
	}
}

func TestFromUnmergedDeduplicates(t *testing.T) {
	raw := []Entry{
		{MsgID: "Hello", References: []string{"a:1"}},
		{MsgID: "Bye", References: []string{"a:5"}},
		{MsgID: "Hello", References: []string{"b:2"}},
	}
	f := FromUnmerged(raw)
	if len(f.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(f.Entries))
	}
	if f.Entries[0].MsgID != "Hello" || f.Entries[1].MsgID != "Bye" {
		t.Errorf("entry order: got %q, %q", f.Entries[0].MsgID, f.Entries[1].MsgID)
	}
	// Duplicate references concatenate in encounter order, unsorted.
	refsEqual(t, f.Entries[0].References, "a:1", "b:2")
	refsEqual(t, f.Entries[1].References, "a:5")
}

func TestFromUnmergedKeepsFirstRecordFields(t *testing.T) {
	raw := []Entry{
		{MsgID: "Hello", Context: "greeting", ExtractedComments: []string{"first"}, References: []string{"a:1"}},
		{MsgID: "Hello", Context: "farewell", ExtractedComments: []string{"second"}, References: []string{"b:2"}},
	}
	f := FromUnmerged(raw)
	if len(f.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(f.Entries))
	}
	e := f.Entries[0]
	if e.Context != "greeting" {
		t.Errorf("context: got %q, want %q", e.Context, "greeting")
	}
	if len(e.ExtractedComments) != 1 || e.ExtractedComments[0] != "first" {
		t.Errorf("extracted comments: got %q", e.ExtractedComments)
	}
	refsEqual(t, e.References, "a:1", "b:2")
}

func TestFromUnmergedDefaultHeader(t *testing.T) {
	f := FromUnmerged([]Entry{{MsgID: "Hello", References: []string{"a:1"}}})
	if !f.Header.IsHeader() {
		t.Fatalf("header msgid: got %q", f.Header.MsgID)
	}
	if got := f.HeaderField("Content-Type"); got != "text/plain; charset=UTF-8" {
		t.Errorf("Content-Type: got %q", got)
	}
}

func TestUpdatePreservesTranslations(t *testing.T) {
	existing := &File{
		Header: DefaultHeader(),
		Entries: []Entry{
			{
				MsgID:      "Hello",
				MsgStr:     []string{"你好"},
				Flags:      "fuzzy",
				Context:    "greeting",
				Comments:   []string{"translator note"},
				References: []string{"old.kt:1"},
			},
		},
	}
	updated := existing.Update([]Entry{{MsgID: "Hello", References: []string{"new.kt:7"}}})
	if len(updated.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(updated.Entries))
	}
	e := updated.Entries[0]
	if len(e.MsgStr) != 1 || e.MsgStr[0] != "你好" {
		t.Errorf("translation changed: got %q", e.MsgStr)
	}
	if e.Flags != "fuzzy" || e.Context != "greeting" {
		t.Errorf("flags/context changed: got %q / %q", e.Flags, e.Context)
	}
	if len(e.Comments) != 1 || e.Comments[0] != "translator note" {
		t.Errorf("comments changed: got %q", e.Comments)
	}
	refsEqual(t, e.References, "new.kt:7", "old.kt:1")
}

func TestUpdateRefreshesReferences(t *testing.T) {
	existing := &File{
		Header: DefaultHeader(),
		Entries: []Entry{
			{MsgID: "Hello", MsgStr: []string{"你好"}, References: []string{"a.kt:10", "b.kt:4"}},
		},
	}
	updated := existing.Update([]Entry{{MsgID: "Hello", References: []string{"a.kt:99"}}})
	// a.kt references are replaced wholesale; b.kt survives; result sorted.
	refsEqual(t, updated.Entries[0].References, "a.kt:99", "b.kt:4")
}

func TestUpdateReferencePathPrefixMatch(t *testing.T) {
	// Path comparison is a prefix match: a re-extracted file "a" also
	// evicts references into "a.kt" and "abc.kt".
	existing := &File{
		Header: DefaultHeader(),
		Entries: []Entry{
			{MsgID: "Hello", References: []string{"a.kt:3", "abc.kt:9", "z.kt:1"}},
		},
	}
	updated := existing.Update([]Entry{{MsgID: "Hello", References: []string{"a:5"}}})
	refsEqual(t, updated.Entries[0].References, "a:5", "z.kt:1")
}

func TestUpdateMergesGroupReferences(t *testing.T) {
	existing := &File{
		Header: DefaultHeader(),
		Entries: []Entry{
			{MsgID: "Hello", References: []string{"a.kt:10"}},
		},
	}
	updated := existing.Update([]Entry{
		{MsgID: "Hello", References: []string{"b.kt:7"}},
		{MsgID: "Hello", References: []string{"a.kt:2"}},
	})
	refsEqual(t, updated.Entries[0].References, "a.kt:2", "b.kt:7")
}

func TestUpdateAddsNewMessages(t *testing.T) {
	existing := &File{
		Header: DefaultHeader(),
		Entries: []Entry{
			{MsgID: "Old", MsgStr: []string{"旧"}, References: []string{"a.kt:1"}},
		},
	}
	updated := existing.Update([]Entry{
		{MsgID: "Second", References: []string{"b.kt:9"}, MsgStr: []string{""}},
		{MsgID: "First", References: []string{"b.kt:2"}, MsgStr: []string{""}},
		{MsgID: "Second", References: []string{"a.kt:4"}, MsgStr: []string{""}},
	})
	if len(updated.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(updated.Entries))
	}
	if updated.Entries[0].MsgID != "Old" {
		t.Errorf("existing entry moved: got %q first", updated.Entries[0].MsgID)
	}
	// New messages append after existing ones, in first-appearance order.
	if updated.Entries[1].MsgID != "Second" || updated.Entries[2].MsgID != "First" {
		t.Errorf("new entry order: got %q, %q", updated.Entries[1].MsgID, updated.Entries[2].MsgID)
	}
	refsEqual(t, updated.Entries[1].References, "a.kt:4", "b.kt:9")
	if len(updated.Entries[1].MsgStr) != 1 || updated.Entries[1].MsgStr[0] != "" {
		t.Errorf("new entry translation: got %q", updated.Entries[1].MsgStr)
	}
}

func TestUpdateMatchesByMsgIDAcrossContexts(t *testing.T) {
	// Merge identity is the msgid alone. A fresh record with a different
	// msgctxt still matches, and the existing context is kept.
	existing := &File{
		Header: DefaultHeader(),
		Entries: []Entry{
			{MsgID: "Open", Context: "menu", MsgStr: []string{"打开"}, References: []string{"a.kt:1"}},
		},
	}
	updated := existing.Update([]Entry{{MsgID: "Open", Context: "verb", References: []string{"b.kt:2"}}})
	if len(updated.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(updated.Entries))
	}
	e := updated.Entries[0]
	if e.Context != "menu" {
		t.Errorf("context: got %q, want %q", e.Context, "menu")
	}
	refsEqual(t, e.References, "a.kt:1", "b.kt:2")
}

func TestUpdateCarriesHeaderUnchanged(t *testing.T) {
	existing := &File{
		Header:  Entry{MsgStr: []string{"Project-Id-Version: my-project 1.2\nLanguage: de\n"}},
		Entries: []Entry{{MsgID: "Hello", MsgStr: []string{"Hallo"}}},
	}
	updated := existing.Update([]Entry{{MsgID: "Hello", References: []string{"a.kt:1"}}})
	if updated.Header.MsgStr[0] != existing.Header.MsgStr[0] {
		t.Errorf("header changed: got %q", updated.Header.MsgStr[0])
	}
}

func TestUpdateDoesNotMutateInputs(t *testing.T) {
	existingRefs := []string{"a.kt:10", "b.kt:4"}
	existing := &File{
		Header: DefaultHeader(),
		Entries: []Entry{
			{MsgID: "Hello", MsgStr: []string{"你好"}, References: existingRefs},
		},
	}
	rawRefs := []string{"a.kt:99"}
	raw := []Entry{{MsgID: "Hello", References: rawRefs}}

	existing.Update(raw)

	refsEqual(t, existingRefs, "a.kt:10", "b.kt:4")
	refsEqual(t, existing.Entries[0].References, "a.kt:10", "b.kt:4")
	refsEqual(t, rawRefs, "a.kt:99")
}

func TestUpdateUnmatchedExistingEntriesKept(t *testing.T) {
	existing := &File{
		Header: DefaultHeader(),
		Entries: []Entry{
			{MsgID: "Keep", MsgStr: []string{"bleibt"}, References: []string{"gone.kt:12"}},
		},
	}
	updated := existing.Update([]Entry{{MsgID: "Other", References: []string{"a.kt:1"}}})
	if len(updated.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(updated.Entries))
	}
	// No fresh record for "Keep": entry and its references stay untouched,
	// even though the message may no longer exist in the source.
	e := updated.Entries[0]
	if e.MsgID != "Keep" || e.MsgStr[0] != "bleibt" {
		t.Errorf("kept entry changed: %q %q", e.MsgID, e.MsgStr)
	}
	refsEqual(t, e.References, "gone.kt:12")
}

func TestHeaderFieldLookup(t *testing.T) {
	f := &File{Header: DefaultHeader()}
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"existing field", "MIME-Version", "1.0"},
		{"field with empty value", "Report-Msgid-Bugs-To", ""},
		{"missing field", "X-Generator", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.HeaderField(tc.field); got != tc.want {
				t.Errorf("HeaderField(%q) = %q, want %q", tc.field, got, tc.want)
			}
		})
	}
}

func TestSetHeaderField(t *testing.T) {
	f := &File{Header: DefaultHeader()}
	f.SetHeaderField("Project-Id-Version", "demo 2.0")
	f.SetHeaderField("X-Generator", "po-sync-helper")
	if got := f.HeaderField("Project-Id-Version"); got != "demo 2.0" {
		t.Errorf("Project-Id-Version: got %q", got)
	}
	if got := f.HeaderField("X-Generator"); got != "po-sync-helper" {
		t.Errorf("X-Generator: got %q", got)
	}
	block := f.Header.MsgStr[0]
	if strings.Count(block, "Project-Id-Version") != 1 {
		t.Errorf("duplicated field in header block:\n%s", block)
	}
	if !strings.HasSuffix(block, "\n") {
		t.Errorf("header block must end with a newline: %q", block)
	}
}

func TestSetHeaderFieldOnParsedHeader(t *testing.T) {
	po := `msgid ""
msgstr ""
"Project-Id-Version: demo\n"
"Content-Type: text/plain; charset=ISO-8859-1\n"

msgid "Hello"
msgstr ""
`
	f := Parse([]byte(po))
	f.SetHeaderField("Content-Type", "text/plain; charset=UTF-8")
	if got := f.HeaderField("Content-Type"); got != "text/plain; charset=UTF-8" {
		t.Errorf("Content-Type: got %q", got)
	}
	if got := f.HeaderField("Project-Id-Version"); got != "demo" {
		t.Errorf("Project-Id-Version lost: got %q", got)
	}
}
