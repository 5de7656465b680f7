// Package util provides message-inventory input for init and update.
package util

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/l10n-kit/po-sync-helper/pofile"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// LoadMessages reads a message-inventory file written by an external
// extractor and returns the raw entries in encounter order.
func LoadMessages(path string) ([]pofile.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message inventory: %w", err)
	}
	entries, err := ParseMessages(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message inventory %s: %w", path, err)
	}
	return entries, nil
}

// ParseMessages decodes inventory records from data. Three layouts are
// accepted: a JSON object with an "entries" array, a bare JSON array, and
// JSON lines (one record per line). Record fields:
//
//	msgid        string, required
//	msgid_plural string
//	msgctxt      string
//	reference    string ("path:line")
//	references   array of strings
//	comments     array of strings (extractor comments)
//	flags        string ("fuzzy, c-format")
//
// Records without a msgid are skipped with a warning. A truncated JSON-lines
// inventory degrades to its readable prefix.
func ParseMessages(data []byte) ([]pofile.Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty message inventory")
	}

	var records []gjson.Result
	if gjson.ValidBytes(trimmed) {
		root := gjson.ParseBytes(trimmed)
		switch {
		case root.IsArray():
			records = root.Array()
		case root.Get("entries").IsArray():
			records = root.Get("entries").Array()
		case root.IsObject() && root.Get("msgid").Exists():
			// A one-record JSON-lines inventory.
			records = []gjson.Result{root}
		default:
			return nil, fmt.Errorf(`message inventory must be an array, an object with an "entries" array, or JSON lines`)
		}
	} else {
		gjson.ForEachLine(string(trimmed), func(line gjson.Result) bool {
			if line.IsObject() {
				records = append(records, line)
			}
			return true
		})
	}

	var entries []pofile.Entry
	for _, rec := range records {
		if e, ok := entryFromRecord(rec); ok {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no message records found in inventory")
	}
	return entries, nil
}

func entryFromRecord(rec gjson.Result) (pofile.Entry, bool) {
	msgid := rec.Get("msgid")
	if !msgid.Exists() || msgid.String() == "" {
		log.Warnf("skip inventory record without msgid: %s", abbrevRecord(rec.Raw))
		return pofile.Entry{}, false
	}

	e := pofile.Entry{
		Context:     rec.Get("msgctxt").String(),
		MsgID:       msgid.String(),
		MsgIDPlural: rec.Get("msgid_plural").String(),
		Flags:       rec.Get("flags").String(),
	}
	if refs := rec.Get("references"); refs.IsArray() {
		refs.ForEach(func(_, value gjson.Result) bool {
			e.References = append(e.References, value.String())
			return true
		})
	} else if ref := rec.Get("reference"); ref.Exists() {
		e.References = append(e.References, ref.String())
	}
	if comments := rec.Get("comments"); comments.IsArray() {
		comments.ForEach(func(_, value gjson.Result) bool {
			e.ExtractedComments = append(e.ExtractedComments, value.String())
			return true
		})
	}
	if e.IsPlural() {
		e.MsgStr = []string{"", ""}
	} else {
		e.MsgStr = []string{""}
	}
	return e, true
}

func abbrevRecord(raw string) string {
	raw = strings.Join(strings.Fields(raw), " ")
	if len(raw) > 60 {
		return raw[:57] + "..."
	}
	return raw
}
