// Package pofile implements the gettext PO/POT text format: the catalog
// data model, a lenient line-oriented parser and writer, and the merge
// operations that reconcile a catalog with freshly extracted messages.
package pofile

import "strings"

// Entry is a single catalog message record.
type Entry struct {
	Comments          []string // translator comments ("# ...")
	ExtractedComments []string // comments injected by the extractor ("#. ...")
	References        []string // "path:line" source locations ("#: ...")
	Flags             string   // comma-separated flags such as "fuzzy" ("#, ...")
	Previous          []string // prior msgid text kept across edits ("#| ...")
	Context           string   // msgctxt disambiguation key, empty if none
	MsgID             string   // msgid; the empty string is reserved for the header
	MsgIDPlural       string   // msgid_plural, set only for plural entries
	MsgStr            []string // msgstr, or one element per msgstr[n] index
}

// IsHeader reports whether the entry is the catalog header, identified by
// the reserved empty msgid.
func (e Entry) IsHeader() bool {
	return e.MsgID == ""
}

// IsPlural reports whether the entry carries a plural form.
func (e Entry) IsPlural() bool {
	return e.MsgIDPlural != ""
}

// IsFuzzy reports whether the fuzzy flag is set.
func (e Entry) IsFuzzy() bool {
	for _, flag := range strings.Split(e.Flags, ",") {
		if strings.TrimSpace(flag) == "fuzzy" {
			return true
		}
	}
	return false
}

// WithReferences returns a copy of the entry with its references replaced.
// All other fields are shared with the receiver, which is left untouched.
func (e Entry) WithReferences(refs []string) Entry {
	e.References = refs
	return e
}
