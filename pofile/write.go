package pofile

import (
	"fmt"
	"io"
	"strings"
)

// Write renders the catalog as PO/POT text: the header entry first, then
// every message entry preceded by one blank line. Only errors from w are
// returned.
func (f *File) Write(w io.Writer) error {
	if err := writeEntry(w, f.Header); err != nil {
		return err
	}
	for _, e := range f.Entries {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := writeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// String renders the catalog as PO/POT text.
func (f *File) String() string {
	var b strings.Builder
	_ = f.Write(&b)
	return b.String()
}

func writeEntry(w io.Writer, e Entry) error {
	var b strings.Builder
	for _, c := range e.Comments {
		if c == "" {
			b.WriteString("#\n")
		} else {
			b.WriteString("# " + c + "\n")
		}
	}
	for _, c := range e.ExtractedComments {
		b.WriteString("#. " + c + "\n")
	}
	for _, ref := range e.References {
		b.WriteString("#: " + ref + "\n")
	}
	if e.Flags != "" {
		b.WriteString("#, " + e.Flags + "\n")
	}
	for _, p := range e.Previous {
		b.WriteString("#| " + p + "\n")
	}
	if e.Context != "" {
		b.WriteString("msgctxt " + escape(e.Context) + "\n")
	}
	b.WriteString("msgid " + escape(e.MsgID) + "\n")
	if e.IsPlural() {
		b.WriteString("msgid_plural " + escape(e.MsgIDPlural) + "\n")
		for i, s := range e.MsgStr {
			fmt.Fprintf(&b, "msgstr[%d] %s\n", i, escape(s))
		}
	} else {
		s := ""
		if len(e.MsgStr) > 0 {
			s = e.MsgStr[0]
		}
		b.WriteString("msgstr " + escape(s) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
