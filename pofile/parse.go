package pofile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Parse reads a complete PO/POT document and returns the catalog it
// describes. Parsing is lenient: lines that match no known directive are
// skipped, partially populated entries are kept as-is, and no content
// problem is ever reported as an error. The first empty-msgid entry found
// becomes the header; a catalog without one gets the built-in default.
func Parse(data []byte) *File {
	var (
		comments  []string
		extracted []string
		refs      []string
		flags     string
		previous  []string
		context   string
		msgid     string
		plural    string
		cases     []string
		seenMsgID bool
		parsed    []Entry
	)

	flush := func() {
		if !seenMsgID {
			return
		}
		parsed = append(parsed, Entry{
			Comments:          comments,
			ExtractedComments: extracted,
			References:        refs,
			Flags:             flags,
			Previous:          previous,
			Context:           context,
			MsgID:             msgid,
			MsgIDPlural:       plural,
			MsgStr:            cases,
		})
		comments, extracted, refs, previous, cases = nil, nil, nil, nil, nil
		flags, context, msgid, plural = "", "", "", ""
		seenMsgID = false
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case line == "#":
			comments = append(comments, "")
		case strings.HasPrefix(line, "# "):
			comments = append(comments, line[2:])
		case strings.HasPrefix(line, "#. "):
			extracted = append(extracted, line[3:])
		case strings.HasPrefix(line, "#: "):
			refs = append(refs, line[3:])
		case strings.HasPrefix(line, "#, "):
			// Only the last flags line of an entry wins.
			flags = line[3:]
		case strings.HasPrefix(line, "#| "):
			previous = append(previous, line[3:])
		case strings.HasPrefix(line, "msgctxt "):
			context = unescape(line[len("msgctxt "):])
		case strings.HasPrefix(line, "msgid "):
			msgid = unescape(line[len("msgid "):])
			seenMsgID = true
		case strings.HasPrefix(line, "msgid_plural "):
			plural = unescape(line[len("msgid_plural "):])
		case strings.HasPrefix(line, "msgstr "):
			cases = append(cases, unescape(line[len("msgstr "):]))
		case strings.HasPrefix(line, "msgstr["):
			if idx := strings.Index(line, "]"); idx >= 0 {
				cases = append(cases, unescape(line[idx+1:]))
			}
		default:
			// Continuation fragments always splice into the first case,
			// never into msgid, msgid_plural, or msgctxt.
			if len(cases) > 0 {
				cases[0] = cases[0] + `"\n"` + strings.Trim(strings.TrimSpace(line), `"`)
			}
		}
	}
	flush()

	f := &File{Header: DefaultHeader()}
	headerSeen := false
	for _, e := range parsed {
		if e.IsHeader() {
			// First empty-msgid entry is the header; later ones are dropped.
			if !headerSeen {
				f.Header = e
				headerSeen = true
			}
			continue
		}
		f.Entries = append(f.Entries, e)
	}
	return f
}

// Read parses a PO/POT document from r. Only the read itself can fail;
// content problems are absorbed by Parse.
func Read(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data), nil
}
