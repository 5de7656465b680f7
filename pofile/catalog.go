package pofile

import "strings"

// File is a complete catalog: one header entry plus the ordered message
// entries. Values returned by Parse, FromUnmerged, and Update are
// independent; callers must not mutate entry slices shared between them.
type File struct {
	Header  Entry
	Entries []Entry
}

// defaultHeaderBlock is the metadata block carried by catalogs created
// from scratch. The writer's escaping turns the newlines into \n
// sequences on disk.
const defaultHeaderBlock = "Project-Id-Version: PACKAGE VERSION\n" +
	"Report-Msgid-Bugs-To: \n" +
	"Last-Translator: FULL NAME <EMAIL@ADDRESS>\n" +
	"Language-Team: LANGUAGE <LL@li.org>\n" +
	"Language: \n" +
	"MIME-Version: 1.0\n" +
	"Content-Type: text/plain; charset=UTF-8\n" +
	"Content-Transfer-Encoding: 8bit\n"

// DefaultHeader returns the built-in header entry substituted when a
// catalog has no header of its own.
func DefaultHeader() Entry {
	return Entry{MsgStr: []string{defaultHeaderBlock}}
}

// FromUnmerged builds a catalog from raw extraction records. Records
// sharing a msgid collapse into a single entry: the first record keeps all
// of its fields, and the references of every duplicate are concatenated in
// encounter order. The catalog gets the default header.
func FromUnmerged(raw []Entry) *File {
	f := &File{Header: DefaultHeader()}
	index := make(map[string]int, len(raw))
	for _, e := range raw {
		i, ok := index[e.MsgID]
		if !ok {
			index[e.MsgID] = len(f.Entries)
			f.Entries = append(f.Entries, e)
			continue
		}
		kept := f.Entries[i]
		refs := make([]string, 0, len(kept.References)+len(e.References))
		refs = append(refs, kept.References...)
		refs = append(refs, e.References...)
		f.Entries[i] = kept.WithReferences(refs)
	}
	return f
}

// Update merges freshly extracted records into the catalog and returns a
// new one. Matched entries keep their translation, flags, context, and
// comments verbatim; only their references are refreshed: existing
// references into a re-extracted source file are dropped and the fresh
// ones take their place, sorted. Messages with no existing entry are
// appended after all existing entries, in the order their msgids first
// appear in raw. The header is carried over unchanged.
func (f *File) Update(raw []Entry) *File {
	groups := make(map[string][]Entry)
	var order []string
	for _, e := range raw {
		if _, ok := groups[e.MsgID]; !ok {
			order = append(order, e.MsgID)
		}
		groups[e.MsgID] = append(groups[e.MsgID], e)
	}

	out := &File{Header: f.Header, Entries: make([]Entry, 0, len(f.Entries))}
	for _, e := range f.Entries {
		group, ok := groups[e.MsgID]
		if !ok {
			out.Entries = append(out.Entries, e)
			continue
		}
		delete(groups, e.MsgID)
		out.Entries = append(out.Entries, e.WithReferences(refreshReferences(e.References, group)))
	}
	for _, msgid := range order {
		group, ok := groups[msgid]
		if !ok {
			continue
		}
		refs := groupReferences(group)
		SortReferences(refs)
		out.Entries = append(out.Entries, group[0].WithReferences(refs))
	}
	return out
}

// refreshReferences merges the references of an existing entry with those
// of its matched extraction group. An existing reference is stale, and
// dropped, when its path has any re-extracted source path as a prefix.
func refreshReferences(existing []string, group []Entry) []string {
	fresh := groupReferences(group)
	var updatedPaths []string
	seen := make(map[string]bool, len(fresh))
	for _, ref := range fresh {
		path := referencePath(ref)
		if !seen[path] {
			seen[path] = true
			updatedPaths = append(updatedPaths, path)
		}
	}
	refs := make([]string, 0, len(existing)+len(fresh))
	for _, ref := range existing {
		path := referencePath(ref)
		stale := false
		for _, updated := range updatedPaths {
			if strings.HasPrefix(path, updated) {
				stale = true
				break
			}
		}
		if !stale {
			refs = append(refs, ref)
		}
	}
	refs = append(refs, fresh...)
	SortReferences(refs)
	return refs
}

func groupReferences(group []Entry) []string {
	var refs []string
	for _, e := range group {
		refs = append(refs, e.References...)
	}
	return refs
}

// HeaderField returns the value of a header metadata line such as
// "Content-Type", or "" when the field is absent.
func (f *File) HeaderField(name string) string {
	for _, line := range headerLines(f.Header) {
		if k, v, ok := splitHeaderLine(line); ok && k == name {
			return v
		}
	}
	return ""
}

// SetHeaderField sets a header metadata line, replacing an existing line
// of the same name or appending a new one. The header block is rewritten
// in normalized form: one "Name: value" line per field, blank lines
// dropped.
func (f *File) SetHeaderField(name, value string) {
	lines := headerLines(f.Header)
	out := make([]string, 0, len(lines)+1)
	found := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if k, _, ok := splitHeaderLine(line); ok && k == name {
			if !found {
				out = append(out, name+": "+value)
				found = true
			}
			continue
		}
		out = append(out, line)
	}
	if !found {
		out = append(out, name+": "+value)
	}
	f.Header.MsgStr = []string{strings.Join(out, "\n") + "\n"}
}

// headerLines splits a header entry's metadata block into lines. The block
// may use real newlines, literal \n sequences from disk, or the quoted
// continuation joiner left behind by the parser; all three are treated as
// line breaks.
func headerLines(h Entry) []string {
	if len(h.MsgStr) == 0 {
		return nil
	}
	block := h.MsgStr[0]
	block = strings.ReplaceAll(block, `"\n"`, "\n")
	block = strings.ReplaceAll(block, `\n`, "\n")
	return strings.Split(block, "\n")
}

func splitHeaderLine(line string) (name, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}
