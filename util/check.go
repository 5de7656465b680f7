// Package util provides structural catalog checks.
package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/i18n/gettext"
	"github.com/l10n-kit/po-sync-helper/pofile"
	log "github.com/sirupsen/logrus"
)

// CmdCheck implements the check command logic for one catalog file. Lint
// errors and a failed MO cross-check make it return false; warnings do not.
func CmdCheck(path, moPath string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("failed to read catalog: %s", err)
		return false
	}
	f := pofile.Parse(data)
	errs, warns := CheckCatalog(f)
	if moPath != "" {
		moErrs, err := CheckMo(f, moPath)
		if err != nil {
			log.Errorf("failed to check %s: %s", moPath, err)
			return false
		}
		errs = append(errs, moErrs...)
	}
	ReportWarnAndErrors(warns, path, true)
	ReportWarnAndErrors(errs, path, false)
	if len(errs) > 0 {
		return false
	}
	log.Infof("checks passed for %s", path)
	return true
}

// CheckCatalog lints a parsed catalog. Structural defects come back as
// errors, suspicious but harmless findings as warnings.
func CheckCatalog(f *pofile.File) (errs, warns []string) {
	seen := make(map[string]int, len(f.Entries))
	for _, e := range f.Entries {
		seen[e.MsgID]++
	}
	nplurals := headerNPlurals(f)

	reported := make(map[string]bool)
	for _, e := range f.Entries {
		if e.MsgID == "" {
			errs = append(errs, "entry with empty msgid outside the header")
			continue
		}
		if seen[e.MsgID] > 1 && !reported[e.MsgID] {
			reported[e.MsgID] = true
			errs = append(errs, fmt.Sprintf("duplicate msgid %q (%d entries)",
				e.MsgID, seen[e.MsgID]))
		}
		for _, ref := range e.References {
			if msg := checkReference(ref); msg != "" {
				errs = append(errs, fmt.Sprintf("msgid %q: %s", e.MsgID, msg))
			}
		}
		if e.IsPlural() {
			if nplurals > 0 && len(e.MsgStr) != nplurals {
				warns = append(warns, fmt.Sprintf(
					"plural msgid %q has %d cases, header declares nplurals=%d",
					e.MsgID, len(e.MsgStr), nplurals))
			} else if nplurals == 0 && len(e.MsgStr) < 2 {
				warns = append(warns, fmt.Sprintf("plural msgid %q has %d case(s)",
					e.MsgID, len(e.MsgStr)))
			}
		} else if len(e.MsgStr) > 1 {
			errs = append(errs, fmt.Sprintf("msgid %q has %d msgstr cases but no msgid_plural",
				e.MsgID, len(e.MsgStr)))
		}
	}

	charset := CatalogCharset(f)
	switch {
	case charset == "":
		warns = append(warns, "header declares no charset")
	case strings.EqualFold(charset, "CHARSET"):
		warns = append(warns, "header charset is the CHARSET placeholder")
	case !sameEncoding(charset, defaultEncoding):
		warns = append(warns, fmt.Sprintf("catalog charset is %s, consider %s",
			charset, defaultEncoding))
	}
	return errs, warns
}

func checkReference(ref string) string {
	if strings.ContainsAny(ref, " \t") {
		return fmt.Sprintf("reference %q contains whitespace", ref)
	}
	parts := strings.SplitN(ref, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return fmt.Sprintf("reference %q has no line number", ref)
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return fmt.Sprintf("reference %q has a non-numeric line number", ref)
	}
	return ""
}

// headerNPlurals returns the plural case count declared by the header's
// Plural-Forms field, or 0 when absent or unparsable.
func headerNPlurals(f *pofile.File) int {
	for _, part := range strings.Split(f.HeaderField("Plural-Forms"), ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "nplurals=") {
			if n, err := strconv.Atoi(strings.TrimPrefix(part, "nplurals=")); err == nil {
				return n
			}
		}
	}
	return 0
}

// CheckMo cross-checks the catalog against a compiled MO file: messages in
// the MO but not in the catalog, translations missing from the MO, stale MO
// translations for messages the catalog no longer translates, and
// translations that differ between the two.
func CheckMo(f *pofile.File, moPath string) ([]string, error) {
	fh, err := os.Open(moPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", moPath, err)
	}
	defer fh.Close()

	catalog := gettext.NewCatalog()
	if err := catalog.ReadMo(fh); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", moPath, err)
	}

	poStrs := make(map[string]string, len(f.Entries))
	for _, e := range f.Entries {
		var value string
		if len(e.MsgStr) > 0 {
			value = decodeValue(e.MsgStr[0])
		}
		poStrs[moKey(e.Context, e.MsgID)] = value
	}

	var errs []string
	moKeys := make(map[string]bool)
	iter := catalog.Iter()
	size := iter.Size()
	for i := 0; i < size; i++ {
		msg, err := iter.Next()
		if err != nil {
			break
		}
		if len(msg.Id) == 0 {
			// MO header
			continue
		}
		key := moKey(string(msg.Ctxt), string(msg.Id))
		moKeys[key] = true
		poStr, ok := poStrs[key]
		if !ok {
			errs = append(errs, fmt.Sprintf("MO message %q not found in catalog", string(msg.Id)))
			continue
		}
		if poStr == "" {
			if len(msg.Str) > 0 {
				errs = append(errs, fmt.Sprintf("MO has a translation for untranslated %q", string(msg.Id)))
			}
			continue
		}
		if string(msg.Str) != poStr {
			errs = append(errs, fmt.Sprintf("translation of %q differs between catalog and MO", string(msg.Id)))
		}
	}
	for _, e := range f.Entries {
		if len(e.MsgStr) == 0 || decodeValue(e.MsgStr[0]) == "" {
			continue
		}
		if !moKeys[moKey(e.Context, e.MsgID)] {
			errs = append(errs, fmt.Sprintf("catalog translation of %q missing from MO", e.MsgID))
		}
	}
	return errs, nil
}

// moKey builds the MO lookup key: context and msgid joined by EOT.
func moKey(ctxt, msgid string) string {
	if ctxt == "" {
		return msgid
	}
	return ctxt + "\x04" + msgid
}

// decodeValue reconstructs the text a gettext compiler would see from a
// parsed value: adjacent quoted fragments concatenate, escape sequences in
// continuation fragments become real characters.
func decodeValue(s string) string {
	s = strings.ReplaceAll(s, `"\n"`, "")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	return s
}
