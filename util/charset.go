// Package util provides charset recovery for catalogs not encoded in UTF-8.
package util

import (
	"bytes"
	"fmt"
	"mime"
	"os"
	"strings"

	"github.com/l10n-kit/po-sync-helper/pofile"
	"github.com/qiniu/iconv"
	log "github.com/sirupsen/logrus"
)

const defaultEncoding = "UTF-8"

// ReadCatalog reads and parses the catalog file at path. A catalog whose
// header declares a charset other than UTF-8 is transcoded before the final
// parse and its Content-Type is stamped back to UTF-8. A catalog that
// cannot be transcoded is parsed as-is with a warning.
func ReadCatalog(path string) (*pofile.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	f := pofile.Parse(data)
	charset := CatalogCharset(f)
	if charset == "" || strings.EqualFold(charset, "CHARSET") ||
		sameEncoding(charset, defaultEncoding) {
		return f, nil
	}
	converted, err := transcode(data, charset, defaultEncoding)
	if err != nil {
		log.Warnf("parsing %s as-is, cannot transcode from %s: %s", path, charset, err)
		return f, nil
	}
	log.Infof("transcoded %s from %s to %s", path, charset, defaultEncoding)
	f = pofile.Parse(converted)
	f.SetHeaderField("Content-Type", "text/plain; charset="+defaultEncoding)
	return f, nil
}

// CatalogCharset returns the charset declared by the catalog header, or ""
// when the header has no parsable Content-Type field.
func CatalogCharset(f *pofile.File) string {
	contentType := f.HeaderField("Content-Type")
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}

func sameEncoding(enc1, enc2 string) bool {
	enc1 = strings.Replace(strings.ToLower(enc1), "-", "", -1)
	enc2 = strings.Replace(strings.ToLower(enc2), "-", "", -1)
	return enc1 == enc2
}

func transcode(data []byte, fromEncoding, toEncoding string) ([]byte, error) {
	cd, err := iconv.Open(toEncoding, fromEncoding)
	if err != nil {
		return nil, fmt.Errorf("iconv.Open failed: %w", err)
	}
	defer cd.Close()

	var buf bytes.Buffer
	// Large enough that a single pass never runs out of output room.
	out := make([]byte, len(data)*4+64)
	nLeft := len(data)
	for nLeft > 0 {
		converted, left, err := cd.Do(data[len(data)-nLeft:], nLeft, out)
		if err != nil {
			return nil, err
		}
		buf.Write(out[:converted])
		nLeft = left
	}
	return buf.Bytes(), nil
}
