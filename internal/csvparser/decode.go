package csvparser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecoder wraps r so that it yields UTF-8 text.
func newDecoder(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}

// lookupEncoding resolves an encoding name.
//
// An empty name or any spelling of UTF-8 reads the bytes as UTF-8 and drops
// a leading byte-order mark. Other names are looked up in the WHATWG
// encoding index (windows-1251, koi8-r, iso-8859-5, ...).
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc, nil
}
