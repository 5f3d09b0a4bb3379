package parser

import (
	"fmt"
	"io"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// NewUTF8Reader wraps an upstream response body so that it yields UTF-8.
//
// Only the charset declared in the Content-Type header is honoured. JSON has no
// in-band encoding declaration, so bodies without a charset parameter (or already
// declared as UTF-8) are returned untouched.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	if contentType == "" {
		return body, nil
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}

	label := strings.TrimSpace(params["charset"])
	if label == "" || isUTF8Label(label) {
		return body, nil
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	if name == "utf-8" {
		return body, nil
	}

	return transform.NewReader(body, enc.NewDecoder()), nil
}

func isUTF8Label(label string) bool {
	switch strings.ToLower(label) {
	case "utf-8", "utf8":
		return true
	default:
		return false
	}
}
