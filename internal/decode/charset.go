package decode

import (
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
)

// decodeBytes turns body into a text string using declared (an IANA
// charset label such as "windows-1252" or "iso8859-15"), falling back to
// chardet sniffing when declared is empty or unrecognized, and finally
// to a best-effort UTF-8 coercion. It never fails: on total failure it
// substitutes the Unicode replacement character for invalid sequences,
// matching the decoder's "never fail the extraction" contract. It
// returns, alongside the decoded text, the charset label actually used —
// the declared or sniffed label as given, or empty when neither could be
// used and body was taken as UTF-8 — so query strings built from
// this document's text can later be re-encoded in the same charset.
func decodeBytes(body []byte, declared string) (string, string) {
	if declared != "" {
		if text, ok := decodeWith(body, declared); ok {
			return text, declared
		}
	}

	det := chardet.NewTextDetector()
	if result, err := det.DetectBest(body); err == nil && result != nil && result.Charset != "" {
		if text, ok := decodeWith(body, result.Charset); ok {
			return text, result.Charset
		}
	}

	if utf8.Valid(body) {
		return string(body), ""
	}
	return strings.ToValidUTF8(string(body), "�"), ""
}

func decodeWith(body []byte, label string) (string, bool) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", false
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}
