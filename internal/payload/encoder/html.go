package encoder

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	htmlEntityRangeStart = 0x00A0
	htmlEntityRangeEnd   = 0x9999
)

// HTMLEntityEncoder replaces characters from the U+00A0-U+9999 range and
// the '<', '>', '&' characters with decimal numeric character references.
type HTMLEntityEncoder struct {
	name string
}

var DefaultHTMLEntityEncoder = HTMLEntityEncoder{name: "html"}

var _ Encoder = (*HTMLEntityEncoder)(nil)

func (enc HTMLEntityEncoder) GetName() string {
	return enc.name
}

func (enc HTMLEntityEncoder) Encode(data string) (string, error) {
	var b strings.Builder
	b.Grow(len(data))

	for len(data) > 0 {
		// invalid bytes decode to utf8.RuneError, which is out of the range,
		// so they are copied as is
		r, size := utf8.DecodeRuneInString(data)
		if needsHTMLEntity(r) {
			b.WriteString("&#")
			b.WriteString(strconv.Itoa(int(r)))
			b.WriteByte(';')
		} else {
			b.WriteString(data[:size])
		}

		data = data[size:]
	}

	return b.String(), nil
}

func needsHTMLEntity(r rune) bool {
	switch r {
	case '<', '>', '&':
		return true
	}

	return r >= htmlEntityRangeStart && r <= htmlEntityRangeEnd
}
