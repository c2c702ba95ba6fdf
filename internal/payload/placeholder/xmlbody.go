package placeholder

import (
	"strings"

	"github.com/clbanning/mxj"
)

const (
	xmlHeader    = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`
	xmlRootTag   = "root"
	xmlIndent    = "  "
	xmlEmptyRoot = "<" + xmlRootTag + "/>"
	xmlRootOpen  = "<" + xmlRootTag + ">"
	xmlRootClose = "</" + xmlRootTag + ">"
)

func init() {
	mxj.XMLEscapeChars(true)
}

var _ Placeholder = (*XMLBody)(nil)

var DefaultXMLBody = &XMLBody{name: "xml"}

// XMLBody builds a pretty-printed XML document with the "root" root element
// and a child element per param that contains the payload.
type XMLBody struct {
	name string
}

func (p *XMLBody) GetName() string {
	return p.name
}

func (p *XMLBody) CreateRequest(_ string, params []string, payload string) (string, error) {
	keys := uniqueKeys(params)

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteByte('\n')

	if len(keys) == 0 {
		b.WriteString(xmlEmptyRoot)
		return b.String(), nil
	}

	b.WriteString(xmlRootOpen)
	b.WriteByte('\n')

	// mxj sorts the keys of a map, so elements are rendered one by one to
	// keep the order of params
	for _, key := range keys {
		elem, err := mxj.Map{key: payload}.Xml()
		if err != nil {
			return "", &MarshalError{name: p.name, err: err}
		}

		b.WriteString(xmlIndent)
		b.Write(elem)
		b.WriteByte('\n')
	}

	b.WriteString(xmlRootClose)

	return b.String(), nil
}
