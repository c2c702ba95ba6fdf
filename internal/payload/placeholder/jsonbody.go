package placeholder

import (
	"bytes"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

const jsonIndent = "    "

var _ Placeholder = (*JSONBody)(nil)

var DefaultJSONBody = &JSONBody{name: "json"}

// JSONBody builds a pretty-printed JSON object where every param is a key
// and the payload is the value. Keys keep the order of params.
type JSONBody struct {
	name string
}

func (p *JSONBody) GetName() string {
	return p.name
}

func (p *JSONBody) CreateRequest(_ string, params []string, payload string) (string, error) {
	var buf bytes.Buffer

	enc := jsontext.NewEncoder(&buf,
		jsontext.WithIndent(jsonIndent),
		jsontext.SpaceAfterColon(true),
		jsontext.AllowInvalidUTF8(true),
	)

	tokens := make([]jsontext.Token, 0, 2*len(params)+2)
	tokens = append(tokens, jsontext.BeginObject)
	for _, key := range uniqueKeys(params) {
		tokens = append(tokens, jsontext.String(key), jsontext.String(payload))
	}
	tokens = append(tokens, jsontext.EndObject)

	for _, token := range tokens {
		if err := enc.WriteToken(token); err != nil {
			return "", &MarshalError{name: p.name, err: err}
		}
	}

	// the encoder terminates every top-level value with a newline
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
