package encoder

import (
	"net/url"
	"strings"
)

type URLEncoder struct {
	name string
}

var DefaultURLEncoder = URLEncoder{name: "url"}

var _ Encoder = (*URLEncoder)(nil)

// url.QueryEscape leaves only "-_.~" unescaped and turns spaces into '+'.
// URI component escaping also keeps "!*'()" and escapes spaces as %20.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func (enc URLEncoder) GetName() string {
	return enc.name
}

func (enc URLEncoder) Encode(data string) (string, error) {
	return componentReplacer.Replace(url.QueryEscape(data)), nil
}
