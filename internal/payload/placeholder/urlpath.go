package placeholder

var _ Placeholder = (*URLPath)(nil)

var DefaultURLPath = &URLPath{name: "nice"}

// URLPath builds a "nice" URL in the form of <url>/<param>/<payload>.
type URLPath struct {
	name string
}

func (p *URLPath) GetName() string {
	return p.name
}

// CreateRequest returns the URL built for the last param only, the
// previous ones are overwritten. Without params the result is empty.
func (p *URLPath) CreateRequest(requestURL string, params []string, payload string) (string, error) {
	urlWithPayload := ""
	for _, param := range params {
		urlWithPayload = requestURL
		urlWithPayload += "/" + param + "/" + payload
	}

	return urlWithPayload, nil
}
