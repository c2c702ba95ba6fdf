package placeholder

import "strings"

var _ Placeholder = (*URLParam)(nil)

var DefaultURLParam = &URLParam{name: "url"}

// URLParam appends params with the payload to the query of the URL.
type URLParam struct {
	name string
}

func (p *URLParam) GetName() string {
	return p.name
}

func (p *URLParam) CreateRequest(requestURL string, params []string, payload string) (string, error) {
	query := queryString(params, payload)
	if requestURL == "" {
		return query, nil
	}

	urlWithPayload := requestURL
	if !strings.Contains(requestURL, "?") {
		urlWithPayload += "?"
	} else {
		urlWithPayload += "&"
	}
	urlWithPayload += query

	return urlWithPayload, nil
}
