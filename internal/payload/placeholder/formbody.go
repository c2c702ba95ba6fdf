package placeholder

var _ Placeholder = (*FormBody)(nil)

var DefaultFormBody = &FormBody{name: "bodyurl"}

// FormBody builds an application/x-www-form-urlencoded body. The URL is
// ignored.
type FormBody struct {
	name string
}

func (p *FormBody) GetName() string {
	return p.name
}

func (p *FormBody) CreateRequest(_ string, params []string, payload string) (string, error) {
	return queryString(params, payload), nil
}
