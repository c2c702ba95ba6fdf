package placeholder

import "sort"

// Placeholder places the payload into the generated output.
type Placeholder interface {
	GetName() string
	CreateRequest(requestURL string, params []string, payload string) (string, error)
}

var Placeholders map[string]Placeholder

func init() {
	Placeholders = make(map[string]Placeholder)
	Placeholders[DefaultURLParam.GetName()] = DefaultURLParam
	Placeholders[DefaultFormBody.GetName()] = DefaultFormBody
	Placeholders[DefaultURLPath.GetName()] = DefaultURLPath
	Placeholders[DefaultJSONBody.GetName()] = DefaultJSONBody
	Placeholders[DefaultXMLBody.GetName()] = DefaultXMLBody
}

// Names returns names of all registered placeholders in lexicographical order.
func Names() []string {
	names := make([]string, 0, len(Placeholders))
	for name := range Placeholders {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// IsKnown reports whether a placeholder with the given name is registered.
func IsKnown(placeholder string) bool {
	_, ok := Placeholders[placeholder]
	return ok
}

func Apply(requestURL string, params []string, payload, placeholder string) (string, error) {
	ph, ok := Placeholders[placeholder]
	if !ok {
		return "", &UnknownPlaceholderError{name: placeholder}
	}

	req, err := ph.CreateRequest(requestURL, params, payload)
	if err != nil {
		return "", err
	}

	return req, nil
}
