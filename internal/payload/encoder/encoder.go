package encoder

import "sort"

type Encoder interface {
	GetName() string
	Encode(data string) (string, error)
}

var Encoders map[string]Encoder

var encoders = []Encoder{
	DefaultPlainEncoder,
	DefaultURLEncoder,
	DefaultDoubleURLEncoder,
	DefaultHTMLEntityEncoder,
	DefaultDoubleHTMLEntityEncoder,
	DefaultHTMLEntityURLEncoder,
}

func init() {
	Encoders = make(map[string]Encoder)
	for _, encoder := range encoders {
		Encoders[encoder.GetName()] = encoder
	}
}

// Names returns names of all registered encoders in lexicographical order.
func Names() []string {
	names := make([]string, 0, len(Encoders))
	for name := range Encoders {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// IsKnown reports whether an encoder with the given name is registered.
func IsKnown(encoderName string) bool {
	_, ok := Encoders[encoderName]
	return ok
}

func Apply(encoderName, data string) (string, error) {
	en, ok := Encoders[encoderName]
	if !ok {
		return "", &UnknownEncoderError{name: encoderName}
	}

	ret, err := en.Encode(data)
	if err != nil {
		return "", err
	}

	return ret, nil
}
