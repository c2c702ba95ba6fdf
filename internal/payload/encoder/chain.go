package encoder

import "github.com/pkg/errors"

// ChainEncoder applies encoders one after another, the output of each
// encoder is the input of the next one.
type ChainEncoder struct {
	name  string
	chain []Encoder
}

var (
	DefaultDoubleURLEncoder = ChainEncoder{
		name:  "2url",
		chain: []Encoder{DefaultURLEncoder, DefaultURLEncoder},
	}
	DefaultDoubleHTMLEntityEncoder = ChainEncoder{
		name:  "2html",
		chain: []Encoder{DefaultHTMLEntityEncoder, DefaultHTMLEntityEncoder},
	}
	DefaultHTMLEntityURLEncoder = ChainEncoder{
		name:  "htmlurl",
		chain: []Encoder{DefaultHTMLEntityEncoder, DefaultURLEncoder},
	}
)

var _ Encoder = (*ChainEncoder)(nil)

func (enc ChainEncoder) GetName() string {
	return enc.name
}

func (enc ChainEncoder) Encode(data string) (string, error) {
	var err error

	for _, e := range enc.chain {
		data, err = e.Encode(data)
		if err != nil {
			return "", errors.Wrapf(err, "%s: couldn't apply %s encoder", enc.name, e.GetName())
		}
	}

	return data, nil
}
