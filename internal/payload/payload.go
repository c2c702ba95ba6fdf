package payload

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/wallarm/paramgen/internal/payload/encoder"
	"github.com/wallarm/paramgen/internal/payload/placeholder"
)

// PayloadInfo holds the data value and describes how it must be encoded
// and where it must be placed.
type PayloadInfo struct {
	Payload         string
	EncoderName     string
	PlaceholderName string

	URL    string
	Params []string
}

// GetEncodedPayload encodes the payload using the specified encoder and
// returns the encoded payload. The payload is returned as is if the
// encoder is unknown.
func (p *PayloadInfo) GetEncodedPayload() (string, error) {
	encodedPayload, err := encoder.Apply(p.EncoderName, p.Payload)
	if err != nil {
		var unknownErr *encoder.UnknownEncoderError
		if errors.As(err, &unknownErr) {
			return p.Payload, nil
		}

		return "", errors.Wrap(err, "couldn't encode payload")
	}

	return encodedPayload, nil
}

// GetRequest encodes the payload and places it into the output selected by
// the placeholder name. An unknown placeholder yields an empty output.
func (p *PayloadInfo) GetRequest() (string, error) {
	encodedPayload, err := p.GetEncodedPayload()
	if err != nil {
		return "", err
	}

	request, err := placeholder.Apply(p.URL, p.Params, encodedPayload, p.PlaceholderName)
	if err != nil {
		var unknownErr *placeholder.UnknownPlaceholderError
		if errors.As(err, &unknownErr) {
			return "", nil
		}

		return "", errors.Wrap(err, fmt.Sprintf("couldn't apply placeholder %s", p.PlaceholderName))
	}

	return request, nil
}
