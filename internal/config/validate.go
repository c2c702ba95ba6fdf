package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// requiredArguments maps Config fields to the CLI arguments that set them.
var requiredArguments = map[string]string{
	"URL":    "-u, --url <url>",
	"Data":   "-d, --data <data>",
	"Output": "-o, --output <output>",
}

var validate = validator.New()

// Validate checks that all required fields are set. Fields are checked in
// the order of declaration, the first missing one is reported.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validatorErr validator.ValidationErrors
	if !errors.As(err, &validatorErr) {
		return errors.Wrap(err, "couldn't validate config")
	}

	fe := validatorErr[0]
	if fe.Tag() == "required" {
		if arg, ok := requiredArguments[fe.StructField()]; ok {
			return &MissingArgumentError{name: fe.StructField(), arg: arg}
		}
	}

	return &ValidationError{errors: validatorErr}
}
