package config

import (
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load merges the config file (if the path is not empty) with the parameters
// passed via CLI and validates the result. Flags set explicitly on the
// command line take precedence over the config file.
func Load(flags *flag.FlagSet, path string) (*Config, error) {
	v := viper.New()

	err := v.BindPFlags(flags)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't bind flags")
	}

	if path != "" {
		v.SetConfigFile(path)

		err = v.ReadInConfig()
		if err != nil {
			return nil, errors.Wrap(err, "couldn't read config file")
		}
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't unmarshal config")
	}

	err = Validate(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
