package config

type Config struct {
	// Generator settings
	URL    string `mapstructure:"url" validate:"required"`
	Params string `mapstructure:"params"`
	Count  int    `mapstructure:"count"`
	Data   string `mapstructure:"data" validate:"required"`
	Output string `mapstructure:"output" validate:"required"`
	Encode string `mapstructure:"encode"`

	// Other settings
	LogLevel  string `mapstructure:"logLevel"`
	LogFormat string `mapstructure:"logFormat"`

	Args []string
}
