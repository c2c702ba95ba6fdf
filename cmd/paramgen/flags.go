package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const (
	textLogFormat = "text"
	jsonLogFormat = "json"
)

var (
	logFormatsSet = map[string]any{
		textLogFormat: nil,
		jsonLogFormat: nil,
	}
	logFormats = slices.Sorted(maps.Keys(logFormatsSet))
)

const (
	defaultOutput   = "url"
	defaultEncode   = "none"
	defaultLogLevel = "warn"
)

var (
	configPath  string
	quiet       bool
	logLevel    logrus.Level
	logFormat   string
	showVersion bool
	showHelp    bool
)

// errHelp is returned by parseFlags when the usage has been printed.
var errHelp = errors.New("help requested")

// parseFlags parses all paramgen CLI flags. It returns the flag set to
// build the config from and the used CLI args in a unified form.
func parseFlags(arguments []string, output io.Writer) (flags *flag.FlagSet, args []string, err error) {
	flags = flag.NewFlagSet("paramgen", flag.ContinueOnError)
	// parsing errors are reported by the caller
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	flags.SortFlags = false

	// General parameters
	flags.StringVar(&configPath, "configPath", "", "Path to the config file")
	flags.BoolVar(&quiet, "quiet", false, "If present, disable verbose logging")
	logLvl := flags.String("logLevel", defaultLogLevel, "Logging level: panic, fatal, error, warn, info, debug, trace")
	flags.StringVar(&logFormat, "logFormat", textLogFormat, "Set logging format: "+strings.Join(logFormats, ", "))
	flags.BoolVar(&showVersion, "version", false, "Show paramgen version and exit")
	flags.BoolVarP(&showHelp, "help", "h", false, "Show this help and exit")

	// Generator settings
	flags.StringP("url", "u", "", "URL to modify")
	flags.StringP("params", "p", "", "Params list separated by commas or path to file containing params")
	flags.IntP("count", "c", 0, "Count of params to read from the params file, 0 means all")
	flags.StringP("data", "d", "", "Data value")
	flags.StringP("output", "o", defaultOutput, "Output format: "+strings.Join(outputNames(), ", "))
	flags.StringP("encode", "e", defaultEncode, "Preprocess data value: "+strings.Join(encodeNames(), ", "))

	err = flags.Parse(arguments)
	if err != nil {
		return nil, nil, err
	}

	if showHelp {
		usage(output, flags)
		return nil, nil, errHelp
	}

	if showVersion {
		return flags, nil, nil
	}

	logrusLogLvl, err := logrus.ParseLevel(*logLvl)
	if err != nil {
		return nil, nil, err
	}
	logLevel = logrusLogLvl

	if err = validateLogFormat(logFormat); err != nil {
		return nil, nil, err
	}

	args, err = normalizeArgs(flags)
	if err != nil {
		return nil, nil, errors.Wrap(err, "couldn't normalize args")
	}

	return flags, args, nil
}

func validateLogFormat(logFormat string) error {
	if _, ok := logFormatsSet[logFormat]; !ok {
		return fmt.Errorf("unknown logging format: %s", logFormat)
	}

	return nil
}

// normalizeArgs returns string with used CLI args in a unified from.
func normalizeArgs(flags *flag.FlagSet) ([]string, error) {
	var (
		args []string
		err  error
	)

	fn := func(f *flag.Flag) {
		var (
			value string
			arg   string
		)

		// all types listed in parseFlags function
		argType := f.Value.Type()
		switch argType {
		case "string":
			value = f.Value.String()

			if strings.Contains(value, " ") {
				value = `"` + value + `"`
			}

			arg = fmt.Sprintf("--%s=%s", f.Name, value)

		case "bool":
			arg = fmt.Sprintf("--%s", f.Name)

		case "int":
			value = f.Value.String()
			arg = fmt.Sprintf("--%s=%s", f.Name, value)

		default:
			err = multierror.Append(err, fmt.Errorf("unknown CLI argument type: %s", argType))
		}

		args = append(args, arg)
	}

	// get all changed flags
	flags.Visit(fn)

	if err != nil {
		return nil, err
	}

	return args, nil
}
