package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wallarm/paramgen/internal/config"
	"github.com/wallarm/paramgen/internal/params"
	"github.com/wallarm/paramgen/internal/payload"
	"github.com/wallarm/paramgen/internal/payload/encoder"
	"github.com/wallarm/paramgen/internal/payload/placeholder"
	"github.com/wallarm/paramgen/internal/version"
)

const (
	exitOK              = 0
	exitFailure         = 1
	exitMissingArgument = 2
	exitFileRead        = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(arguments []string, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)

	flags, args, err := parseFlags(arguments, stdout)
	if err != nil {
		if errors.Is(err, errHelp) {
			return exitOK
		}

		printError(stderr, err)
		return exitFailure
	}

	// show version and exit
	if showVersion {
		fmt.Fprintf(stderr, "paramgen %s\n", version.Version)
		return exitOK
	}

	logger.SetLevel(logLevel)
	if logFormat == jsonLogFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if quiet {
		logger.SetOutput(io.Discard)
	}

	logger.WithField("args", args).Debug("paramgen started")

	cfg, err := config.Load(flags, configPath)
	if err != nil {
		printError(stderr, err)
		return exitCode(err)
	}
	cfg.Args = args

	result, err := generate(cfg, logger)
	if err != nil {
		printError(stderr, err)
		return exitCode(err)
	}

	fmt.Fprintln(stdout, result)

	return exitOK
}

func generate(cfg *config.Config, logger *logrus.Logger) (string, error) {
	paramList, err := params.Load(cfg.Params, cfg.Count)
	if err != nil {
		return "", errors.Wrap(err, "couldn't load params")
	}

	logger.WithFields(logrus.Fields{
		"from_file": params.IsFile(cfg.Params),
		"count":     len(paramList),
	}).Debug("Params loaded")

	if !encoder.IsKnown(cfg.Encode) {
		logger.WithField("encode", cfg.Encode).Debug("Unknown encoder, data is used as is")
	}
	if !placeholder.IsKnown(cfg.Output) {
		logger.WithField("output", cfg.Output).Debug("Unknown output format, output is empty")
	}

	info := &payload.PayloadInfo{
		Payload:         cfg.Data,
		EncoderName:     cfg.Encode,
		PlaceholderName: cfg.Output,
		URL:             cfg.URL,
		Params:          paramList,
	}

	result, err := info.GetRequest()
	if err != nil {
		return "", errors.Wrap(err, "couldn't generate output")
	}

	logger.WithFields(logrus.Fields{
		"encode": cfg.Encode,
		"output": cfg.Output,
	}).Debug("Output generated")

	return result, nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
}

func exitCode(err error) int {
	var missingErr *config.MissingArgumentError
	if errors.As(err, &missingErr) {
		return exitMissingArgument
	}

	var readErr *params.FileReadError
	if errors.As(err, &readErr) {
		return exitFileRead
	}

	return exitFailure
}
