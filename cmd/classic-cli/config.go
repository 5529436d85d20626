package main

import (
	"io"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/BackendStack21/classic-cipher-go/core"
	"github.com/BackendStack21/classic-cipher-go/utils"
)

// EnvConfig holds defaults read from the environment (and an optional .env file).
// Command line flags override every field.
type EnvConfig struct {
	Key      string `env:"CLASSIC_KEY"`
	Depth    int    `env:"CLASSIC_DEPTH" envDefault:"3"`
	Format   string `env:"CLASSIC_FORMAT" envDefault:"text"`
	LogLevel string `env:"CLASSIC_LOG_LEVEL" envDefault:"info"`
}

// CLIConfig holds CLI configuration
type CLIConfig struct {
	Params       core.Params
	OutputFormat OutputFormat
	OutputFile   string
	InputFile    string
	Message      string
	Verbose      bool
	Timing       bool
}

// loadEnvConfig loads .env when present, then parses the environment.
// Variables already set in the process environment win over .env entries.
func loadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, errors.Wrap(err, "load .env")
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse environment")
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func parseConfig(args []string, defaults EnvConfig) (CLIConfig, error) {
	config := CLIConfig{
		Params: core.Params{
			Key:   defaults.Key,
			Depth: defaults.Depth,
		},
	}

	if key := getArg(args, "--key", "-k"); key != "" {
		config.Params.Key = key
	}
	if err := utils.CheckLength(len(config.Params.Key), utils.MaxKeySize); err != nil {
		return config, errors.Wrapf(err, "key of %d bytes", len(config.Params.Key))
	}

	if depth := getArg(args, "--depth", "-d"); depth != "" {
		n, err := strconv.Atoi(depth)
		if err != nil {
			return config, errors.Errorf("invalid depth '%s': must be an integer", depth)
		}
		config.Params.Depth = n
	}

	format := getArg(args, "--format", "-f")
	if format == "" {
		format = defaults.Format
	}
	switch OutputFormat(strings.ToLower(format)) {
	case FormatText, "":
		config.OutputFormat = FormatText
	case FormatJSON:
		config.OutputFormat = FormatJSON
	case FormatYAML, "yml":
		config.OutputFormat = FormatYAML
	default:
		return config, errors.Errorf("invalid format '%s'. Must be one of: text, json, yaml", format)
	}

	config.Message = getArg(args, "--message", "-m")
	config.OutputFile = getArg(args, "--output", "-o")
	config.InputFile = getArg(args, "--input", "-i")
	config.Verbose = hasFlag(args, "--verbose", "-v")
	config.Timing = hasFlag(args, "--timing", "-t")

	return config, nil
}

// getArg returns the value following the first of names found in args.
func getArg(args []string, names ...string) string {
	for i := 0; i < len(args)-1; i++ {
		if slices.Contains(names, args[i]) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		if slices.Contains(names, arg) {
			return true
		}
	}
	return false
}
