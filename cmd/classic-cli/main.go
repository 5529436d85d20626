// Package main provides the classic-cli command line interface for the classical ciphers.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	classic "github.com/BackendStack21/classic-cipher-go"
	"github.com/BackendStack21/classic-cipher-go/ciphers/playfair"
	"github.com/BackendStack21/classic-cipher-go/ciphers/railfence"
	"github.com/BackendStack21/classic-cipher-go/product"
)

const (
	version = "1.0.0"
	appName = "classic-cli"
)

const (
	opEncrypt = "encrypt"
	opDecrypt = "decrypt"
)

var (
	errMissingSubcommand = errors.New("missing subcommand")
	errUnknownCommand    = errors.New("unknown command")
)

// app carries the streams and defaults shared by every command.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
	env    EnvConfig
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stdout)
		return 1
	}

	envCfg, envErr := loadEnvConfig()
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		log:    newLogger(stderr, envCfg.LogLevel, hasFlag(args[1:], "--verbose", "-v")),
		env:    envCfg,
	}
	if envErr != nil {
		a.log.Error("configuration failed", "error", envErr)
		return 1
	}

	command := args[0]
	var err error
	switch command {
	case "help", "--help", "-h":
		printUsage(stdout)
	case "version", "--version", "-v":
		fmt.Fprintf(stdout, "%s version %s\n", appName, version)
		fmt.Fprintf(stdout, "classic-cipher library version %s\n", classic.Version)
	case "playfair":
		err = a.handlePlayfair(args[1:])
	case "railfence":
		err = a.handleRailFence(args[1:])
	case "product":
		err = a.handleProduct(args[1:])
	case "matrix":
		err = a.handleMatrix(args[1:])
	case "prepare":
		err = a.handlePrepare(args[1:])
	case "benchmark":
		err = a.handleBenchmark(args[1:])
	default:
		printUsage(stdout)
		err = errors.Wrap(errUnknownCommand, command)
	}

	if err != nil {
		a.log.Error("command failed", "command", command, "error", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `%s - Classical Cipher CLI (Playfair, Rail Fence, product cipher)

USAGE:
    %s <COMMAND> [OPTIONS]

COMMANDS:
    playfair    Playfair digraph substitution
    railfence   Rail Fence transposition
    product     Playfair followed by Rail Fence
    matrix      Show the Playfair key square for a key
    prepare     Show a message in Playfair digraph form
    benchmark   Run performance benchmarks
    version     Show version information
    help        Show this help message

Use "%s <COMMAND> --help" for more information about a command.

ENVIRONMENT:
    CLASSIC_KEY        Default Playfair key
    CLASSIC_DEPTH      Default rail depth (default: 3)
    CLASSIC_FORMAT     Default output format (default: text)
    CLASSIC_LOG_LEVEL  Log level: debug, info, warn, error (default: info)

EXAMPLES:
    # Encrypt with Playfair
    %s playfair encrypt --key MONARCHY --message "instruments"

    # Show every digraph substitution
    %s playfair encrypt --key MONARCHY --message "instruments" --trace

    # Encrypt with Rail Fence and draw the zigzag
    %s railfence encrypt --depth 3 --message WEAREDISCOVEREDFLEEATONCE --show

    # Product cipher round trip
    %s product encrypt --key MONARCHY --depth 3 --message "instruments" --output ct.txt
    %s product decrypt --key MONARCHY --depth 3 --input ct.txt

    # Print the key square as YAML
    %s matrix --key "PLAYFAIR EXAMPLE" --format yaml

These ciphers are for teaching only and must never protect real data.
`, appName, appName, appName, appName, appName, appName, appName, appName, appName)
}

func isHelp(arg string) bool {
	return arg == "help" || arg == "--help" || arg == "-h"
}

// operation maps a subcommand and its short alias to the canonical operation name.
func operation(sub string) (string, error) {
	switch sub {
	case "encrypt", "enc":
		return opEncrypt, nil
	case "decrypt", "dec":
		return opDecrypt, nil
	default:
		return "", errors.Wrap(errUnknownCommand, sub)
	}
}

// subcommand resolves args[0] for the cipher commands. done is true when usage was
// printed and the command has nothing left to do.
func (a *app) subcommand(args []string, usage func(io.Writer)) (op string, done bool, err error) {
	if len(args) < 1 {
		usage(a.stdout)
		return "", true, errMissingSubcommand
	}
	if isHelp(args[0]) {
		usage(a.stdout)
		return "", true, nil
	}
	op, err = operation(args[0])
	if err != nil {
		usage(a.stdout)
		return "", true, err
	}
	return op, false, nil
}

func (a *app) timing(config CLIConfig, name string, start time.Time) {
	if config.Timing {
		a.log.Info("timing", "operation", name, slog.Duration("elapsed", time.Since(start)))
	}
}

func (a *app) emit(v textExporter, config CLIConfig) error {
	data, err := render(v, config.OutputFormat)
	if err != nil {
		return errors.Wrap(err, "serializing output")
	}
	if err := writeOutput(data, config.OutputFile, a.stdout); err != nil {
		return err
	}
	if config.OutputFile != "" {
		a.log.Info("output written", "path", config.OutputFile, "format", string(config.OutputFormat))
	}
	return nil
}

func (a *app) warnEmptyKey(key string) {
	if key == "" {
		a.log.Warn("empty key: the square is the plain alphabet")
	}
}

// ============================================================================
// Playfair
// ============================================================================

func printPlayfairUsage(w io.Writer) {
	fmt.Fprintf(w, `%s playfair - Playfair digraph substitution

USAGE:
    %s playfair <SUBCOMMAND> [OPTIONS]

SUBCOMMANDS:
    encrypt, enc    Encrypt a message
    decrypt, dec    Decrypt a ciphertext (uppercase letters without J, even length)

OPTIONS:
    -k, --key <TEXT>       Key (default: $CLASSIC_KEY)
    -m, --message <TEXT>   Message (default: --input, then stdin)
    -i, --input <FILE>     Read the message from a file
    -o, --output <FILE>    Write the result to a file
    -f, --format <FORMAT>  text, json or yaml
        --trace            Show every digraph substitution
    -t, --timing           Log elapsed time
    -v, --verbose          Debug logging
`, appName, appName)
}

func (a *app) handlePlayfair(args []string) error {
	op, done, err := a.subcommand(args, printPlayfairUsage)
	if done {
		return err
	}

	config, err := parseConfig(args[1:], a.env)
	if err != nil {
		return err
	}
	message, err := readMessage(config, a.stdin)
	if err != nil {
		return err
	}
	key := config.Params.Key
	a.warnEmptyKey(key)
	trace := hasFlag(args[1:], "--trace")

	m := playfair.BuildMatrix(key)
	a.log.Debug("key square", "fingerprint", m.Fingerprint(), "letters", m.Key())

	export := CipherExport{Cipher: "playfair", Operation: op, Fingerprint: m.Fingerprint()}
	start := time.Now()
	switch op {
	case opEncrypt:
		export.Output = playfair.Encrypt(message, key)
		if trace {
			export.Steps = playfair.Trace(message, key)
		}
	case opDecrypt:
		export.Output, err = playfair.Decrypt(message, key)
		if err == nil && trace {
			export.Steps, err = playfair.TraceDecrypt(message, key)
		}
	}
	a.timing(config, "playfair "+op, start)
	if err != nil {
		return errors.Wrap(err, "playfair "+op)
	}
	return a.emit(export, config)
}

// ============================================================================
// Rail Fence
// ============================================================================

func printRailFenceUsage(w io.Writer) {
	fmt.Fprintf(w, `%s railfence - Rail Fence transposition

USAGE:
    %s railfence <SUBCOMMAND> [OPTIONS]

SUBCOMMANDS:
    encrypt, enc    Encrypt a message
    decrypt, dec    Decrypt a ciphertext

OPTIONS:
    -d, --depth <N>        Number of rails, at least 1 (default: $CLASSIC_DEPTH or 3)
    -m, --message <TEXT>   Message (default: --input, then stdin)
    -i, --input <FILE>     Read the message from a file
    -o, --output <FILE>    Write the result to a file
    -f, --format <FORMAT>  text, json or yaml
        --show             Draw the zigzag of the plaintext
    -t, --timing           Log elapsed time
    -v, --verbose          Debug logging
`, appName, appName)
}

func (a *app) handleRailFence(args []string) error {
	op, done, err := a.subcommand(args, printRailFenceUsage)
	if done {
		return err
	}

	config, err := parseConfig(args[1:], a.env)
	if err != nil {
		return err
	}
	message, err := readMessage(config, a.stdin)
	if err != nil {
		return err
	}
	depth := config.Params.Depth
	a.log.Debug("rail fence", "depth", depth, "length", len([]rune(message)))

	export := CipherExport{Cipher: "railfence", Operation: op, Depth: depth}
	start := time.Now()
	plain := message
	switch op {
	case opEncrypt:
		export.Output, err = railfence.Encrypt(message, depth)
	case opDecrypt:
		export.Output, err = railfence.Decrypt(message, depth)
		plain = export.Output
	}
	a.timing(config, "railfence "+op, start)
	if err != nil {
		return errors.Wrap(err, "railfence "+op)
	}

	if hasFlag(args[1:], "--show") {
		if export.Fence, err = railfence.Fence(plain, depth); err != nil {
			return err
		}
	}
	return a.emit(export, config)
}

// ============================================================================
// Product cipher
// ============================================================================

func printProductUsage(w io.Writer) {
	fmt.Fprintf(w, `%s product - Playfair substitution followed by Rail Fence transposition

USAGE:
    %s product <SUBCOMMAND> [OPTIONS]

SUBCOMMANDS:
    encrypt, enc    Encrypt a message
    decrypt, dec    Decrypt a ciphertext to the prepared plaintext

OPTIONS:
    -k, --key <TEXT>       Playfair key (default: $CLASSIC_KEY)
    -d, --depth <N>        Number of rails (default: $CLASSIC_DEPTH or 3)
    -m, --message <TEXT>   Message (default: --input, then stdin)
    -i, --input <FILE>     Read the message from a file
    -o, --output <FILE>    Write the result to a file
    -f, --format <FORMAT>  text, json or yaml
        --trace            Show the output of every stage (encrypt only)
    -t, --timing           Log elapsed time
    -v, --verbose          Debug logging
`, appName, appName)
}

func (a *app) handleProduct(args []string) error {
	op, done, err := a.subcommand(args, printProductUsage)
	if done {
		return err
	}

	config, err := parseConfig(args[1:], a.env)
	if err != nil {
		return err
	}
	message, err := readMessage(config, a.stdin)
	if err != nil {
		return err
	}
	a.warnEmptyKey(config.Params.Key)

	export := CipherExport{
		Cipher:      "product",
		Operation:   op,
		Depth:       config.Params.Depth,
		Fingerprint: playfair.BuildMatrix(config.Params.Key).Fingerprint(),
	}
	start := time.Now()
	switch op {
	case opEncrypt:
		var res *product.Result
		res, err = product.EncryptTrace(message, config.Params.Key, config.Params.Depth)
		if err == nil {
			export.Output = res.Ciphertext
			if hasFlag(args[1:], "--trace") {
				export.Stages = res
			}
			a.log.Debug("stages", "prepared", res.Prepared, "substituted", res.Substituted)
		}
	case opDecrypt:
		export.Output, err = product.DecryptParams(message, config.Params)
	}
	a.timing(config, "product "+op, start)
	if err != nil {
		return errors.Wrap(err, "product "+op)
	}
	return a.emit(export, config)
}

// ============================================================================
// Inspection
// ============================================================================

func printMatrixUsage(w io.Writer) {
	fmt.Fprintf(w, `%s matrix - Show the Playfair key square

USAGE:
    %s matrix [OPTIONS]

OPTIONS:
    -k, --key <TEXT>       Key (default: $CLASSIC_KEY)
    -o, --output <FILE>    Write the square to a file
    -f, --format <FORMAT>  text, json or yaml
`, appName, appName)
}

func (a *app) handleMatrix(args []string) error {
	if len(args) > 0 && isHelp(args[0]) {
		printMatrixUsage(a.stdout)
		return nil
	}
	config, err := parseConfig(args, a.env)
	if err != nil {
		return err
	}
	a.warnEmptyKey(config.Params.Key)

	m := playfair.BuildMatrix(config.Params.Key)
	return a.emit(MatrixExport{
		Letters:     m.Key(),
		Rows:        strings.Split(m.String(), "\n"),
		Fingerprint: m.Fingerprint(),
	}, config)
}

func printPrepareUsage(w io.Writer) {
	fmt.Fprintf(w, `%s prepare - Show a message in Playfair digraph form

USAGE:
    %s prepare [OPTIONS]

OPTIONS:
    -m, --message <TEXT>   Message (default: --input, then stdin)
    -i, --input <FILE>     Read the message from a file
    -o, --output <FILE>    Write the result to a file
    -f, --format <FORMAT>  text, json or yaml
`, appName, appName)
}

func (a *app) handlePrepare(args []string) error {
	if len(args) > 0 && isHelp(args[0]) {
		printPrepareUsage(a.stdout)
		return nil
	}
	config, err := parseConfig(args, a.env)
	if err != nil {
		return err
	}
	message, err := readMessage(config, a.stdin)
	if err != nil {
		return err
	}

	prepared := playfair.Prepare(message)
	digraphs := playfair.Digraphs(prepared)
	export := PrepareExport{Prepared: prepared, Digraphs: make([]string, len(digraphs))}
	for i, d := range digraphs {
		export.Digraphs[i] = d.String()
	}
	return a.emit(export, config)
}
