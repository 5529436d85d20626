package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"

	classic "github.com/BackendStack21/classic-cipher-go"
	"github.com/BackendStack21/classic-cipher-go/ciphers/playfair"
	"github.com/BackendStack21/classic-cipher-go/ciphers/railfence"
	"github.com/BackendStack21/classic-cipher-go/core"
	"github.com/BackendStack21/classic-cipher-go/product"
	"github.com/BackendStack21/classic-cipher-go/utils"
)

const (
	defaultIterations    = 100
	defaultMessageLength = 1024
)

func printBenchmarkUsage(w io.Writer) {
	fmt.Fprintf(w, `%s benchmark - Measure encryption and decryption speed

USAGE:
    %s benchmark [OPTIONS]

OPTIONS:
    -n, --iterations <N>   Iterations per operation (default: %d)
    -l, --length <N>       Random message length in letters (default: %d)
    -k, --key <TEXT>       Playfair key (default: $CLASSIC_KEY or %q)
    -d, --depth <N>        Rail depth (default: $CLASSIC_DEPTH or 3)
`, appName, appName, defaultIterations, defaultMessageLength, core.DefaultKey)
}

// positiveArg parses an optional positive integer flag bounded by limit.
func positiveArg(args []string, name string, fallback, limit int, names ...string) (int, error) {
	raw := getArg(args, names...)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Errorf("invalid %s '%s': must be an integer", name, raw)
	}
	if err := utils.CheckPositive(n, name); err != nil {
		return 0, err
	}
	if err := utils.CheckLength(n, limit); err != nil {
		return 0, errors.Wrapf(err, "%s %d", name, n)
	}
	return n, nil
}

func (a *app) handleBenchmark(args []string) error {
	if len(args) > 0 && isHelp(args[0]) {
		printBenchmarkUsage(a.stdout)
		return nil
	}
	config, err := parseConfig(args, a.env)
	if err != nil {
		return err
	}
	iterations, err := positiveArg(args, "iterations", defaultIterations, utils.MaxIterations, "--iterations", "-n")
	if err != nil {
		return err
	}
	length, err := positiveArg(args, "length", defaultMessageLength, utils.MaxMessageSize, "--length", "-l")
	if err != nil {
		return err
	}

	params := config.Params
	if params.Key == "" {
		params.Key = core.DefaultKey
	}
	if err := core.ValidateParams(params); err != nil {
		return err
	}

	message, err := utils.RandomText(classic.Alphabet, length)
	if err != nil {
		return errors.Wrap(err, "generating message")
	}
	a.log.Debug("benchmark message", "length", length, "fingerprint", playfair.BuildMatrix(params.Key).Fingerprint())

	w := a.stdout
	fmt.Fprintf(w, "Classic Cipher Benchmark Results\n")
	fmt.Fprintf(w, "================================\n")
	fmt.Fprintf(w, "Message Length: %d\n", length)
	fmt.Fprintf(w, "Rail Depth: %d\n", params.Depth)
	fmt.Fprintf(w, "Iterations: %d\n\n", iterations)

	// Playfair
	fmt.Fprintln(w, "Playfair")
	fmt.Fprintln(w, "--------")
	var pfCipher string
	avg, err := measure(iterations, func() error {
		pfCipher = playfair.Encrypt(message, params.Key)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Encrypt:     %v (avg)\n", avg)
	avg, err = measure(iterations, func() error {
		_, err := playfair.Decrypt(pfCipher, params.Key)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "playfair decrypt")
	}
	fmt.Fprintf(w, "  Decrypt:     %v (avg)\n\n", avg)

	// Rail Fence
	fmt.Fprintln(w, "Rail Fence")
	fmt.Fprintln(w, "----------")
	var rfCipher string
	avg, err = measure(iterations, func() error {
		var err error
		rfCipher, err = railfence.Encrypt(message, params.Depth)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "railfence encrypt")
	}
	fmt.Fprintf(w, "  Encrypt:     %v (avg)\n", avg)
	avg, err = measure(iterations, func() error {
		_, err := railfence.Decrypt(rfCipher, params.Depth)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "railfence decrypt")
	}
	fmt.Fprintf(w, "  Decrypt:     %v (avg)\n\n", avg)

	// Product
	fmt.Fprintln(w, "Product (Playfair + Rail Fence)")
	fmt.Fprintln(w, "-------------------------------")
	var pCipher string
	avg, err = measure(iterations, func() error {
		var err error
		pCipher, err = product.EncryptParams(message, params)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "product encrypt")
	}
	fmt.Fprintf(w, "  Encrypt:     %v (avg)\n", avg)
	avg, err = measure(iterations, func() error {
		_, err := product.DecryptParams(pCipher, params)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "product decrypt")
	}
	fmt.Fprintf(w, "  Decrypt:     %v (avg)\n", avg)
	return nil
}

// measure runs fn iterations times and returns the mean duration.
func measure(iterations int, fn func() error) (time.Duration, error) {
	var total time.Duration
	for i := 0; i < iterations; i++ {
		start := time.Now()
		err := fn()
		total += time.Since(start)
		if err != nil {
			return 0, err
		}
	}
	return total / time.Duration(iterations), nil
}
