package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	classic "github.com/BackendStack21/classic-cipher-go"
	"github.com/BackendStack21/classic-cipher-go/product"
	"github.com/BackendStack21/classic-cipher-go/utils"
)

// OutputFormat represents the output format for results
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// CipherExport represents the result of one encrypt or decrypt command
type CipherExport struct {
	Cipher      string          `json:"cipher" yaml:"cipher"`
	Operation   string          `json:"operation" yaml:"operation"`
	Output      string          `json:"output" yaml:"output"`
	Fingerprint string          `json:"key_fingerprint,omitempty" yaml:"key_fingerprint,omitempty"`
	Depth       int             `json:"depth,omitempty" yaml:"depth,omitempty"`
	Steps       []classic.Step  `json:"steps,omitempty" yaml:"steps,omitempty"`
	Fence       []string        `json:"fence,omitempty" yaml:"fence,omitempty"`
	Stages      *product.Result `json:"stages,omitempty" yaml:"stages,omitempty"`
}

// MatrixExport represents an exported key square
type MatrixExport struct {
	Letters     string   `json:"letters" yaml:"letters"`
	Rows        []string `json:"rows" yaml:"rows"`
	Fingerprint string   `json:"fingerprint" yaml:"fingerprint"`
}

// PrepareExport represents a message in digraph form
type PrepareExport struct {
	Prepared string   `json:"prepared" yaml:"prepared"`
	Digraphs []string `json:"digraphs" yaml:"digraphs"`
}

func (e CipherExport) text() string {
	var b strings.Builder
	for _, s := range e.Steps {
		fmt.Fprintf(&b, "%s -> %s  %-9s (%d,%d) (%d,%d)\n",
			s.In, s.Out, s.Rule, s.PosA.Row, s.PosA.Col, s.PosB.Row, s.PosB.Col)
	}
	for _, line := range e.Fence {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if e.Stages != nil {
		fmt.Fprintf(&b, "prepared:    %s\n", e.Stages.Prepared)
		fmt.Fprintf(&b, "substituted: %s\n", e.Stages.Substituted)
		fmt.Fprintf(&b, "ciphertext:  %s", e.Stages.Ciphertext)
		return b.String()
	}
	b.WriteString(e.Output)
	return b.String()
}

func (e MatrixExport) text() string {
	return strings.Join(e.Rows, "\n") + "\nfingerprint: " + e.Fingerprint
}

func (e PrepareExport) text() string {
	return strings.Join(e.Digraphs, " ")
}

type textExporter interface {
	text() string
}

// render serializes v in the requested format, terminated by exactly one newline.
// Text output is the value verbatim, so readMessage's single newline trim restores
// a ciphertext that itself ends in newlines.
func render(v textExporter, format OutputFormat) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		// yaml.Marshal already ends every document with a newline.
		return yaml.Marshal(v)
	default:
		return []byte(v.text() + "\n"), nil
	}
}

// readMessage returns the message from --message, --input or stdin, in that order.
// A single trailing newline is dropped from file and stdin input: it is the
// terminator that writeOutput and echo add. Everything before it is kept.
func readMessage(config CLIConfig, stdin io.Reader) (string, error) {
	if config.Message != "" {
		if err := utils.CheckLength(len(config.Message), utils.MaxMessageSize); err != nil {
			return "", errors.Wrap(err, "message")
		}
		return config.Message, nil
	}

	var data []byte
	if config.InputFile != "" {
		info, err := os.Stat(config.InputFile)
		if err != nil {
			return "", errors.Wrap(err, "failed to stat input file")
		}
		if err := utils.CheckLength(int(info.Size()), utils.MaxMessageSize); err != nil {
			return "", errors.Wrapf(err, "input file too large: %d bytes", info.Size())
		}
		data, err = os.ReadFile(config.InputFile)
		if err != nil {
			return "", errors.Wrap(err, "reading input file")
		}
	} else {
		var err error
		data, err = io.ReadAll(io.LimitReader(stdin, utils.MaxMessageSize+1))
		if err != nil {
			return "", errors.Wrap(err, "reading from stdin")
		}
		if err := utils.CheckLength(len(data), utils.MaxMessageSize); err != nil {
			return "", errors.Wrap(err, "stdin")
		}
	}

	return string(bytes.TrimSuffix(data, []byte("\n"))), nil
}

// writeOutput writes rendered data unchanged to filename, or to stdout when no
// file is given.
func writeOutput(data []byte, filename string, stdout io.Writer) error {
	if filename == "" {
		_, err := stdout.Write(data)
		return err
	}

	// Plaintext may be sensitive: owner read-write only.
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Wrap(err, "writing output file")
	}

	// Ensure permissions are enforced even if umask is permissive
	if err := os.Chmod(filename, 0600); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	return nil
}
