package fileio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/magefree/duel-server-go/internal/game"
)

// Format selects the encoding of an input document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension. Unknown extensions
// are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeInput parses and validates a session document.
func DecodeInput(r io.Reader, format Format) (*Input, error) {
	var in Input
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&in); err != nil {
			return nil, fmt.Errorf("failed to decode yaml input: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&in); err != nil {
			return nil, fmt.Errorf("failed to decode json input: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	return &in, nil
}

// ReadInput loads a session document from disk.
func ReadInput(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return DecodeInput(f, FormatFromPath(path))
}

// EncodeResults writes results as an indented JSON array.
func EncodeResults(w io.Writer, results []game.Result) error {
	if results == nil {
		results = []game.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// WriteResults writes the result document to path, creating parent
// directories as needed.
func WriteResults(path string, results []game.Result) error {
	var buf bytes.Buffer
	if err := EncodeResults(&buf, results); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
