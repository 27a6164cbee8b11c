package dbg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Tag selects the location prefix written before each record.
type Tag string

const (
	TagLine Tag = "line" // "[12] "
	TagFile Tag = "file" // "[main.go:12] "
	TagNone Tag = "none" // no prefix
)

var tags = []Tag{TagLine, TagFile, TagNone}

// String returns the tag name.
func (t Tag) String() string { return string(t) }

// ParseTag parses a tag name.
func ParseTag(s string) (Tag, error) {
	for _, t := range tags {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown tag %q", ErrInvalidConfig, s)
}

// Config controls how a [Printer] lays out records.
type Config struct {
	// Indent is prepended to each line of a multi-line block.
	Indent string `yaml:"indent"`
	// Tag selects the record prefix.
	Tag Tag `yaml:"tag"`
	// SepWidth is the display width of the line written by Sep.
	SepWidth int `yaml:"sep_width"`
	// SepChar is the single character repeated by Sep.
	SepChar string `yaml:"sep_char"`
}

// DefaultConfig returns two-space indents, line-number tags and a 50 column
// "-" separator.
func DefaultConfig() Config {
	return Config{
		Indent:   defaultIndent,
		Tag:      TagLine,
		SepWidth: 50,
		SepChar:  "-",
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := ParseTag(string(c.Tag)); err != nil {
		return err
	}
	if c.SepWidth < 0 {
		return fmt.Errorf("%w: negative sep_width %d", ErrInvalidConfig, c.SepWidth)
	}
	if utf8.RuneCountInString(c.SepChar) != 1 {
		return fmt.Errorf("%w: sep_char must be one character, got %q", ErrInvalidConfig, c.SepChar)
	}
	return nil
}

func (c Config) sepRune() rune {
	r, _ := utf8.DecodeRuneInString(c.SepChar)
	return r
}

// ParseConfig decodes a YAML document over [DefaultConfig]. Unknown keys are
// rejected. An empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}
