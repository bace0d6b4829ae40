package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFile is returned for batch files that fail validation.
var ErrInvalidFile = errors.New("invalid batch file")

// Expected error names accepted in Case.Error.
const (
	ErrorFormat = "format"
	ErrorRange  = "range"
	ErrorSyntax = "syntax"
	ErrorKind   = "kind"
)

// File is a parsed batch file.
type File struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`

	// Path is where the file was loaded from, if anywhere.
	Path string `yaml:"-"`
}

// Case is a single expression with an optional expectation.
type Case struct {
	Name   string `yaml:"name"`
	Expr   string `yaml:"expr"`
	Expect string `yaml:"expect,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// Load reads and validates a batch file. A missing name defaults to the
// file's base name without extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}

	f, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a batch file held in memory.
func Parse(data []byte) (*File, error) {
	f, err := parse(data)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return &f, nil
}

// Validate checks the file and fills in default case names ("case-N").
func (f *File) Validate() error {
	if len(f.Cases) == 0 {
		return fmt.Errorf("%w: no cases", ErrInvalidFile)
	}

	seen := make(map[string]bool, len(f.Cases))
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate case name %q", ErrInvalidFile, c.Name)
		}
		seen[c.Name] = true

		if strings.TrimSpace(c.Expr) == "" {
			return fmt.Errorf("%w: case %q has no expression", ErrInvalidFile, c.Name)
		}
		if c.Expect != "" && c.Error != "" {
			return fmt.Errorf("%w: case %q sets both expect and error", ErrInvalidFile, c.Name)
		}
		switch c.Error {
		case "", ErrorFormat, ErrorRange, ErrorSyntax, ErrorKind:
		default:
			return fmt.Errorf("%w: case %q: unknown error kind %q (valid: format, range, syntax, kind)", ErrInvalidFile, c.Name, c.Error)
		}
	}
	return nil
}

// Marshal renders the file back to YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}
