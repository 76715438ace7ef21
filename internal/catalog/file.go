package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a catalog file contains no recipes.
var ErrEmpty = errors.New("catalog has no recipes")

// fileFormat is the on-disk layout of a YAML catalog.
type fileFormat struct {
	Recipes []domain.Recipe `yaml:"recipes"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML catalog document. Unknown fields are
// rejected.
func Parse(data []byte) (*Static, error) {
	var f fileFormat
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := Validate(f.Recipes); err != nil {
		return nil, err
	}
	return NewStatic(f.Recipes), nil
}

// Validate checks every recipe's shape and that ids are unique.
func Validate(recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return ErrEmpty
	}
	seen := make(map[string]int, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("recipe #%d (%q): %w", i+1, r.ID, err)
		}
		if prev, dup := seen[r.ID]; dup {
			return fmt.Errorf("recipe #%d: duplicate id %q (first seen at #%d)", i+1, r.ID, prev+1)
		}
		seen[r.ID] = i
	}
	return nil
}

// Encode writes recipes as a YAML catalog document.
func Encode(w io.Writer, recipes []domain.Recipe) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fileFormat{Recipes: recipes}); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}
