package glitz

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadOptions decodes context options from TOML. Keys that are absent keep
// their default value; unknown keys are an error.
//
//	antialias = false
//	depth = true
//	power-preference = "high-performance"
func LoadOptions(r io.Reader) (ContextOptions, error) {
	o := DefaultContextOptions()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&o); err != nil {
		return ContextOptions{}, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	if o.PipelineCacheSize < 0 {
		return ContextOptions{}, fmt.Errorf("%w: negative pipeline-cache-size", ErrInvalidOption)
	}
	return o, nil
}

// LoadOptionsFile decodes context options from a TOML file.
func LoadOptionsFile(path string) (ContextOptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return ContextOptions{}, err
	}
	defer f.Close()
	return LoadOptions(f)
}
