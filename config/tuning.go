package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// ErrTuningFile wraps any failure to read or decode the tuning override file
var ErrTuningFile = errors.New("tuning file")

// LoadTuning returns the default tuning overridden by the YAML file at path
// An empty path yields the defaults. A file that decodes but fails validation
// is discarded with a warning; the defaults are returned without error
func LoadTuning(path string, log logrus.FieldLogger) (*parameter.Tuning, error) {
	if path == "" {
		return parameter.DefaultTuning(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTuningFile, err)
	}
	return DecodeTuning(data, log)
}

// DecodeTuning applies a YAML document on top of the defaults; fields absent from the document keep their default
func DecodeTuning(data []byte, log logrus.FieldLogger) (*parameter.Tuning, error) {
	t := parameter.DefaultTuning()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrTuningFile, err)
	}

	if err := t.Validate(); err != nil {
		log.WithError(err).Warn("tuning override rejected, using defaults")
		return parameter.DefaultTuning(), nil
	}
	return t, nil
}
