package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.viam.com/posemath/logging"
)

// Formats a frames file may be written in.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFromPath picks the file format from the path's extension. Anything that isn't .yaml or .yml is
// treated as JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadFramesFile reads and validates a frames file from disk.
func ReadFramesFile(path string, logger logging.Logger) (*FramesConfig, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open frames file %q", path)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warnw("error closing frames file", "path", path, "error", err)
		}
	}()
	return ReadFrames(f, FormatFromPath(path), logger)
}

// ReadFrames reads and validates frames from r. The document is parsed generically and then decoded
// into FramesConfig by json field names, so JSON and YAML files share one schema.
func ReadFrames(r io.Reader, format string, logger logging.Logger) (*FramesConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read frames")
	}

	var raw map[string]interface{}
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	default:
		return nil, errors.Errorf("unknown frames format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s frames", format)
	}

	var conf FramesConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &conf,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "cannot decode frames")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	logger.Debugw("read frames", "format", format, "count", len(conf.Frames))
	return &conf, nil
}
