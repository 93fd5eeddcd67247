package pipeline

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/riverspiral/pkg/errors"
)

// LoadConfig reads options from a TOML file. Keys missing from the file keep
// their defaults; unknown keys are rejected.
//
//	title = "Rivers of the World"
//	width = 1600
//	formats = ["svg", "png"]
//
//	[layout]
//	columns = 8
//
//	[encode]
//	max_stroke = 5.0
func LoadConfig(path string) (Options, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Options{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	defer f.Close()
	return ParseConfig(f)
}

// ParseConfig decodes TOML options from r on top of DefaultOptions.
func ParseConfig(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.NewDecoder(r).Decode(&opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return opts, nil
}

// WriteConfig encodes opts as TOML.
func WriteConfig(w io.Writer, opts Options) error {
	if err := toml.NewEncoder(w).Encode(opts); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}
