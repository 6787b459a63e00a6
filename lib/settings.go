package lib

import "os"

import s "github.com/bnclabs/gosettings"
import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

// Loadsettings read settings from a yaml file. Nested sections are
// flattened into dotted parameter names, for example
//
//	nodearena:
//	  capacity: 1000000
//
// is loaded as "nodearena.capacity", and integers are loaded as int64.
func Loadsettings(filename string) (s.Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read settings file: %s", filename)
	}
	return Parsesettings(data)
}

// Parsesettings same as Loadsettings, reads yaml text from `data`.
func Parsesettings(data []byte) (s.Settings, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "could not parse settings")
	}
	setts := make(s.Settings)
	if err := flattensettings("", doc, setts); err != nil {
		return nil, err
	}
	return setts, nil
}

func flattensettings(
	prefix string, doc map[string]interface{}, setts s.Settings) error {

	for key, value := range doc {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch val := value.(type) {
		case map[string]interface{}:
			if err := flattensettings(key, val, setts); err != nil {
				return err
			}
		case int:
			setts[key] = int64(val)
		case int64, float64, bool, string:
			setts[key] = val
		default:
			return errors.Errorf("settings %q unsupported type %T", key, value)
		}
	}
	return nil
}
