package remote

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Settings describes the capabilities of a remote controller: the channel
// range it can tune and the volume range it can drive.
type Settings struct {
	Name           string `json:"name"`
	MinChannel     int    `json:"min_channel"`
	MaxChannel     int    `json:"max_channel" validate:"gtfield=MinChannel"`
	DefaultChannel int    `json:"default_channel" validate:"gtefield=MinChannel,ltefield=MaxChannel"`
	MinVolume      int    `json:"min_volume"`
	MaxVolume      int    `json:"max_volume" validate:"gtfield=MinVolume"`
	DefaultVolume  int    `json:"default_volume" validate:"gtefield=MinVolume,ltefield=MaxVolume"`
}

// DefaultSettings returns the factory configuration of the Piter Face remote.
func DefaultSettings() Settings {
	return Settings{
		Name:           "Piter Face",
		MinChannel:     1,
		MaxChannel:     999,
		DefaultChannel: 1,
		MinVolume:      0,
		MaxVolume:      100,
		DefaultVolume:  10,
	}
}

// Validate checks the range invariants: both ranges must be non-empty and
// both defaults must fall inside their range.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// SettingsFromMap builds settings from a decoded JSON/YAML mapping. Keys that
// are absent keep their default value; unknown keys are rejected.
func SettingsFromMap(m map[string]any) (Settings, error) {
	s := DefaultSettings()
	var unknown []string
	for key, raw := range m {
		var err error
		switch key {
		case "name":
			name, ok := raw.(string)
			if !ok {
				err = fmt.Errorf("%w: %s must be a string", ErrValidation, key)
			} else {
				s.Name = name
			}
		case "min_channel":
			s.MinChannel, err = intValue(key, raw)
		case "max_channel":
			s.MaxChannel, err = intValue(key, raw)
		case "default_channel":
			s.DefaultChannel, err = intValue(key, raw)
		case "min_volume":
			s.MinVolume, err = intValue(key, raw)
		case "max_volume":
			s.MaxVolume, err = intValue(key, raw)
		case "default_volume":
			s.DefaultVolume, err = intValue(key, raw)
		default:
			unknown = append(unknown, key)
		}
		if err != nil {
			return Settings{}, err
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Settings{}, fmt.Errorf("%w: unknown configuration keys: %s", ErrValidation, strings.Join(unknown, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// intValue accepts the numeric types a JSON or YAML decoder may produce.
func intValue(key string, raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrValidation, key)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer", ErrValidation, key)
	}
}
