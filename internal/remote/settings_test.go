package remote

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultSettingsValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings should validate: %v", err)
	}
}

func TestInvalidRangesRejected(t *testing.T) {
	cases := map[string]Settings{
		"channel min above max": func() Settings {
			s := DefaultSettings()
			s.MinChannel, s.MaxChannel = 10, 5
			s.DefaultChannel = 10
			return s
		}(),
		"default channel outside range": func() Settings {
			s := DefaultSettings()
			s.MaxChannel = 5
			s.DefaultChannel = 10
			return s
		}(),
		"volume min above max": func() Settings {
			s := DefaultSettings()
			s.MinVolume, s.MaxVolume = 50, 20
			s.DefaultVolume = 50
			return s
		}(),
		"default volume outside range": func() Settings {
			s := DefaultSettings()
			s.MaxVolume = 5
			s.DefaultVolume = 10
			return s
		}(),
	}

	for name, s := range cases {
		if err := s.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestSettingsFromMapRejectsUnknownKeys(t *testing.T) {
	_, err := SettingsFromMap(map[string]any{"name": "Test", "unknown": 1})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown") {
		t.Fatalf("expected unknown-key message, got %q", err.Error())
	}
}

func TestSettingsFromMapRejectsBadTypes(t *testing.T) {
	_, err := SettingsFromMap(map[string]any{"max_channel": "many"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	_, err = SettingsFromMap(map[string]any{"max_channel": 1.5})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for fractional value, got %v", err)
	}
}

func TestSettingsFromMapValid(t *testing.T) {
	s, err := SettingsFromMap(map[string]any{
		"name":            "Custom",
		"min_channel":     1,
		"max_channel":     10,
		"default_channel": 3,
		"min_volume":      0,
		"max_volume":      float64(20), // JSON decoders produce float64
		"default_volume":  5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Custom" {
		t.Fatalf("expected name Custom, got %q", s.Name)
	}
	if s.DefaultChannel != 3 {
		t.Fatalf("expected default channel 3, got %d", s.DefaultChannel)
	}
	if s.MaxVolume != 20 {
		t.Fatalf("expected max volume 20, got %d", s.MaxVolume)
	}
}

func TestSettingsFromMapKeepsDefaultsForAbsentKeys(t *testing.T) {
	s, err := SettingsFromMap(map[string]any{"name": "Partial"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultSettings()
	if s.MaxChannel != def.MaxChannel || s.DefaultVolume != def.DefaultVolume {
		t.Fatalf("expected defaults preserved, got %+v", s)
	}
}
