package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	s := &Settings{}
	s.ApplyDefaults()

	if s.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", s.Server.Port)
	}
	if s.Server.MaxBodyBytes != 64<<10 {
		t.Errorf("Expected default max body 65536, got %d", s.Server.MaxBodyBytes)
	}
	if s.Logging.Env != "dev" {
		t.Errorf("Expected default logging env 'dev', got '%s'", s.Logging.Env)
	}
	if s.DebounceDelay() != 150*time.Millisecond {
		t.Errorf("Expected default debounce 150ms, got %v", s.DebounceDelay())
	}
	if len(s.Search.Fields) != 5 {
		t.Fatalf("Expected 5 default field weights, got %d", len(s.Search.Fields))
	}
	if s.Search.Fields[0] != (FieldWeight{Field: FieldLocation, Weight: 5}) {
		t.Errorf("Expected location to be weighted first, got %+v", s.Search.Fields[0])
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	s := &Settings{
		Server: ServerSettings{Port: 9000},
		Search: SearchSettings{
			DebounceMs: 75,
			Fields:     []FieldWeight{{Field: FieldName, Weight: 3}},
		},
	}
	s.ApplyDefaults()

	if s.Server.Port != 9000 {
		t.Errorf("Expected port 9000 to be kept, got %d", s.Server.Port)
	}
	if s.Search.DebounceMs != 75 {
		t.Errorf("Expected debounce 75 to be kept, got %d", s.Search.DebounceMs)
	}
	if len(s.Search.Fields) != 1 {
		t.Errorf("Expected explicit fields to be kept, got %+v", s.Search.Fields)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(s *Settings)
		expectedErrors int
		contains       string
	}{
		{
			name:           "defaults are valid",
			mutate:         func(s *Settings) {},
			expectedErrors: 0,
		},
		{
			name:           "port out of range",
			mutate:         func(s *Settings) { s.Server.Port = 70000 },
			expectedErrors: 1,
			contains:       "server.port",
		},
		{
			name:           "unknown logging env",
			mutate:         func(s *Settings) { s.Logging.Env = "staging" },
			expectedErrors: 1,
			contains:       "logging.env",
		},
		{
			name: "unknown field",
			mutate: func(s *Settings) {
				s.Search.Fields = []FieldWeight{{Field: "rating", Weight: 1}}
			},
			expectedErrors: 1,
			contains:       "Unknown field 'rating'",
		},
		{
			name: "non-positive weight",
			mutate: func(s *Settings) {
				s.Search.Fields = []FieldWeight{{Field: FieldName, Weight: 0}}
			},
			expectedErrors: 1,
			contains:       "positive weight",
		},
		{
			name: "duplicate field",
			mutate: func(s *Settings) {
				s.Search.Fields = []FieldWeight{{Field: FieldName, Weight: 1}, {Field: FieldName, Weight: 2}}
			},
			expectedErrors: 1,
			contains:       "Duplicate field 'name'",
		},
		{
			name: "empty field name",
			mutate: func(s *Settings) {
				s.Search.Fields = []FieldWeight{{Field: "  ", Weight: 1}}
			},
			expectedErrors: 1,
			contains:       "cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)

			errs := s.Validate()
			if len(errs) != tt.expectedErrors {
				t.Fatalf("Expected %d errors, got %d: %v", tt.expectedErrors, len(errs), errs)
			}
			if tt.contains != "" && !strings.Contains(errs[0], tt.contains) {
				t.Errorf("Expected error to contain '%s', got '%s'", tt.contains, errs[0])
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path gives defaults", func(t *testing.T) {
		s, err := Load("")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if s.Server.Port != 8080 {
			t.Errorf("Expected default port, got %d", s.Server.Port)
		}
		if !reflect.DeepEqual(s, Default()) {
			t.Errorf("Expected Load(\"\") to equal Default(), got %+v", s)
		}
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		data := `
server:
  port: 9090
logging:
  env: prod
  level: warn
search:
  debounce_ms: 75
  fields:
    - field: name
      weight: 3
    - field: state
      weight: 5
`
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if s.Server.Port != 9090 || s.Logging.Env != "prod" || s.Logging.Level != "warn" {
			t.Errorf("Unexpected settings: %+v", s)
		}
		if s.DebounceDelay() != 75*time.Millisecond {
			t.Errorf("Expected 75ms debounce, got %v", s.DebounceDelay())
		}
		if len(s.Search.Fields) != 2 || s.Search.Fields[1].Field != FieldState {
			t.Errorf("Unexpected fields: %+v", s.Search.Fields)
		}
	})

	t.Run("empty file gives defaults", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("search:\n  fields:\n    - field: phone\n      weight: 1\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Expected error for unknown field")
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		if err := os.WriteFile(path, []byte("sever:\n  port: 1\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Expected error for unknown key")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}
