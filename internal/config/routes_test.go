package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRouteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write route file: %v", err)
	}
	return path
}

func TestNewRouteConfig_Valid(t *testing.T) {
	path := writeRouteFile(t, `{
		"theological_keywords": ["catechism", "sacrament"],
		"reasoning_keywords": ["explain"],
		"models": {
			"theological": "model-a",
			"reasoning": "model-b",
			"general": "model-c"
		}
	}`)

	rc, err := NewRouteConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(rc.TheologicalKeywords) != 2 {
		t.Errorf("Expected 2 theological keywords, got %d", len(rc.TheologicalKeywords))
	}
	if rc.Models.General != "model-c" {
		t.Errorf("Expected general model 'model-c', got '%s'", rc.Models.General)
	}
}

func TestNewRouteConfig_MissingFile(t *testing.T) {
	if _, err := NewRouteConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestNewRouteConfig_InvalidJSON(t *testing.T) {
	path := writeRouteFile(t, `{not json`)
	if _, err := NewRouteConfig(path); err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}

func TestRouteConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  RouteConfig
		wantErr bool
	}{
		{
			name: "valid",
			config: RouteConfig{
				TheologicalKeywords: []string{"grace"},
				ReasoningKeywords:   []string{"explain"},
				Models:              ModelRoutes{Theological: "a", Reasoning: "b", General: "c"},
			},
		},
		{
			name: "missing model handle",
			config: RouteConfig{
				TheologicalKeywords: []string{"grace"},
				ReasoningKeywords:   []string{"explain"},
				Models:              ModelRoutes{Theological: "a", Reasoning: "b"},
			},
			wantErr: true,
		},
		{
			name: "empty theological keywords",
			config: RouteConfig{
				ReasoningKeywords: []string{"explain"},
				Models:            ModelRoutes{Theological: "a", Reasoning: "b", General: "c"},
			},
			wantErr: true,
		},
		{
			name: "empty reasoning keywords",
			config: RouteConfig{
				TheologicalKeywords: []string{"grace"},
				Models:              ModelRoutes{Theological: "a", Reasoning: "b", General: "c"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestRouteConfig_ModelHandles(t *testing.T) {
	rc := RouteConfig{Models: ModelRoutes{Theological: "a", Reasoning: "b", General: "a"}}
	handles := rc.ModelHandles()
	if len(handles) != 2 {
		t.Errorf("Expected 2 distinct handles, got %d: %v", len(handles), handles)
	}
}
