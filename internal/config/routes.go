package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModelRoutes names the upstream model handle for each route
type ModelRoutes struct {
	Theological string `json:"theological"`
	Reasoning   string `json:"reasoning"`
	General     string `json:"general"`
}

// RouteConfig holds the data-driven classification policy for the model
// router: two ordered keyword lists and the model handle each route maps to.
type RouteConfig struct {
	TheologicalKeywords []string    `json:"theological_keywords"`
	ReasoningKeywords   []string    `json:"reasoning_keywords"`
	Models              ModelRoutes `json:"models"`
}

// NewRouteConfig creates a new route configuration from a file
func NewRouteConfig(configPath string) (*RouteConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var rc RouteConfig
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, err
	}

	if err := rc.Validate(); err != nil {
		return nil, err
	}

	return &rc, nil
}

// Validate checks that every route has a model handle and at least one
// keyword exists per classified route
func (rc *RouteConfig) Validate() error {
	if rc.Models.Theological == "" || rc.Models.Reasoning == "" || rc.Models.General == "" {
		return fmt.Errorf("route config must name a model for theological, reasoning, and general routes")
	}
	if len(rc.TheologicalKeywords) == 0 {
		return fmt.Errorf("route config must list at least one theological keyword")
	}
	if len(rc.ReasoningKeywords) == 0 {
		return fmt.Errorf("route config must list at least one reasoning keyword")
	}
	return nil
}

// ModelHandles returns the distinct model handles used by the routes
func (rc *RouteConfig) ModelHandles() []string {
	handles := []string{rc.Models.Theological}
	if rc.Models.Reasoning != rc.Models.Theological {
		handles = append(handles, rc.Models.Reasoning)
	}
	if rc.Models.General != rc.Models.Theological && rc.Models.General != rc.Models.Reasoning {
		handles = append(handles, rc.Models.General)
	}
	return handles
}
