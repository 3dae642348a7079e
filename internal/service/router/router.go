package router

import (
	"strings"

	"verbum-app/internal/config"
	"verbum-app/internal/service/llm"
)

// Route names the classification outcome
type Route string

const (
	RouteTheological Route = "theological"
	RouteReasoning   Route = "reasoning"
	RouteGeneral     Route = "general"
)

// Router selects which upstream model handle services a chat request. The
// classification is a pure function of the last message's text: lowercase it,
// check the theological keyword list first, then the reasoning list, and fall
// back to the general route. First match wins.
type Router struct {
	routes *config.RouteConfig
}

// NewRouter creates a router from the configured classification policy
func NewRouter(routes *config.RouteConfig) *Router {
	return &Router{routes: routes}
}

// Classify returns the route for the given message text
func (r *Router) Classify(text string) Route {
	lowered := strings.ToLower(text)

	for _, keyword := range r.routes.TheologicalKeywords {
		if strings.Contains(lowered, keyword) {
			return RouteTheological
		}
	}
	for _, keyword := range r.routes.ReasoningKeywords {
		if strings.Contains(lowered, keyword) {
			return RouteReasoning
		}
	}
	return RouteGeneral
}

// Select inspects the last message of the history and returns the model
// handle for it. Callers must guarantee at least one message.
func (r *Router) Select(messages []llm.Message) string {
	last := messages[len(messages)-1]
	return r.ModelFor(r.Classify(last.Content))
}

// ModelFor maps a route to its configured model handle
func (r *Router) ModelFor(route Route) string {
	switch route {
	case RouteTheological:
		return r.routes.Models.Theological
	case RouteReasoning:
		return r.routes.Models.Reasoning
	default:
		return r.routes.Models.General
	}
}
