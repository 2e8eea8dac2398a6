package handlers

import (
	"strings"
)

// Route binds a path and its aliases to a handler
type Route struct {
	Name string
	Path string
	// Aliases match like Path but are not advertised in availablePaths
	Aliases []string
	// Methods lists the accepted verbs; empty accepts any verb
	Methods []string
	Handler Handler
}

func (r Route) matches(path string) bool {
	if path == r.Path {
		return true
	}
	for _, alias := range r.Aliases {
		if path == alias {
			return true
		}
	}
	return false
}

func (r Route) allows(method string) bool {
	if len(r.Methods) == 0 {
		return true
	}
	for _, m := range r.Methods {
		if m == method {
			return true
		}
	}
	return false
}

func (r Route) allowedList() string {
	return strings.Join(r.Methods, ", ")
}

// buildRoutes returns the static route table. Order matters: the first
// matching route wins.
func (d *Dispatcher) buildRoutes() []Route {
	health := Route{
		Name:    "Health",
		Path:    "/",
		Handler: d.handleHealth,
	}
	if hp := d.cfg.API.HealthPath; hp != "" && hp != "/" && hp != "/echo" {
		health.Aliases = []string{hp}
	}

	return []Route{
		health,
		{
			Name:    "Echo",
			Path:    "/echo",
			Methods: []string{"POST"},
			Handler: d.handleEcho,
		},
	}
}
