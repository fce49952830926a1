package api

import (
	"net/http"

	"github.com/taskwell/taskwell-api/internal/api/shared"
)

// ServiceName and ServiceVersion identify the API on the root endpoint.
const (
	ServiceName    = "Taskwell API"
	ServiceVersion = "1.0.0"
)

// MetaResponse is the body of the root endpoint.
type MetaResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Docs      string            `json:"docs,omitempty"`
	Endpoints map[string]string `json:"endpoints"`
}

// MetaHandler serves the root endpoint: a small service index so a
// browser hitting the bare host sees something useful.
type MetaHandler struct {
	devMode bool
}

// NewMetaHandler creates a MetaHandler. The docs pointer is only
// advertised in dev mode.
func NewMetaHandler(devMode bool) *MetaHandler {
	return &MetaHandler{devMode: devMode}
}

// Root handles GET /.
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	resp := MetaResponse{
		Message: ServiceName,
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"register": "POST /api/auth/register",
			"login":    "POST /api/auth/login",
			"tasks":    "GET /api/tasks",
			"health":   "GET /health",
		},
	}
	if h.devMode {
		resp.Docs = "/docs"
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// endpointDoc describes one route for the dev-mode docs endpoint.
type endpointDoc struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Auth   bool   `json:"auth"`
	Desc   string `json:"description"`
}

// Docs handles GET /docs. Registered only in dev mode; production
// deployments expose no API documentation.
func (h *MetaHandler) Docs(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, []endpointDoc{
		{Method: "POST", Path: "/api/auth/register", Auth: false, Desc: "Register a new user"},
		{Method: "POST", Path: "/api/auth/login", Auth: false, Desc: "Exchange credentials for a bearer token"},
		{Method: "POST", Path: "/api/tasks", Auth: true, Desc: "Create a task"},
		{Method: "GET", Path: "/api/tasks", Auth: true, Desc: "List the caller's tasks, newest first"},
		{Method: "GET", Path: "/api/tasks/{id}", Auth: true, Desc: "Get one task"},
		{Method: "PUT", Path: "/api/tasks/{id}", Auth: true, Desc: "Partially update a task"},
		{Method: "DELETE", Path: "/api/tasks/{id}", Auth: true, Desc: "Delete a task"},
		{Method: "GET", Path: "/health", Auth: false, Desc: "Service and database health"},
	})
}
