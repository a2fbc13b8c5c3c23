package admin

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/philipp01105/sitelog/core"
	"github.com/philipp01105/sitelog/logger"
	"github.com/philipp01105/sitelog/registry"
)

// Controller exposes runtime level control over HTTP:
//
//	GET  /loggers                     list keys and levels
//	POST /loggers?key=K&level=L       set (or create) one handle's level
//	POST /loggers?level=L             set every handle's level and the default
//
// Keys are passed as query parameters rather than path segments because
// they are typically file paths and contain slashes.
type Controller struct {
	reg *registry.Registry
	log *logger.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewController creates a Controller for reg. The controller logs its
// own actions through a handle from the same registry it administers.
func NewController(reg *registry.Registry) *Controller {
	return &Controller{
		reg: reg,
		log: reg.GetOrCreate("sitelog/admin"),
	}
}

// Register installs the controller's routes on router.
func (c *Controller) Register(router *mux.Router) {
	router.HandleFunc("/loggers", c.handleList).Methods(http.MethodGet)
	router.HandleFunc("/loggers", c.handleSetLevel).Methods(http.MethodPost)
}

// handleList writes the registry snapshot as JSON.
func (c *Controller) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, c.reg.Snapshot())
}

// handleSetLevel changes one handle's level, or every handle's when no
// key is given. Unknown keys are created at the requested level.
func (c *Controller) handleSetLevel(w http.ResponseWriter, r *http.Request) {
	levelStr := r.URL.Query().Get("level")
	if levelStr == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing level parameter"})
		return
	}
	level, err := core.ParseLevel(levelStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		c.reg.SetAllLevels(level)
		c.log.Infof("set all loggers to %s", level)
		writeJSON(w, http.StatusOK, c.reg.Snapshot())
		return
	}

	c.reg.SetLevel(key, level)
	c.log.Infof("set logger %q to %s", key, level)
	writeJSON(w, http.StatusOK, registry.LoggerInfo{Key: key, Level: level})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, `{"error":%q}`, err.Error())
	}
}
