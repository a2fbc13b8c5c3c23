package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/sitelog/core"
	"github.com/philipp01105/sitelog/registry"
)

type nullSink struct{}

func (nullSink) Write(*core.Entry) error { return nil }
func (nullSink) Flush() error            { return nil }

func newTestServer(t *testing.T) (*registry.Registry, *httptest.Server) {
	t.Helper()
	reg := registry.New(nullSink{})
	router := mux.NewRouter()
	NewController(reg).Register(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return reg, srv
}

func TestController_List(t *testing.T) {
	reg, srv := newTestServer(t)
	reg.GetOrCreate("server/conn.go")
	reg.SetLevel("server/pool.go", core.DebugLevel)

	resp, err := http.Get(srv.URL + "/loggers")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var infos []registry.LoggerInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))

	// Sorted by key; the controller's own handle is listed too.
	require.Len(t, infos, 3)
	assert.Equal(t, "server/conn.go", infos[0].Key)
	assert.Equal(t, core.InfoLevel, infos[0].Level)
	assert.Equal(t, "server/pool.go", infos[1].Key)
	assert.Equal(t, core.DebugLevel, infos[1].Level)
	assert.Equal(t, "sitelog/admin", infos[2].Key)
}

func TestController_SetLevel(t *testing.T) {
	reg, srv := newTestServer(t)
	lg := reg.GetOrCreate("server/conn.go")

	resp, err := http.Post(srv.URL+"/loggers?key=server/conn.go&level=trace", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, core.TraceLevel, lg.Level())

	var info registry.LoggerInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, registry.LoggerInfo{Key: "server/conn.go", Level: core.TraceLevel}, info)
}

func TestController_SetLevelCreatesUnknownKey(t *testing.T) {
	reg, srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/loggers?key=not/seen/yet.go&level=debug", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	lg, ok := reg.Get("not/seen/yet.go")
	require.True(t, ok, "unknown key was not created on demand")
	assert.Equal(t, core.DebugLevel, lg.Level())
}

func TestController_SetAllLevels(t *testing.T) {
	reg, srv := newTestServer(t)
	a := reg.GetOrCreate("a")
	b := reg.GetOrCreate("b")

	resp, err := http.Post(srv.URL+"/loggers?level=error", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, core.ErrorLevel, a.Level())
	assert.Equal(t, core.ErrorLevel, b.Level())
	assert.Equal(t, core.ErrorLevel, reg.DefaultLevel())
}

func TestController_BadRequests(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/loggers?key=x&level=loud", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp2, err := http.Post(srv.URL+"/loggers?key=x", "", nil)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}
