package host

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plugforge/plughost/json"
)

func TestRoutes_ListPlugins(t *testing.T) {
	symbols := abiSymbols(nil)
	symbols["NewServerPlugin"] = func() any { return &struct{}{} }
	symbols["DeleteServerPlugin"] = func(any) {}

	r := NewRegistry(Config{
		Dir:    t.TempDir(),
		Logger: zap.NewNop(),
		Opener: &fakeOpener{libs: map[string]*fakeLibrary{"srv.so": {symbols: symbols}}},
	})
	_, err := r.LoadPlugin("srv.so")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/plugins", nil)
	rec := httptest.NewRecorder()
	r.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report []ModuleStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report, 1)
	require.Equal(t, "srv.so", report[0].Path)
	require.NotEmpty(t, report[0].ID)
	require.Len(t, report[0].Plugins, 1)
	require.Equal(t, "server", report[0].Plugins[0].Kind)
}

func TestRoutes_ListPluginsEmpty(t *testing.T) {
	r := NewRegistry(Config{Dir: t.TempDir(), Opener: &fakeOpener{}})

	req := httptest.NewRequest(http.MethodGet, "/plugins", nil)
	rec := httptest.NewRecorder()
	r.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}
