package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/RodReBer/barraca-toto/internal/catalog"
	"github.com/RodReBer/barraca-toto/internal/config"
	httpapi "github.com/RodReBer/barraca-toto/internal/http"
	"github.com/RodReBer/barraca-toto/internal/http/controller"
	"github.com/RodReBer/barraca-toto/internal/http/middleware"
	"github.com/RodReBer/barraca-toto/internal/model"
	"github.com/RodReBer/barraca-toto/internal/overlay"
	"github.com/RodReBer/barraca-toto/internal/service"
)

const testAdminPassword = "eltoto2025"

// newTestServer wires the full router against a real store backed by a
// temp-dir file overlay.
func newTestServer(t *testing.T) (*gin.Engine, *catalog.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Config{AdminPassword: testAdminPassword}
	store := catalog.New(context.Background(), overlay.NewFileStore(filepath.Join(t.TempDir(), "overlay.json")))
	sessions := middleware.NewSessions()
	svc := service.NewCatalogService(store, nil)

	server := gin.New()
	httpapi.InitRouter(conf, server,
		controller.New(conf),
		controller.NewCatalogController(store),
		controller.NewAdminController(svc, store, sessions, conf.AdminPassword),
		sessions)
	return server, store
}

func doJSON(t *testing.T, server *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []model.Product {
	t.Helper()
	var resp struct {
		Products []model.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Products
}

// loginAdmin logs in with the shared password and returns the auth header.
func loginAdmin(t *testing.T, server *gin.Engine) map[string]string {
	t.Helper()
	w := doJSON(t, server, http.MethodPost, "/admin/login", `{"password":"`+testAdminPassword+`"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return map[string]string{middleware.AdminTokenHeader: resp.Token}
}
