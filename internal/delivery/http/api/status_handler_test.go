package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-marketing-backend/internal/delivery/http/api"
	"go-marketing-backend/internal/delivery/http/middleware"
	"go-marketing-backend/internal/domain"
	"go-marketing-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api.NewStatusHandler(r.Group("/api"), usecase.NewStatusStore())
	return r
}

func TestStatusEndpoints(t *testing.T) {
	r := newStatusRouter()

	t.Run("list starts empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("append then read back in order", func(t *testing.T) {
		for _, name := range []string{"client-a", "client-b"} {
			body := `{"client_name":"` + name + `"}`
			req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			var check domain.StatusCheck
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
			assert.Equal(t, name, check.ClientName)
			assert.NotEmpty(t, check.ID)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))

		var checks []domain.StatusCheck
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checks))
		require.Len(t, checks, 2)
		assert.Equal(t, "client-a", checks[0].ClientName)
		assert.Equal(t, "client-b", checks[1].ClientName)
	})

	t.Run("missing client_name is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Client name")
	})
}
