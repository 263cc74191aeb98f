package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/alexferreiraaf/osmaster/internal/adapter/http/middleware"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var testUser = entities.User{Name: "Ana", Email: "ana@example.com"}

// newTestRouter mounts the handler behind a stub that plays the role of
// RequireAuth.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetUser(c, testUser)
		c.Next()
	})
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
