package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPSRedirect forces HTTPS behind a TLS-terminating proxy: requests the
// router reports as plain http are redirected permanently. Requests without
// an X-Forwarded-Proto header (local development, direct probes) pass
// through, as does the /healthz liveness probe.
func HTTPSRedirect() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}

		if c.GetHeader("X-Forwarded-Proto") == "http" {
			target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}

		c.Next()
	}
}
