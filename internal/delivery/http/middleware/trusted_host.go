package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TrustedHost rejects requests whose Host header is not in the configured
// allowlist. Entries may be exact hostnames or "*.suffix" wildcards. An
// empty allowlist disables the check. The /healthz liveness probe is always
// exempt so infrastructure can reach it by IP.
func TrustedHost(allowedHosts []string) gin.HandlerFunc {
	if len(allowedHosts) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	exact := make(map[string]bool, len(allowedHosts))
	var wildcards []string
	for _, h := range allowedHosts {
		h = strings.ToLower(h)
		if strings.HasPrefix(h, "*.") {
			wildcards = append(wildcards, h[1:]) // keep ".suffix"
		} else {
			exact[h] = true
		}
	}

	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}

		host := strings.ToLower(c.Request.Host)
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}

		if exact[host] {
			c.Next()
			return
		}
		for _, suffix := range wildcards {
			if strings.HasSuffix(host, suffix) {
				c.Next()
				return
			}
		}

		c.String(http.StatusBadRequest, "Invalid host header")
		c.Abort()
	}
}
