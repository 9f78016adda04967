package api

import (
	echo "github.com/labstack/echo/v5"
)

// extractUser extracts the requesting user's identity from proxy
// headers. The dashboard sits behind an authenticating proxy; the
// resolved identity scopes session lookup and the gateway session key.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email
// (oauth2-proxy) > X-Remote-User (kube-rbac-proxy) > "api-client".
func extractUser(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}
