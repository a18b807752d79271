// Package middleware holds fiber middlewares shared by every route.
package middleware

import (
	"context"
	"strings"

	"github.com/amirasaad/user-management/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

const (
	// Realm is sent in the WWW-Authenticate challenge.
	Realm = "Restricted"
	// SwaggerPrefix and every path below it are served without credentials.
	SwaggerPrefix = "/swagger"
)

func isSwaggerPath(path string) bool {
	return path == SwaggerPrefix || strings.HasPrefix(path, SwaggerPrefix+"/")
}

// BasicProtected requires HTTP Basic credentials accepted by authSvc on every
// route except the API docs.
func BasicProtected(authSvc *auth.Service) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Next: func(c *fiber.Ctx) bool {
			return isSwaggerPath(c.Path())
		},
		Realm: Realm,
		Authorizer: func(username, password string) bool {
			return authSvc.Authenticate(context.Background(), username, password)
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="`+Realm+`"`)
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		},
	})
}
