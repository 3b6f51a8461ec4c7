package v1

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/SnakeArena/internal/apperrors"
)

// RegisterStaticRoutes serves the bundled single-page app from dir. Unknown
// paths fall back to index.html so client-side routes survive a reload.
// Register it last so API routes take precedence.
func RegisterStaticRoutes(e *echo.Echo, dir string) {
	index := filepath.Join(dir, "index.html")

	e.GET("/", func(c echo.Context) error {
		if isFile(index) {
			return c.File(index)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to Snake Arena API"})
	})

	e.GET("/*", func(c echo.Context) error {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Param("*"))))
		if isFile(name) {
			return c.File(name)
		}
		if isFile(index) {
			return c.File(index)
		}
		return apperrors.NotFound("Not found")
	})
}

func isFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}
