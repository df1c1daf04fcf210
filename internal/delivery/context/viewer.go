package context

import (
	"github.com/labstack/echo/v4"

	"homestay/internal/domain/entity"
)

// KeyViewer is the key for storing the resolved viewer in echo.Context.
const KeyViewer ContextKey = "viewer"

// GetViewer extracts the resolved viewer from echo.Context. A nil result
// means the request is anonymous.
func GetViewer(c echo.Context) *entity.User {
	val := c.Get(string(KeyViewer))
	if user, ok := val.(*entity.User); ok {
		return user
	}

	return nil
}

// SetViewer stores the resolved viewer in echo.Context.
func SetViewer(c echo.Context, user *entity.User) {
	c.Set(string(KeyViewer), user)
}

// GetViewerID returns the resolved viewer's identifier, or an empty string
// for anonymous requests.
func GetViewerID(c echo.Context) string {
	if user := GetViewer(c); user != nil {
		return user.ID
	}

	return ""
}
