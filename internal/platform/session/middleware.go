package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Resolve parses the session cookie and, when valid, stores the user on the
// request context. It never rejects: an absent or bad cookie is the normal
// unauthenticated state, and route guards decide what that means.
func Resolve(m *Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(m.CookieName())
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			user, err := m.Parse(cookie.Value)
			if err != nil {
				return next(c)
			}

			c.SetRequest(c.Request().WithContext(WithUser(c.Request().Context(), user)))
			return next(c)
		}
	}
}

// Require rejects unauthenticated requests with 401.
func Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if FromContext(c.Request().Context()) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "يجب تسجيل الدخول")
			}
			return next(c)
		}
	}
}

// RequireRole rejects requests whose session does not carry one of the given
// roles. Unauthenticated requests get 401, wrong-role requests get 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := FromContext(c.Request().Context())
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "يجب تسجيل الدخول")
			}
			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "ليست لديك صلاحية الوصول")
		}
	}
}
