package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrInvalidCredentials is returned by an Authenticator when the email,
// password, or requested role does not match a stored account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator verifies login credentials against stored accounts.
// Implemented by the account service.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password, role string) (*User, error)
}

// Handler serves the session endpoints: login, whoami, logout.
type Handler struct {
	auth    Authenticator
	manager *Manager
}

func NewHandler(auth Authenticator, manager *Manager) *Handler {
	return &Handler{auth: auth, manager: manager}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/login", h.Login)
	e.GET("/auth/me", h.Me)
	e.POST("/auth/logout", h.Logout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "البريد الإلكتروني وكلمة المرور مطلوبان")
	}
	if !ValidRole(req.Role) {
		return echo.NewHTTPError(http.StatusBadRequest, "نوع المستخدم غير صالح")
	}

	user, err := h.auth.Authenticate(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "البريد الإلكتروني أو كلمة المرور غير صحيحة")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}

	token, err := h.manager.Mint(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	c.SetCookie(h.manager.Cookie(token))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    user,
	})
}

// Me resolves the current session. A missing session is an expected outcome
// for the dashboard's bootstrap call, answered with a plain 401.
func (h *Handler) Me(c echo.Context) error {
	user := FromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "يجب تسجيل الدخول")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}

// Logout clears the session cookie. Sessions are stateless, so the cleared
// cookie is the whole invalidation.
func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(h.manager.ClearCookie())
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
