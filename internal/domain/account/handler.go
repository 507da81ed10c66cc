package account

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hospadmin/hospadmin/internal/platform/session"
	"github.com/hospadmin/hospadmin/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin", session.RequireRole(session.RoleSuperAdmin))
	admin.GET("/users", h.ListUsers)
	admin.POST("/users", h.CreateUser)
	admin.DELETE("/users/:id", h.DeleteUser)

	hospitals := e.Group("/hospitals", session.Require())
	hospitals.GET("", h.ListHospitals)
	hospitals.GET("/profile", h.GetProfile, session.RequireRole(session.RoleHospital))
	hospitals.PUT("/profile", h.UpdateProfile, session.RequireRole(session.RoleHospital))
	hospitals.PUT("/profile/password", h.ChangePassword, session.RequireRole(session.RoleHospital))
}

func (h *Handler) ListUsers(c echo.Context) error {
	p := pagination.FromContext(c)
	accs, total, err := h.svc.ListUsers(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(accs, total, p.Limit, p.Offset))
}

func (h *Handler) CreateUser(c echo.Context) error {
	var in CreateUserInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	acc, err := h.svc.CreateUser(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, "البريد الإلكتروني مسجل بالفعل")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": acc})
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) ListHospitals(c echo.Context) error {
	p := pagination.FromContext(c)
	accs, total, err := h.svc.ListHospitals(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(accs, total, p.Limit, p.Offset))
}

func (h *Handler) GetProfile(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	acc, err := h.svc.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "الحساب غير موجود")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": acc})
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	var in UpdateProfileInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	acc, err := h.svc.UpdateProfile(c.Request().Context(), user.ID, in)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, "البريد الإلكتروني مسجل بالفعل")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": acc})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) ChangePassword(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	err := h.svc.ChangePassword(c.Request().Context(), user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, ErrWrongPassword) {
			return echo.NewHTTPError(http.StatusBadRequest, "كلمة المرور الحالية غير صحيحة")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
