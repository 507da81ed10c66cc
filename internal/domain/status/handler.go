package status

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospadmin/hospadmin/internal/platform/session"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/hospitals/status", session.RequireRole(session.RoleHospital))
	g.GET("", h.Get)
	g.PUT("", h.Save)
}

// Get returns the hospital's snapshot. 404 means the hospital has not saved
// one yet; the dashboard renders an empty board in that case.
func (h *Handler) Get(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	snap, err := h.svc.Get(c.Request().Context(), user.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "لا توجد حالة محفوظة")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": snap})
}

func (h *Handler) Save(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	var snap Snapshot
	if err := c.Bind(&snap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	snap.HospitalID = user.ID
	if err := h.svc.Save(c.Request().Context(), &snap); err != nil {
		if errors.Is(err, ErrBedsExceeded) {
			return echo.NewHTTPError(http.StatusBadRequest, "عدد الأسرة المشغولة لا يمكن أن يتجاوز العدد الكلي")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": snap})
}
