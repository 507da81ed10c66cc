package patientlog

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
	e.GET("/hospitals/patient-log", h.ListPatientLog, session.RequireRole(session.RoleHospital))
	e.PUT("/patients/:id/status", h.UpdateStatus, session.RequireRole(session.RoleHospital))
	e.POST("/paramedic/cases", h.ReportCase, session.RequireRole(session.RoleParamedic))
	e.GET("/hospitals/cases", h.ListCases, session.RequireRole(session.RoleHospital, session.RoleParamedic))
}

func (h *Handler) ListPatientLog(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	p := pagination.FromContext(c)
	entries, total, err := h.svc.ListForHospital(c.Request().Context(), user.ID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(entries, total, p.Limit, p.Offset))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	entry, err := h.svc.UpdateStatus(c.Request().Context(), user.ID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownStatus):
			return echo.NewHTTPError(http.StatusBadRequest, "حالة غير معروفة")
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "الحالة غير موجودة")
		case errors.Is(err, ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusConflict, "لا يمكن تغيير الحالة من وضعها الحالي")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": entry})
}

func (h *Handler) ReportCase(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	var in ReportCaseInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	entry, err := h.svc.ReportCase(c.Request().Context(), user.ID, in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": entry})
}

// ListCases serves the map view. Hospitals see their incoming cases,
// paramedics see the ones they reported.
func (h *Handler) ListCases(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	p := pagination.FromContext(c)

	var (
		entries []*Entry
		total   int
		err     error
	)
	if user.Role == session.RoleParamedic {
		entries, total, err = h.svc.ListForParamedic(c.Request().Context(), user.ID, p.Limit, p.Offset)
	} else {
		entries, total, err = h.svc.ListForHospital(c.Request().Context(), user.ID, p.Limit, p.Offset)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(entries, total, p.Limit, p.Offset))
}
