package department

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
	g := e.Group("/hospitals/departments", session.RequireRole(session.RoleHospital))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/staff", h.AddStaff)
	g.PUT("/:id/staff/:staffId", h.UpdateStaff)
	g.DELETE("/:id/staff/:staffId", h.RemoveStaff)
}

func (h *Handler) List(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	p := pagination.FromContext(c)
	depts, total, err := h.svc.List(c.Request().Context(), user.ID, c.QueryParam("search"), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(depts, total, p.Limit, p.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	dept, err := h.svc.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "القسم غير موجود")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": dept})
}

func (h *Handler) Create(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	var dept Department
	if err := c.Bind(&dept); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	dept.HospitalID = user.ID
	if err := h.svc.Create(c.Request().Context(), &dept); err != nil {
		if errors.Is(err, ErrBedsExceeded) {
			return echo.NewHTTPError(http.StatusBadRequest, "عدد الأسرة المشغولة لا يمكن أن يتجاوز العدد الكلي")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": dept})
}

func (h *Handler) Update(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var dept Department
	if err := c.Bind(&dept); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	dept.ID = id
	dept.HospitalID = user.ID
	if err := h.svc.Update(c.Request().Context(), &dept); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "القسم غير موجود")
		case errors.Is(err, ErrBedsExceeded):
			return echo.NewHTTPError(http.StatusBadRequest, "عدد الأسرة المشغولة لا يمكن أن يتجاوز العدد الكلي")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": updated})
}

func (h *Handler) Delete(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), user.ID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

type staffRequest struct {
	DoctorID         uuid.UUID `json:"doctorId"`
	RoleInDepartment string    `json:"roleInDepartment"`
	OnDuty           bool      `json:"onDuty"`
}

func (h *Handler) AddStaff(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	deptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req staffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	sa := &StaffAssignment{
		DepartmentID:     deptID,
		DoctorID:         req.DoctorID,
		RoleInDepartment: req.RoleInDepartment,
		OnDuty:           req.OnDuty,
	}
	if err := h.svc.AddStaff(c.Request().Context(), user.ID, sa); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "القسم غير موجود")
		case errors.Is(err, ErrDuplicateStaff):
			return echo.NewHTTPError(http.StatusConflict, "الطبيب مضاف بالفعل إلى هذا القسم")
		case errors.Is(err, ErrInvalidRole):
			return echo.NewHTTPError(http.StatusBadRequest, "الدور المحدد غير صالح")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": sa})
}

func (h *Handler) UpdateStaff(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	deptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid staff id")
	}
	var req staffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	sa := &StaffAssignment{
		ID:               staffID,
		DepartmentID:     deptID,
		DoctorID:         req.DoctorID,
		RoleInDepartment: req.RoleInDepartment,
		OnDuty:           req.OnDuty,
	}
	if err := h.svc.UpdateStaff(c.Request().Context(), user.ID, sa); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "عضو الطاقم غير موجود")
		case errors.Is(err, ErrInvalidRole):
			return echo.NewHTTPError(http.StatusBadRequest, "الدور المحدد غير صالح")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": sa})
}

func (h *Handler) RemoveStaff(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	deptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid staff id")
	}
	if err := h.svc.RemoveStaff(c.Request().Context(), user.ID, deptID, staffID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "القسم غير موجود")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
