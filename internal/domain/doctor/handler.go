package doctor

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
	g := e.Group("/hospitals/doctors", session.RequireRole(session.RoleHospital))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	p := pagination.FromContext(c)
	docs, total, err := h.svc.List(c.Request().Context(), user.ID, c.QueryParam("search"), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(docs, total, p.Limit, p.Offset))
}

func (h *Handler) Create(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	var doc Doctor
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	doc.HospitalID = user.ID
	if err := h.svc.Create(c.Request().Context(), &doc); err != nil {
		if errors.Is(err, ErrDuplicateNationalCode) {
			return echo.NewHTTPError(http.StatusConflict, "فشل في إضافة الطبيب، قد يكون الرقم الوطني مكرر")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": doc})
}

func (h *Handler) Update(c echo.Context) error {
	user := session.FromContext(c.Request().Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var doc Doctor
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "طلب غير صالح")
	}
	doc.ID = id
	doc.HospitalID = user.ID
	if err := h.svc.Update(c.Request().Context(), &doc); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "الطبيب غير موجود")
		case errors.Is(err, ErrDuplicateNationalCode):
			return echo.NewHTTPError(http.StatusConflict, "فشل في تعديل الطبيب، قد يكون الرقم الوطني مكرر")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": doc})
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
