package rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lensycam/internal/pkg/response"
	"lensycam/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rentals", h.List)
	rg.GET("/rentals/:id", h.Get)
	rg.POST("/rentals", h.Create)
	rg.PUT("/rentals/:id", h.Update)
	rg.POST("/rentals/:id/return", h.Return)
	rg.DELETE("/rentals/:id", h.Delete)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid rental id")
		return 0, false
	}
	return id, true
}

func conflictWindow(err *ConflictError) ConflictWindow {
	return ConflictWindow{
		StartDate: err.Rental.StartDate,
		EndDate:   err.Rental.EndDate,
		StartTime: err.Rental.StartTime,
		EndTime:   err.Rental.EndTime,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		response.Conflict(c, "Camera is already rented during this time period", conflictWindow(conflict))
	case errors.Is(err, ErrCameraNotFound):
		response.Error(c, http.StatusNotFound, "Camera not found")
	case errors.Is(err, ErrCustomerNotFound):
		response.Error(c, http.StatusNotFound, "Customer not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Rental not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) List(c *gin.Context) {
	f := repository.RentalFilter{Status: c.Query("status")}
	if v := c.Query("camera_id"); v != "" {
		f.CameraID, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := c.Query("customer_id"); v != "" {
		f.CustomerID, _ = strconv.ParseInt(v, 10, 64)
	}

	rentals, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	details, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	r, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) Return(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReturnRequest
	// empty body means "returned today"
	_ = c.ShouldBindJSON(&req)

	r, err := h.service.Return(c.Request.Context(), id, req.ActualReturnDate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "Rental deleted successfully")
}
