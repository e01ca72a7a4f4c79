package availability

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lensycam/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.Check)
}

func optTime(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

func (h *Handler) Check(c *gin.Context) {
	q := Query{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		StartTime: optTime(c, "start_time"),
		EndTime:   optTime(c, "end_time"),
	}

	cameras, err := h.service.FreeCameras(c.Request.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingDates):
			response.Error(c, http.StatusBadRequest, "Start date and end date are required")
		case errors.Is(err, ErrInvalidWindow):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, cameras)
}
