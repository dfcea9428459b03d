package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// Services — сервисы ядра, которые обслуживает HTTP-слой.
type Services struct {
	Halls    ports.HallService
	Groups   ports.GroupService
	Trainers ports.TrainerService
	Students ports.StudentService
	Schedule ports.ScheduleItemService
}

type Handler struct {
	svc        Services
	log        ports.Logger
	reqTimeout time.Duration
}

// NewHandler — reqTimeout <= 0 отключает таймаут обработки запроса.
func NewHandler(svc Services, log ports.Logger, reqTimeout time.Duration) *Handler {
	return &Handler{svc: svc, log: log, reqTimeout: reqTimeout}
}

// requestCtx — контекст запроса с таймаутом обработки.
func (h *Handler) requestCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}

// statusOf — вид ошибки ядра -> HTTP-статус.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError — тело {"error": ...}; детали внутренних ошибок клиенту не отдаём.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "%s failed: %v", op, err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// orEmpty — пустой список сериализуется как [], а не null.
func orEmpty[E any](list []*E) []*E {
	if list == nil {
		return []*E{}
	}
	return list
}
