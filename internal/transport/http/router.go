package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/pkg/httpx"
)

// NewRouter — gin-движок с middleware и маршрутами /api/...
// otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "route not found"}) })
	r.NoMethod(func(c *gin.Context) { c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"}) })

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	crud[domain.Hall]{h: h, entity: domain.EntityHall, svc: h.svc.Halls,
		setID: func(e *domain.Hall, id int64) { e.ID = id }}.register(api.Group("/hall"))
	crud[domain.Trainer]{h: h, entity: domain.EntityTrainer, svc: h.svc.Trainers,
		setID: func(e *domain.Trainer, id int64) { e.ID = id }}.register(api.Group("/trainer"))
	crud[domain.Student]{h: h, entity: domain.EntityStudent, svc: h.svc.Students,
		setID: func(e *domain.Student, id int64) { e.ID = id }}.register(api.Group("/student"))

	groups := api.Group("/group")
	groups.GET("/dance_style/:danceStyle", h.findGroupsByDanceStyle)
	crud[domain.Group]{h: h, entity: domain.EntityGroup, svc: h.svc.Groups,
		setID: func(e *domain.Group, id int64) { e.ID = id }}.register(groups)

	schedule := api.Group("/schedule_item")
	schedule.GET("/group/:groupId", h.findScheduleByGroup)
	schedule.POST("/bulk", h.createScheduleBulk)
	crud[domain.ScheduleItem]{h: h, entity: domain.EntityScheduleItem, svc: h.svc.Schedule,
		setID: func(e *domain.ScheduleItem, id int64) { e.ID = id }}.register(schedule)

	return r
}
