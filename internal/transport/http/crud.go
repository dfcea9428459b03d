package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/pkg/httpx"
)

// crudService — общий набор операций сервисов сущностей.
type crudService[E any] interface {
	FindByID(ctx context.Context, id int64) (*E, error)
	FindAll(ctx context.Context) ([]*E, error)
	Create(ctx context.Context, entity *E) (*E, error)
	Update(ctx context.Context, entity *E) (*E, error)
	Delete(ctx context.Context, id int64) error
}

// crud — обработчики /api/<entity> поверх crudService.
type crud[E any] struct {
	h      *Handler
	entity domain.Entity
	svc    crudService[E]
	setID  func(e *E, id int64)
}

func (r crud[E]) register(g *gin.RouterGroup) {
	g.GET("/:id", r.findByID)
	g.GET("", r.findAll)
	g.POST("", r.create)
	g.PUT("/:id", r.update)
	g.DELETE("/:id", r.delete)
}

func (r crud[E]) findByID(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := r.h.requestCtx(c)
	defer cancel()

	entity, err := r.svc.FindByID(ctx, id)
	if err != nil {
		r.h.writeError(c, "find "+string(r.entity), err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (r crud[E]) findAll(c *gin.Context) {
	ctx, cancel := r.h.requestCtx(c)
	defer cancel()

	list, err := r.svc.FindAll(ctx)
	if err != nil {
		r.h.writeError(c, "list "+string(r.entity), err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(list))
}

func (r crud[E]) create(c *gin.Context) {
	var payload E
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "invalid json: "+err.Error())
		return
	}
	ctx, cancel := r.h.requestCtx(c)
	defer cancel()

	created, err := r.svc.Create(ctx, &payload)
	if err != nil {
		r.h.writeError(c, "create "+string(r.entity), err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// update — идентификатор берётся из пути, id в теле игнорируется.
func (r crud[E]) update(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	var payload E
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "invalid json: "+err.Error())
		return
	}
	r.setID(&payload, id)

	ctx, cancel := r.h.requestCtx(c)
	defer cancel()

	updated, err := r.svc.Update(ctx, &payload)
	if err != nil {
		r.h.writeError(c, "update "+string(r.entity), err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r crud[E]) delete(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := r.h.requestCtx(c)
	defer cancel()

	if err := r.svc.Delete(ctx, id); err != nil {
		r.h.writeError(c, "delete "+string(r.entity), err)
		return
	}
	c.Status(http.StatusNoContent)
}
