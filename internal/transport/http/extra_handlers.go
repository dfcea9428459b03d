package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/dance_center/pkg/httpx"
	"github.com/Gunvolt24/dance_center/pkg/validate"
)

// findGroupsByDanceStyle — группы, тренер которых ведёт стиль.
func (h *Handler) findGroupsByDanceStyle(c *gin.Context) {
	style := httpx.ParamOrEmpty(c, "danceStyle")
	if style == "" {
		badRequest(c, "empty dance style")
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	groups, err := h.svc.Groups.FindAllByDanceStyle(ctx, style)
	if err != nil {
		h.writeError(c, "list groups by dance style", err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(groups))
}

func (h *Handler) findScheduleByGroup(c *gin.Context) {
	groupID, err := httpx.ParseIDParam(c, "groupId")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	items, err := h.svc.Schedule.FindAllByGroup(ctx, groupID)
	if err != nil {
		h.writeError(c, "list schedule by group", err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(items))
}

// createScheduleBulk — все слоты или ни одного.
// Тело разбирается тем же декодером, что и сообщения импорта: null и пустой пакет — 400.
func (h *Handler) createScheduleBulk(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, "read body: "+err.Error())
		return
	}
	payload, err := validate.DecodeScheduleItems(raw)
	if err != nil {
		h.writeError(c, "decode schedule bulk", err)
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	created, err := h.svc.Schedule.CreateMultiple(ctx, payload)
	if err != nil {
		h.writeError(c, "create schedule bulk", err)
		return
	}
	c.JSON(http.StatusCreated, orEmpty(created))
}
