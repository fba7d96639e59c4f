package audit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	service ActivityService
}

func NewActivityHandler(service ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// GetActivityEntries godoc
// @Summary      List portal activity
// @Tags         Audit
// @Produce      json
// @Param        limit   query  int  false  "page size (max 1000)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  model.ActivityEntry
// @Router       /v1/audit [get]
func (h *ActivityHandler) GetActivityEntries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit cannot exceed 1000"})
		return
	}

	entries, err := h.service.GetEntries(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetActivityEntriesByActor godoc
// @Summary      List portal activity for one actor
// @Tags         Audit
// @Produce      json
// @Param        actor  path  string  true  "actor email"
// @Success      200  {array}  model.ActivityEntry
// @Router       /v1/audit/actor/{actor} [get]
func (h *ActivityHandler) GetActivityEntriesByActor(c *gin.Context) {
	actor := c.Param("actor")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit cannot exceed 1000"})
		return
	}

	entries, err := h.service.GetEntriesByActor(actor, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
