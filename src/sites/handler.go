package sites

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edmundcwm/nerbcrmwp/src/apierror"
	"github.com/edmundcwm/nerbcrmwp/src/auth"
)

type SiteHandler struct {
	service SiteService
}

func NewSiteHandler(service SiteService) *SiteHandler {
	return &SiteHandler{service: service}
}

// GetAllSites godoc
// @Summary      List linked sites
// @Tags         LinkedSites
// @Produce      json
// @Success      200  {array}  SiteView
// @Router       /v1/linked-sites [get]
func (h *SiteHandler) GetAllSites(c *gin.Context) {
	views, err := h.service.AllSites()
	if err != nil {
		apierror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

type updateURLRequest struct {
	URL string `json:"url"`
}

// UpdateSiteURL godoc
// @Summary      Update a linked site's URL
// @Tags         LinkedSites
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "site id"
// @Param        body  body  updateURLRequest  true  "https URL"
// @Success      200  {object}  SiteView
// @Failure      400  {object}  map[string]string
// @Router       /v1/linked-sites/{id} [patch]
func (h *SiteHandler) UpdateSiteURL(c *gin.Context) {
	siteID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var request updateURLRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		apierror.Write(c, apierror.NewValidation("invalid_body", "Request body must carry a url field."))
		return
	}

	identity, _ := auth.FromContext(c)
	view, err := h.service.UpdateURL(identity.Email, uint(siteID), request.URL)
	if err != nil {
		apierror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
