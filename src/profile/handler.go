package profile

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edmundcwm/nerbcrmwp/src/apierror"
	"github.com/edmundcwm/nerbcrmwp/src/auth"
)

type ProfileHandler struct {
	service ProfileService
}

func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetAllProfiles godoc
// @Summary      List every customer company profile
// @Tags         CompanyProfile
// @Produce      json
// @Success      200  {array}  ProfileSummary
// @Failure      403  {object}  map[string]string
// @Router       /v1/company-profile [get]
func (h *ProfileHandler) GetAllProfiles(c *gin.Context) {
	summaries, err := h.service.AllProfiles()
	if err != nil {
		apierror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetProfile godoc
// @Summary      Read one profile's shareholders
// @Tags         CompanyProfile
// @Produce      json
// @Param        id  path  int  true  "user id"
// @Success      200  {array}  ShareholdersView
// @Failure      403  {object}  map[string]string
// @Router       /v1/company-profile/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	view, err := h.service.Shareholders(uint(userID))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	// The read shape is a one-element array wrapping the shareholders list.
	c.JSON(http.StatusOK, []ShareholdersView{view})
}

// UpdateProfile godoc
// @Summary      Update a profile's editable fields
// @Tags         CompanyProfile
// @Accept       json
// @Produce      json
// @Param        id      path  int                     true  "user id"
// @Param        fields  body  map[string]interface{}  true  "fields to update"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /v1/company-profile/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		apierror.Write(c, apierror.NewValidation("invalid_body", "Request body must be a JSON field map."))
		return
	}

	identity, _ := auth.FromContext(c)
	result, err := h.service.UpdateProfile(identity.Email, uint(userID), fields)
	if err != nil {
		apierror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
