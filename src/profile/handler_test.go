package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/edmundcwm/nerbcrmwp/src/apierror"
)

type stubProfileService struct {
	view       ShareholdersView
	updateErr  error
	lastActor  string
	lastUserID uint
}

func (s *stubProfileService) AllProfiles() ([]ProfileSummary, error) {
	return []ProfileSummary{{ID: 1, Email: "c@portal.test"}}, nil
}

func (s *stubProfileService) Shareholders(userID uint) (ShareholdersView, error) {
	s.lastUserID = userID
	return s.view, nil
}

func (s *stubProfileService) UpdateProfile(actor string, userID uint, fields map[string]interface{}) (string, error) {
	s.lastActor = actor
	s.lastUserID = userID
	if s.updateErr != nil {
		return "", s.updateErr
	}
	return "success", nil
}

func TestGetProfileWrapsResultInArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubProfileService{view: ShareholdersView{Shareholders: []Shareholder{{Name: "x", Percentage: "12.3"}}}}
	handler := NewProfileHandler(stub)

	router := gin.New()
	router.GET("/company-profile/:id", handler.GetProfile)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/company-profile/42", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, uint(42), stub.lastUserID)

	var payload []ShareholdersView
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Len(t, payload, 1)
	assert.Equal(t, "12.3", payload[0].Shareholders[0].Percentage)
}

func TestUpdateProfileMapsValidationErrorTo400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubProfileService{updateErr: apierror.NewValidation("invalid_key", "invalid key")}
	handler := NewProfileHandler(stub)

	router := gin.New()
	router.PUT("/company-profile/:id", handler.UpdateProfile)

	body := strings.NewReader(`{"unknown_field":1}`)
	request := httptest.NewRequest(http.MethodPut, "/company-profile/42", body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid key")
}

func TestUpdateProfileRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewProfileHandler(&stubProfileService{})

	router := gin.New()
	router.PUT("/company-profile/:id", handler.UpdateProfile)

	request := httptest.NewRequest(http.MethodPut, "/company-profile/42", strings.NewReader("not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
