package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/edmundcwm/nerbcrmwp/src/auth"
)

type stubResolver struct {
	identities map[string]auth.Identity
}

func (r *stubResolver) Resolve(token string) (auth.Identity, error) {
	if identity, ok := r.identities[token]; ok {
		return identity, nil
	}
	return auth.Identity{}, auth.ErrUnknownToken
}

func newTestResolver() *stubResolver {
	return &stubResolver{identities: map[string]auth.Identity{
		"tok-manager": {ID: 1, Email: "m@portal.test", Roles: []string{"portal_manager"}},
	}}
}

func performRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestIdentifyAttachesIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identify(newTestResolver()))
	router.GET("/whoami", func(c *gin.Context) {
		identity, ok := auth.FromContext(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": identity.Email})
	})

	recorder := performRequest(router, http.MethodGet, "/whoami", "tok-manager")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "m@portal.test")

	// Unknown tokens leave the request anonymous instead of aborting.
	recorder = performRequest(router, http.MethodGet, "/whoami", "tok-nobody")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "anonymous")
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identify(newTestResolver()))
	router.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := performRequest(router, http.MethodGet, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "rest_not_logged_in")

	recorder = performRequest(router, http.MethodGet, "/private", "tok-manager")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identify(newTestResolver()))

	deny := func(auth.Identity, *gin.Context) bool { return false }
	allow := func(auth.Identity, *gin.Context) bool { return true }
	router.GET("/denied", RequirePermission(deny), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/allowed", RequirePermission(allow), func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := performRequest(router, http.MethodGet, "/denied", "tok-manager")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "rest_forbidden")

	recorder = performRequest(router, http.MethodGet, "/denied", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = performRequest(router, http.MethodGet, "/allowed", "tok-manager")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestValidateNumericParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/things/:id", ValidateNumericParam("id"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := performRequest(router, http.MethodGet, "/things/42", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = performRequest(router, http.MethodGet, "/things/forty-two", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "rest_invalid_param")
}

func TestValidateEmailParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/orders/:email", ValidateEmailParam("email"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := performRequest(router, http.MethodGet, "/orders/c@portal.test", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = performRequest(router, http.MethodGet, "/orders/not-an-email", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "rest_invalid_param")
}
