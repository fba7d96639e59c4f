package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edmundcwm/nerbcrmwp/src/apierror"
	"github.com/edmundcwm/nerbcrmwp/src/audit"
	"github.com/edmundcwm/nerbcrmwp/src/database"
	"github.com/edmundcwm/nerbcrmwp/src/model"
)

func setupSiteService(t *testing.T) (SiteService, uint) {
	t.Helper()
	db := database.SetupTestDB(t)

	site := model.LinkedSite{Title: "Storefront", URL: "https://store.portal.test"}
	if err := db.Create(&site).Error; err != nil {
		t.Fatalf("Failed to seed site: %v", err)
	}

	return NewSiteService(NewSiteRepository(db), audit.NopRecorder{}), site.ID
}

func TestAllSites(t *testing.T) {
	service, _ := setupSiteService(t)

	views, err := service.AllSites()
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "Storefront", views[0].Title)
	assert.Equal(t, "https://store.portal.test", views[0].URL)
}

func TestUpdateURLAcceptsHttpsOnly(t *testing.T) {
	service, siteID := setupSiteService(t)

	var validation *apierror.ValidationError
	for _, rawURL := range []string{"http://store.portal.test", "ftp://x", "not a url", "https://"} {
		_, err := service.UpdateURL("m@portal.test", siteID, rawURL)
		assert.ErrorAsf(t, err, &validation, "url %q should be rejected", rawURL)
	}

	view, err := service.UpdateURL("m@portal.test", siteID, "https://new.portal.test")
	assert.NoError(t, err)
	assert.Equal(t, "https://new.portal.test", view.URL)

	views, err := service.AllSites()
	assert.NoError(t, err)
	assert.Equal(t, "https://new.portal.test", views[0].URL)
}

func TestUpdateURLUnknownSite(t *testing.T) {
	service, _ := setupSiteService(t)

	_, err := service.UpdateURL("m@portal.test", 999, "https://ok.portal.test")
	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "unknown_site", validation.Code)
}
