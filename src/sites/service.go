package sites

import (
	"fmt"
	"net/url"

	"github.com/edmundcwm/nerbcrmwp/src/apierror"
	"github.com/edmundcwm/nerbcrmwp/src/audit"
)

type SiteView struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type SiteService interface {
	AllSites() ([]SiteView, error)
	UpdateURL(actor string, siteID uint, rawURL string) (SiteView, error)
}

type siteService struct {
	repository SiteRepository
	recorder   audit.Recorder
}

func NewSiteService(repository SiteRepository, recorder audit.Recorder) SiteService {
	return &siteService{repository: repository, recorder: recorder}
}

func (s *siteService) AllSites() ([]SiteView, error) {
	records, err := s.repository.ListSites()
	if err != nil {
		return nil, apierror.NewStore(err)
	}

	views := make([]SiteView, 0, len(records))
	for _, record := range records {
		views = append(views, SiteView{ID: record.ID, Title: record.Title, URL: record.URL})
	}
	return views, nil
}

// UpdateURL accepts https URLs only.
func (s *siteService) UpdateURL(actor string, siteID uint, rawURL string) (SiteView, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
		return SiteView{}, apierror.NewValidation("invalid_url", "The url must be a valid https URL.")
	}

	site, err := s.repository.GetSite(siteID)
	if err != nil {
		return SiteView{}, apierror.NewStore(err)
	}
	if site == nil {
		return SiteView{}, apierror.NewValidation("unknown_site", "No linked site with that id.")
	}

	if err := s.repository.UpdateURL(siteID, rawURL); err != nil {
		return SiteView{}, apierror.NewStore(err)
	}

	s.recorder.Record(actor, "site.update_url", fmt.Sprintf("site:%d", siteID))
	return SiteView{ID: site.ID, Title: site.Title, URL: rawURL}, nil
}
