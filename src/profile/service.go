package profile

import (
	"fmt"

	"github.com/edmundcwm/nerbcrmwp/src/apierror"
	"github.com/edmundcwm/nerbcrmwp/src/audit"
)

// editableFields is the allow-list for profile updates. Everything else,
// designation included, is read-only through this surface.
var editableFields = map[string]struct{}{
	"shareholders": {},
}

type ProfileSummary struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
	Designation string `json:"designation"`
}

// ShareholdersView is the single-profile read shape. The handler wraps it in
// a one-element array.
type ShareholdersView struct {
	Shareholders []Shareholder `json:"shareholders"`
}

type ProfileService interface {
	AllProfiles() ([]ProfileSummary, error)
	Shareholders(userID uint) (ShareholdersView, error)
	UpdateProfile(actor string, userID uint, fields map[string]interface{}) (string, error)
}

type profileService struct {
	repository ProfileRepository
	recorder   audit.Recorder
}

func NewProfileService(repository ProfileRepository, recorder audit.Recorder) ProfileService {
	return &profileService{repository: repository, recorder: recorder}
}

func (s *profileService) AllProfiles() ([]ProfileSummary, error) {
	customers, err := s.repository.ListCustomers()
	if err != nil {
		return nil, apierror.NewStore(err)
	}

	summaries := make([]ProfileSummary, 0, len(customers))
	for _, customer := range customers {
		summary := ProfileSummary{
			ID:        customer.ID,
			FirstName: customer.FirstName,
			LastName:  customer.LastName,
			Email:     customer.Email,
		}
		if _, err := s.repository.GetUserMeta(customer.ID, metaKeyCompanyName, &summary.CompanyName); err != nil {
			return nil, apierror.NewStore(err)
		}
		if _, err := s.repository.GetUserMeta(customer.ID, metaKeyDesignation, &summary.Designation); err != nil {
			return nil, apierror.NewStore(err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *profileService) Shareholders(userID uint) (ShareholdersView, error) {
	view := ShareholdersView{Shareholders: []Shareholder{}}
	if _, err := s.repository.GetUserMeta(userID, metaKeyShareholders, &view.Shareholders); err != nil {
		return ShareholdersView{}, apierror.NewStore(err)
	}
	return view, nil
}

// UpdateProfile applies the submitted fields all-or-nothing: every key is
// checked against the allow-list before anything is written.
func (s *profileService) UpdateProfile(actor string, userID uint, fields map[string]interface{}) (string, error) {
	if len(fields) == 0 {
		return "", apierror.NewValidation("no_data", "no data")
	}
	if userID == 0 {
		return "", apierror.NewValidation("missing_id", "missing id")
	}

	for key := range fields {
		if _, ok := editableFields[key]; !ok {
			return "", apierror.NewValidation("invalid_key", "invalid key")
		}
	}

	raw, _ := fields["shareholders"].([]interface{})
	sanitized := sanitizeShareholders(raw)
	if err := s.repository.SetUserMeta(userID, metaKeyShareholders, sanitized); err != nil {
		return "", apierror.NewStore(err)
	}

	s.recorder.Record(actor, "profile.update", fmt.Sprintf("user:%d", userID))
	return "success", nil
}
