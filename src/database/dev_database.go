package database

import (
	"github.com/google/uuid"

	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
	"github.com/edmundcwm/nerbcrmwp/src/model"
)

// InitializeDatabaseForDev seeds a manager, a customer, a couple of order
// categories and a linked site so the API is explorable right after boot.
// Everything is FirstOrCreate so reboots are harmless.
func InitializeDatabaseForDev() error {
	db := GetDatabaseConnection()
	devLogger := logger.Default()

	manager := model.User{
		Email:     "manager@portal.test",
		FirstName: "Portal",
		LastName:  "Manager",
		ApiToken:  uuid.NewString(),
	}
	manager.SetRoleNames([]string{"portal_manager"})
	if err := db.Where(model.User{Email: manager.Email}).FirstOrCreate(&manager).Error; err != nil {
		devLogger.Error(err, "Error inserting dev manager")
		return err
	}

	customer := model.User{
		Email:     "customer@portal.test",
		FirstName: "Portal",
		LastName:  "Customer",
		ApiToken:  uuid.NewString(),
	}
	customer.SetRoleNames([]string{"portal_customer"})
	if err := db.Where(model.User{Email: customer.Email}).FirstOrCreate(&customer).Error; err != nil {
		devLogger.Error(err, "Error inserting dev customer")
		return err
	}

	categories := []model.OrderCategory{
		{Name: "Incorporation", Slug: "incorporation"},
		{Name: "Legal Counsel", Slug: "legal-counsel"},
	}
	for i := range categories {
		if err := db.Where(model.OrderCategory{Slug: categories[i].Slug}).FirstOrCreate(&categories[i]).Error; err != nil {
			devLogger.Error(err, "Error inserting dev category")
			return err
		}
	}

	site := model.LinkedSite{Title: "Main Storefront", URL: "https://store.portal.test"}
	if err := db.Where(model.LinkedSite{Title: site.Title}).FirstOrCreate(&site).Error; err != nil {
		devLogger.Error(err, "Error inserting dev linked site")
		return err
	}

	devLogger.Infof("Dev manager token: %s", manager.ApiToken)
	devLogger.Infof("Dev customer token: %s", customer.ApiToken)
	return nil
}
