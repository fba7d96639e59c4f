package orders

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
	"github.com/edmundcwm/nerbcrmwp/src/apierror"
	"github.com/edmundcwm/nerbcrmwp/src/audit"
	"github.com/edmundcwm/nerbcrmwp/src/database"
	"github.com/edmundcwm/nerbcrmwp/src/model"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{{Key: "service", Value: "orders-test"}},
	})
	os.Exit(m.Run())
}

// memEventSink records outbox writes without a broker.
type memEventSink struct {
	events []uint
}

func (s *memEventSink) NewEvent(orderID uint, payload string) error {
	s.events = append(s.events, orderID)
	return nil
}

func setupOrderService(t *testing.T) (OrderService, OrderRepository, *memEventSink, *gorm.DB) {
	t.Helper()
	db := database.SetupTestDB(t)
	repository := NewOrderRepository(db)
	resolver := NewCategoryResolver(repository)
	sink := &memEventSink{}
	service := NewOrderService(repository, resolver, sink, audit.NopRecorder{})
	return service, repository, sink, db
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) model.OrderCategory {
	t.Helper()
	category := model.OrderCategory{Name: name, Slug: slug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	return category
}

func TestCreateOrderWithoutCategories(t *testing.T) {
	service, repository, sink, _ := setupOrderService(t)

	result := service.CreateOrder("m@portal.test", CreateOrderInput{
		Title:  "Incorporation package",
		Date:   "2026-08-01",
		Amount: "1200.00",
		Email:  "c@portal.test",
	})
	assert.Equal(t, ResultNoCategories, result)
	assert.Len(t, sink.events, 1)

	records, err := repository.ListAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "published", records[0].Status)

	var email string
	found, err := repository.GetMeta(records[0].ID, metaKeyEmail, &email)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "c@portal.test", email)
}

func TestCreateOrderWithUnknownCategories(t *testing.T) {
	service, _, _, _ := setupOrderService(t)

	result := service.CreateOrder("m@portal.test", CreateOrderInput{
		Title:      "Order",
		Categories: []string{"No Such Category"},
		Email:      "c@portal.test",
	})
	assert.Equal(t, ResultCategoriesMissing, result)
}

func TestCreateOrderTagsExistingCategories(t *testing.T) {
	service, repository, _, db := setupOrderService(t)
	seedCategory(t, db, "Incorporation", "incorporation")

	result := service.CreateOrder("m@portal.test", CreateOrderInput{
		Title:      "Order",
		Categories: []string{"Incorporation", "Missing One"},
		Email:      "c@portal.test",
	})
	assert.Equal(t, ResultSuccess, result)

	records, err := repository.ListAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	slugs, err := repository.CategorySlugs(records[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"incorporation"}, slugs)

	var metaSlugs []string
	found, err := repository.GetMeta(records[0].ID, metaKeyCategory, &metaSlugs)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"incorporation"}, metaSlugs)
}

func TestResolveCategoryIDsSkipsMissingNames(t *testing.T) {
	_, repository, _, db := setupOrderService(t)
	existing := seedCategory(t, db, "existing", "existing")

	resolver := NewCategoryResolver(repository)
	ids, err := resolver.ResolveCategoryIDs([]string{"existing", "missing"})
	assert.NoError(t, err)
	assert.Equal(t, []uint{existing.ID}, ids)
}

func TestAssignCategoriesRejectsZeroRecordID(t *testing.T) {
	_, repository, _, _ := setupOrderService(t)

	_, err := repository.AssignCategories(0, []uint{1})
	assert.ErrorIs(t, err, ErrInvalidRecordID)
}

func TestUpdateOrderRequiresOrderID(t *testing.T) {
	service, _, _, _ := setupOrderService(t)

	_, err := service.UpdateOrder("c@portal.test", UpdateOrderInput{})
	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "missing order id", validation.Message)
}

func TestUpdateOrderWritesLegalCounselFieldsVerbatim(t *testing.T) {
	service, repository, _, _ := setupOrderService(t)
	orderID := createOrder(t, service, repository)

	_, err := service.UpdateOrder("c@portal.test", UpdateOrderInput{
		OrderID: orderID,
		LegalCounsel: map[string]interface{}{
			"company_uen":  "201912345K",
			"submitted_on": float64(1722470400000),
		},
	})
	assert.NoError(t, err)

	var uen string
	found, err := repository.GetMeta(orderID, "lc_company_uen", &uen)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "201912345K", uen)
}

func TestUpdateOrderRemovalShortCircuitsNewAttachments(t *testing.T) {
	service, repository, _, _ := setupOrderService(t)
	orderID := createOrder(t, service, repository)

	current := []Attachment{
		{"file_name": "a.pdf", "file_url": "https://cdn.portal.test/a.pdf"},
		{"file_name": "b.png", "file_url": "https://cdn.portal.test/b.png"},
	}
	assert.NoError(t, repository.SetMeta(orderID, metaKeyAttachments, current))

	updated, err := service.UpdateOrder("c@portal.test", UpdateOrderInput{
		OrderID:            orderID,
		AttachmentToRemove: Attachment{"file_name": "a.pdf"},
		NewAttachments: []Attachment{
			{"file_name": "c.png", "file_url": "https://cdn.portal.test/c.png"},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, updated, 1)
	assert.Equal(t, "b.png", updated[0].FileName())

	var stored []Attachment
	_, err = repository.GetMeta(orderID, metaKeyAttachments, &stored)
	assert.NoError(t, err)
	assert.Len(t, stored, 1, "new attachments must not be applied in a removal call")
}

func TestUpdateOrderUnmatchedRemovalFallsThroughToAppend(t *testing.T) {
	service, repository, _, _ := setupOrderService(t)
	orderID := createOrder(t, service, repository)

	updated, err := service.UpdateOrder("c@portal.test", UpdateOrderInput{
		OrderID:            orderID,
		AttachmentToRemove: Attachment{"file_name": "no-such.pdf"},
		NewAttachments: []Attachment{
			{"file_name": "c.png", "file_url": "https://cdn.portal.test/c.png"},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, updated, 1)
	assert.Equal(t, "c.png", updated[0].FileName())
}

func TestUpdateOrderRejectsDisallowedExtensions(t *testing.T) {
	service, repository, _, _ := setupOrderService(t)
	orderID := createOrder(t, service, repository)

	_, err := service.UpdateOrder("c@portal.test", UpdateOrderInput{
		OrderID: orderID,
		NewAttachments: []Attachment{
			{"file_name": "ok.pdf", "file_url": "https://cdn.portal.test/ok.pdf"},
			{"file_name": "bad.exe", "file_url": "https://cdn.portal.test/bad.exe"},
		},
	})
	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "invalid format", validation.Message)

	var stored []Attachment
	found, err := repository.GetMeta(orderID, metaKeyAttachments, &stored)
	assert.NoError(t, err)
	assert.False(t, found, "a rejected batch must not write anything")
}

func TestUpdateOrderExtensionCheckIsCaseSensitive(t *testing.T) {
	service, _, _, _ := setupOrderService(t)
	orderID := createOrder(t, service, nil)

	_, err := service.UpdateOrder("c@portal.test", UpdateOrderInput{
		OrderID: orderID,
		NewAttachments: []Attachment{
			{"file_name": "shout.PDF", "file_url": "https://cdn.portal.test/shout.PDF"},
		},
	})
	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestUpdateOrderMergesNewAttachments(t *testing.T) {
	service, repository, _, _ := setupOrderService(t)
	orderID := createOrder(t, service, repository)

	existing := []Attachment{{"file_name": "a.pdf", "file_url": "https://cdn.portal.test/a.pdf"}}
	assert.NoError(t, repository.SetMeta(orderID, metaKeyAttachments, existing))

	updated, err := service.UpdateOrder("c@portal.test", UpdateOrderInput{
		OrderID: orderID,
		NewAttachments: []Attachment{
			{"file_name": "b.png", "file_url": "https://cdn.portal.test/b.png"},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, updated, 2)
	assert.Equal(t, "a.pdf", updated[0].FileName())
	assert.Equal(t, "b.png", updated[1].FileName())
}

func TestGetOrdersByEmailFiltersAndFormatsLegalCounsel(t *testing.T) {
	service, repository, _, db := setupOrderService(t)
	seedCategory(t, db, "Legal Counsel", "legal-counsel")

	result := service.CreateOrder("m@portal.test", CreateOrderInput{
		Title:      "Counsel engagement",
		Date:       "2026-08-01",
		Amount:     "800.00",
		Categories: []string{"Legal Counsel"},
		Email:      "c@portal.test",
	})
	assert.Equal(t, ResultSuccess, result)

	records, err := repository.ListAll()
	assert.NoError(t, err)
	orderID := records[0].ID

	// 2024-08-01 00:00:00 UTC in epoch millis.
	assert.NoError(t, repository.SetMeta(orderID, "lc_submitted_on", float64(1722470400000)))

	details, err := service.GetOrdersByEmail("c@portal.test", "legal-counsel")
	assert.NoError(t, err)
	assert.Len(t, details, 1)
	assert.Equal(t, "01-08-2024", details[0].LegalCounsel["submitted_on"])

	none, err := service.GetOrdersByEmail("c@portal.test", "incorporation")
	assert.NoError(t, err)
	assert.Empty(t, none)

	other, err := service.GetOrdersByEmail("other@portal.test", "")
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func createOrder(t *testing.T, service OrderService, repository OrderRepository) uint {
	t.Helper()
	result := service.CreateOrder("m@portal.test", CreateOrderInput{
		Title: "Order under test",
		Email: "c@portal.test",
	})
	if result != ResultNoCategories {
		t.Fatalf("Unexpected creation result: %s", result)
	}

	if repository == nil {
		return 1
	}
	records, err := repository.ListAll()
	if err != nil || len(records) == 0 {
		t.Fatalf("Failed to read back created order: %v", err)
	}
	return records[0].ID
}
