package orders

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/src/model"
)

// Meta keys under which the non-scalar order attributes live. Legal-counsel
// fields are namespaced with the lc_ prefix and stored verbatim.
const (
	metaKeyDate        = "order_date"
	metaKeyAmount      = "order_amount"
	metaKeyCategory    = "order_category"
	metaKeyEmail       = "order_email"
	metaKeyAttachments = "order_attachments"

	legalCounselPrefix = "lc_"
)

// ErrInvalidRecordID is returned when a category assignment is attempted
// against a record id of zero.
var ErrInvalidRecordID = errors.New("record id is not a positive integer")

type OrderRepository interface {
	Insert(order *model.Order) error
	ListAll() ([]model.Order, error)
	ListByEmail(email, categorySlug string) ([]model.Order, error)
	GetMeta(orderID uint, key string, out interface{}) (bool, error)
	SetMeta(orderID uint, key string, value interface{}) error
	MetaWithPrefix(orderID uint, prefix string) (map[string]interface{}, error)
	FindCategoryByName(name string) (*model.OrderCategory, error)
	AssignCategories(orderID uint, categoryIDs []uint) ([]uint, error)
	CategorySlugs(orderID uint) ([]string, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Insert(order *model.Order) error {
	result := r.db.Create(order)
	return result.Error
}

func (r *orderRepository) ListAll() ([]model.Order, error) {
	var records []model.Order
	result := r.db.Order("created_at DESC").Find(&records)
	return records, result.Error
}

func (r *orderRepository) ListByEmail(email, categorySlug string) ([]model.Order, error) {
	encoded, err := json.Marshal(email)
	if err != nil {
		return nil, err
	}

	query := r.db.Where(
		"id IN (?)",
		r.db.Model(&model.OrderMeta{}).
			Select("order_id").
			Where("meta_key = ? AND meta_value = ?", metaKeyEmail, string(encoded)),
	)

	if categorySlug != "" {
		query = query.Where(
			"id IN (?)",
			r.db.Model(&model.OrderCategoryAssignment{}).
				Select("order_category_assignments.order_id").
				Joins("JOIN order_categories ON order_categories.id = order_category_assignments.category_id").
				Where("order_categories.slug = ?", categorySlug),
		)
	}

	var records []model.Order
	result := query.Order("created_at DESC").Find(&records)
	return records, result.Error
}

// GetMeta decodes the JSON-encoded meta value into out. The boolean reports
// whether the key exists at all.
func (r *orderRepository) GetMeta(orderID uint, key string, out interface{}) (bool, error) {
	var meta model.OrderMeta
	result := r.db.Where("order_id = ? AND meta_key = ?", orderID, key).First(&meta)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if result.Error != nil {
		return false, result.Error
	}

	if err := json.Unmarshal([]byte(meta.MetaValue), out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *orderRepository) SetMeta(orderID uint, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	meta := model.OrderMeta{OrderID: orderID, MetaKey: key}
	result := r.db.
		Where("order_id = ? AND meta_key = ?", orderID, key).
		Assign(model.OrderMeta{MetaValue: string(encoded)}).
		FirstOrCreate(&meta)
	return result.Error
}

// MetaWithPrefix returns every meta entry under the prefix, keys stripped of
// the prefix and values JSON-decoded.
func (r *orderRepository) MetaWithPrefix(orderID uint, prefix string) (map[string]interface{}, error) {
	var metas []model.OrderMeta
	result := r.db.Where("order_id = ? AND meta_key LIKE ?", orderID, prefix+"%").Find(&metas)
	if result.Error != nil {
		return nil, result.Error
	}

	values := make(map[string]interface{}, len(metas))
	for _, meta := range metas {
		var value interface{}
		if err := json.Unmarshal([]byte(meta.MetaValue), &value); err != nil {
			return nil, err
		}
		values[strings.TrimPrefix(meta.MetaKey, prefix)] = value
	}
	return values, nil
}

// FindCategoryByName returns nil without error when no term carries the name.
func (r *orderRepository) FindCategoryByName(name string) (*model.OrderCategory, error) {
	var category model.OrderCategory
	result := r.db.Where("name = ?", name).First(&category)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

// AssignCategories tags the order with every category id that actually exists
// and returns the ids it assigned. Unknown ids are skipped, so the returned
// list may be empty.
func (r *orderRepository) AssignCategories(orderID uint, categoryIDs []uint) ([]uint, error) {
	if orderID == 0 {
		return nil, ErrInvalidRecordID
	}

	assigned := make([]uint, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		var category model.OrderCategory
		result := r.db.First(&category, categoryID)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			continue
		}
		if result.Error != nil {
			return nil, result.Error
		}

		assignment := model.OrderCategoryAssignment{OrderID: orderID, CategoryID: categoryID}
		result = r.db.
			Where("order_id = ? AND category_id = ?", orderID, categoryID).
			FirstOrCreate(&assignment)
		if result.Error != nil {
			return nil, result.Error
		}
		assigned = append(assigned, categoryID)
	}
	return assigned, nil
}

func (r *orderRepository) CategorySlugs(orderID uint) ([]string, error) {
	var slugs []string
	result := r.db.Model(&model.OrderCategoryAssignment{}).
		Select("order_categories.slug").
		Joins("JOIN order_categories ON order_categories.id = order_category_assignments.category_id").
		Where("order_category_assignments.order_id = ?", orderID).
		Scan(&slugs)
	return slugs, result.Error
}
