package orders

// CategoryResolver maps human category names to stable term ids and keeps the
// category meta of a record in step with its assigned terms.
type CategoryResolver struct {
	repository OrderRepository
}

func NewCategoryResolver(repository OrderRepository) *CategoryResolver {
	return &CategoryResolver{repository: repository}
}

// ResolveCategoryIDs looks each name up in the order-category taxonomy. Names
// without a matching term are skipped silently, so the result may be shorter
// than the input. Output order follows input order.
func (cr *CategoryResolver) ResolveCategoryIDs(names []string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	for _, name := range names {
		category, err := cr.repository.FindCategoryByName(name)
		if err != nil {
			return nil, err
		}
		if category == nil {
			continue
		}
		ids = append(ids, category.ID)
	}
	return ids, nil
}

// SyncCategoryMeta rewrites the order's category meta from its currently
// assigned terms.
func (cr *CategoryResolver) SyncCategoryMeta(orderID uint) error {
	slugs, err := cr.repository.CategorySlugs(orderID)
	if err != nil {
		return err
	}
	return cr.repository.SetMeta(orderID, metaKeyCategory, slugs)
}
