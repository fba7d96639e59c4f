package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
	"github.com/edmundcwm/nerbcrmwp/src/apierror"
	"github.com/edmundcwm/nerbcrmwp/src/audit"
	"github.com/edmundcwm/nerbcrmwp/src/model"
)

// Creation result tokens. Creation reports its outcome as a message string,
// never as a transport error; only "success" means the order was fully tagged.
const (
	ResultSuccess           = "success"
	ResultNoCategories      = "created but no categories tagged"
	ResultInvalidRecordID   = "post id is not an integer"
	ResultCategoriesMissing = "created but categories do not exist"
)

// allowedAttachmentExtensions is compared exact-case: "PDF" is rejected.
var allowedAttachmentExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"pdf":  {},
	"doc":  {},
	"docx": {},
}

// Attachment keeps whatever fields the caller submitted; only file_name and
// file_url carry semantics here.
type Attachment map[string]interface{}

func (a Attachment) FileName() string {
	name, _ := a["file_name"].(string)
	return name
}

func (a Attachment) FileURL() string {
	url, _ := a["file_url"].(string)
	return url
}

type OrderSummary struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Date          string       `json:"date"`
	Amount        string       `json:"amount"`
	Category      []string     `json:"category"`
	Attachment    []Attachment `json:"attachment"`
	CustomerEmail string       `json:"customer_email"`
}

type OrderDetail struct {
	OrderSummary
	LegalCounsel map[string]interface{} `json:"legal_counsel"`
}

type CreateOrderInput struct {
	Title      string   `json:"title"`
	Date       string   `json:"date"`
	Amount     string   `json:"amount"`
	Categories []string `json:"category"`
	Email      string   `json:"email"`
}

type UpdateOrderInput struct {
	OrderID            uint                   `json:"id"`
	LegalCounsel       map[string]interface{} `json:"legal_counsel"`
	AttachmentToRemove Attachment             `json:"attachment_to_remove"`
	NewAttachments     []Attachment           `json:"attachments"`
}

// OrderEventSink receives a record of each created order for asynchronous
// publication. The outbox repository satisfies this.
type OrderEventSink interface {
	NewEvent(orderID uint, payload string) error
}

type OrderService interface {
	GetAllOrders() ([]OrderSummary, error)
	GetOrdersByEmail(email, categorySlug string) ([]OrderDetail, error)
	CreateOrder(actor string, input CreateOrderInput) string
	UpdateOrder(actor string, input UpdateOrderInput) ([]Attachment, error)
}

type orderService struct {
	repository OrderRepository
	resolver   *CategoryResolver
	events     OrderEventSink
	recorder   audit.Recorder
}

func NewOrderService(repository OrderRepository, resolver *CategoryResolver, events OrderEventSink, recorder audit.Recorder) OrderService {
	return &orderService{
		repository: repository,
		resolver:   resolver,
		events:     events,
		recorder:   recorder,
	}
}

func (s *orderService) GetAllOrders() ([]OrderSummary, error) {
	records, err := s.repository.ListAll()
	if err != nil {
		return nil, apierror.NewStore(err)
	}

	summaries := make([]OrderSummary, 0, len(records))
	for _, record := range records {
		summary, err := s.buildSummary(record)
		if err != nil {
			return nil, apierror.NewStore(err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *orderService) GetOrdersByEmail(email, categorySlug string) ([]OrderDetail, error) {
	records, err := s.repository.ListByEmail(email, categorySlug)
	if err != nil {
		return nil, apierror.NewStore(err)
	}

	details := make([]OrderDetail, 0, len(records))
	for _, record := range records {
		summary, err := s.buildSummary(record)
		if err != nil {
			return nil, apierror.NewStore(err)
		}

		legalCounsel, err := s.repository.MetaWithPrefix(record.ID, legalCounselPrefix)
		if err != nil {
			return nil, apierror.NewStore(err)
		}
		if raw, ok := legalCounsel["submitted_on"]; ok {
			legalCounsel["submitted_on"] = formatSubmittedOn(raw)
		}

		details = append(details, OrderDetail{OrderSummary: summary, LegalCounsel: legalCounsel})
	}
	return details, nil
}

// CreateOrder inserts the order and reports the outcome as a message string.
// Store failures surface as the store's own message, not as an error value.
func (s *orderService) CreateOrder(actor string, input CreateOrderInput) string {
	order := model.Order{Title: input.Title, Status: "published"}
	if err := s.repository.Insert(&order); err != nil {
		return err.Error()
	}

	scalars := map[string]interface{}{
		metaKeyDate:   input.Date,
		metaKeyAmount: input.Amount,
		metaKeyEmail:  input.Email,
	}
	for key, value := range scalars {
		if err := s.repository.SetMeta(order.ID, key, value); err != nil {
			return err.Error()
		}
	}

	s.emitOrderEvent(order, input.Email)
	s.recorder.Record(actor, "order.create", fmt.Sprintf("order:%d", order.ID))

	if len(input.Categories) == 0 {
		if err := s.repository.SetMeta(order.ID, metaKeyCategory, []string{}); err != nil {
			return err.Error()
		}
		return ResultNoCategories
	}

	categoryIDs, err := s.resolver.ResolveCategoryIDs(input.Categories)
	if err != nil {
		return err.Error()
	}

	assigned, err := s.repository.AssignCategories(order.ID, categoryIDs)
	if errors.Is(err, ErrInvalidRecordID) {
		return ResultInvalidRecordID
	}
	if err != nil {
		return err.Error()
	}
	if len(assigned) == 0 {
		return ResultCategoriesMissing
	}

	if err := s.resolver.SyncCategoryMeta(order.ID); err != nil {
		return err.Error()
	}
	return ResultSuccess
}

// UpdateOrder applies legal-counsel writes, then either removes one
// attachment or appends validated new ones. A matched removal returns the
// compacted list immediately without touching the new attachments.
func (s *orderService) UpdateOrder(actor string, input UpdateOrderInput) ([]Attachment, error) {
	if input.OrderID == 0 {
		return nil, apierror.NewValidation("missing_order_id", "missing order id")
	}

	for key, value := range input.LegalCounsel {
		if err := s.repository.SetMeta(input.OrderID, legalCounselPrefix+key, value); err != nil {
			return nil, apierror.NewStore(err)
		}
	}

	var current []Attachment
	if _, err := s.repository.GetMeta(input.OrderID, metaKeyAttachments, &current); err != nil {
		return nil, apierror.NewStore(err)
	}

	if input.AttachmentToRemove != nil {
		target := input.AttachmentToRemove.FileName()
		for i, attachment := range current {
			if attachment.FileName() != target {
				continue
			}

			compacted := make([]Attachment, 0, len(current)-1)
			compacted = append(compacted, current[:i]...)
			compacted = append(compacted, current[i+1:]...)
			if err := s.persistAttachments(actor, input.OrderID, compacted); err != nil {
				return nil, err
			}
			return compacted, nil
		}
		// No match falls through to the new-attachment handling.
	}

	if len(input.NewAttachments) > 0 {
		for _, attachment := range input.NewAttachments {
			if !hasAllowedExtension(attachment.FileURL()) {
				return nil, apierror.NewValidation("invalid_format", "invalid format")
			}
		}
		current = append(current, input.NewAttachments...)
		if err := s.persistAttachments(actor, input.OrderID, current); err != nil {
			return nil, err
		}
		return current, nil
	}

	if err := s.resolver.SyncCategoryMeta(input.OrderID); err != nil {
		return nil, apierror.NewStore(err)
	}
	s.recorder.Record(actor, "order.update", fmt.Sprintf("order:%d", input.OrderID))
	return current, nil
}

func (s *orderService) persistAttachments(actor string, orderID uint, attachments []Attachment) error {
	if err := s.repository.SetMeta(orderID, metaKeyAttachments, attachments); err != nil {
		return apierror.NewStore(err)
	}
	if err := s.resolver.SyncCategoryMeta(orderID); err != nil {
		return apierror.NewStore(err)
	}
	s.recorder.Record(actor, "order.update", fmt.Sprintf("order:%d", orderID))
	return nil
}

func (s *orderService) buildSummary(record model.Order) (OrderSummary, error) {
	summary := OrderSummary{
		ID:         record.ID,
		Title:      record.Title,
		Category:   []string{},
		Attachment: []Attachment{},
	}

	reads := []struct {
		key string
		out interface{}
	}{
		{metaKeyDate, &summary.Date},
		{metaKeyAmount, &summary.Amount},
		{metaKeyCategory, &summary.Category},
		{metaKeyAttachments, &summary.Attachment},
		{metaKeyEmail, &summary.CustomerEmail},
	}
	for _, read := range reads {
		if _, err := s.repository.GetMeta(record.ID, read.key, read.out); err != nil {
			return OrderSummary{}, err
		}
	}
	return summary, nil
}

func (s *orderService) emitOrderEvent(order model.Order, email string) {
	payload, err := json.Marshal(map[string]interface{}{
		"order_id": order.ID,
		"title":    order.Title,
		"email":    email,
	})
	if err != nil {
		logger.Default().Errorf(err, "Failed to encode order event payload")
		return
	}
	if err := s.events.NewEvent(order.ID, string(payload)); err != nil {
		logger.Default().Errorf(err, "Failed to enqueue order event")
	}
}

func hasAllowedExtension(fileURL string) bool {
	dot := strings.LastIndex(fileURL, ".")
	if dot < 0 || dot == len(fileURL)-1 {
		return false
	}
	_, ok := allowedAttachmentExtensions[fileURL[dot+1:]]
	return ok
}

// formatSubmittedOn renders an epoch-milliseconds value as dd-mm-yyyy. Values
// that cannot be read as millis are passed through untouched.
func formatSubmittedOn(raw interface{}) interface{} {
	var millis int64
	switch v := raw.(type) {
	case float64:
		millis = int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return raw
		}
		millis = parsed
	default:
		return raw
	}
	return time.UnixMilli(millis).UTC().Format("02-01-2006")
}
