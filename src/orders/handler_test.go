package orders

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/edmundcwm/nerbcrmwp/src/auth"
)

type stubOrderService struct {
	createResult string
	lastActor    string
	lastInput    CreateOrderInput
	updateResult []Attachment
	updateErr    error
}

func (s *stubOrderService) GetAllOrders() ([]OrderSummary, error) {
	return []OrderSummary{{ID: 1, Title: "Order"}}, nil
}

func (s *stubOrderService) GetOrdersByEmail(email, categorySlug string) ([]OrderDetail, error) {
	return []OrderDetail{}, nil
}

func (s *stubOrderService) CreateOrder(actor string, input CreateOrderInput) string {
	s.lastActor = actor
	s.lastInput = input
	return s.createResult
}

func (s *stubOrderService) UpdateOrder(actor string, input UpdateOrderInput) ([]Attachment, error) {
	s.lastActor = actor
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updateResult, nil
}

func withIdentity(identity auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.WithIdentity(c, identity)
		c.Next()
	}
}

func TestCreateOrderReturnsResultToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubOrderService{createResult: ResultSuccess}
	handler := NewOrderHandler(stub)

	router := gin.New()
	router.POST("/orders", withIdentity(auth.Identity{ID: 1, Email: "m@portal.test"}), handler.CreateOrder)

	body := strings.NewReader(`{"title":"Order","date":"2026-08-01","amount":"100.00","category":["Incorporation"],"email":"c@portal.test"}`)
	request := httptest.NewRequest(http.MethodPost, "/orders", body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "m@portal.test", stub.lastActor)
	assert.Equal(t, []string{"Incorporation"}, stub.lastInput.Categories)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, ResultSuccess, payload["result"])
}

// Even a failed tagging outcome is delivered as a 200 with the message token.
func TestCreateOrderReportsBranchTokensWith200(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubOrderService{createResult: ResultNoCategories}
	handler := NewOrderHandler(stub)

	router := gin.New()
	router.POST("/orders", handler.CreateOrder)

	body := strings.NewReader(`{"title":"Order","email":"c@portal.test"}`)
	request := httptest.NewRequest(http.MethodPost, "/orders", body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), ResultNoCategories)
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewOrderHandler(&stubOrderService{})

	router := gin.New()
	router.POST("/orders", handler.CreateOrder)

	request := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateCustomerOrdersReturnsAttachmentList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubOrderService{updateResult: []Attachment{{"file_name": "b.png"}}}
	handler := NewOrderHandler(stub)

	router := gin.New()
	router.PUT("/orders/:email", withIdentity(auth.Identity{ID: 3, Email: "c@portal.test"}), handler.UpdateCustomerOrders)

	body := strings.NewReader(`{"id":7,"attachment_to_remove":{"file_name":"a.pdf"}}`)
	request := httptest.NewRequest(http.MethodPut, "/orders/c@portal.test", body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "c@portal.test", stub.lastActor)

	var payload []Attachment
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Len(t, payload, 1)
	assert.Equal(t, "b.png", payload[0].FileName())
}
