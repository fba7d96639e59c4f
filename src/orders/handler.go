package orders

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edmundcwm/nerbcrmwp/src/apierror"
	"github.com/edmundcwm/nerbcrmwp/src/auth"
)

type OrderHandler struct {
	service OrderService
}

func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// GetAllOrders godoc
// @Summary      List every portal order
// @Tags         Orders
// @Produce      json
// @Success      200  {array}  OrderSummary
// @Failure      403  {object}  map[string]string
// @Router       /v1/orders [get]
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	summaries, err := h.service.GetAllOrders()
	if err != nil {
		apierror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetCustomerOrders godoc
// @Summary      List one customer's orders with legal-counsel detail
// @Tags         Orders
// @Produce      json
// @Param        email  path   string  true   "customer email"
// @Param        cat    query  string  false  "filter by category slug"
// @Success      200  {array}  OrderDetail
// @Failure      403  {object}  map[string]string
// @Router       /v1/orders/{email} [get]
func (h *OrderHandler) GetCustomerOrders(c *gin.Context) {
	email := c.Param("email")
	categorySlug := c.Query("cat")

	details, err := h.service.GetOrdersByEmail(email, categorySlug)
	if err != nil {
		apierror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// CreateOrder godoc
// @Summary      Create a portal order
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        order  body  CreateOrderInput  true  "order fields"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierror.Write(c, apierror.NewValidation("invalid_body", "Request body must be a JSON order object."))
		return
	}

	identity, _ := auth.FromContext(c)
	result := h.service.CreateOrder(identity.Email, input)
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// UpdateCustomerOrders godoc
// @Summary      Update one order's legal-counsel fields and attachments
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        email   path  string            true  "customer email"
// @Param        update  body  UpdateOrderInput  true  "update fields"
// @Success      200  {array}  Attachment
// @Failure      400  {object}  map[string]string
// @Router       /v1/orders/{email} [put]
func (h *OrderHandler) UpdateCustomerOrders(c *gin.Context) {
	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierror.Write(c, apierror.NewValidation("invalid_body", "Request body must be a JSON update object."))
		return
	}

	identity, _ := auth.FromContext(c)
	attachments, err := h.service.UpdateOrder(identity.Email, input)
	if err != nil {
		apierror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}
