package handlers

import (
	"errors"
	"log"
	"net/http"
	"restaurant_menu/internal/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	orderingService services.OrderingService
}

func NewMenuHandler(orderingService services.OrderingService) *MenuHandler {
	return &MenuHandler{orderingService: orderingService}
}

// GetMenu serves the diner-facing menu for a table code.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	code := c.Param("code")

	categories, err := h.orderingService.GetMenu(code)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid or inactive table."})
			return
		}
		log.Printf("Error loading menu for table %q: %v", code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tableCode":  code,
		"categories": categories,
	})
}

type placeOrderRequest struct {
	TableCode string              `json:"tableCode"`
	Items     []services.CartLine `json:"items"`
}

// PlaceOrder accepts the cart, places the order and redirects to the
// thank-you page.
func (h *MenuHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid order payload.")
		return
	}
	if req.TableCode == "" {
		c.String(http.StatusBadRequest, "Invalid table code.")
		return
	}

	orderID, err := h.orderingService.PlaceOrder(req.TableCode, req.Items)
	if err != nil {
		log.Printf("Error placing order for table %q: %v", req.TableCode, err)
		switch {
		case errors.Is(err, services.ErrValidation):
			c.String(http.StatusBadRequest, "No items selected for order.")
		case errors.Is(err, services.ErrNotFound):
			c.String(http.StatusNotFound, "Invalid or inactive table.")
		default:
			c.String(http.StatusInternalServerError, "An error occurred while placing your order. Please try again.")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/menu/thankyou?orderId="+strconv.FormatUint(uint64(orderID), 10))
}

func (h *MenuHandler) ThankYou(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you! Your order has been received.",
		"orderId": c.Query("orderId"),
	})
}
