package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cleaningmadeasy/laundry-api/config"
	"github.com/cleaningmadeasy/laundry-api/models"
	"github.com/cleaningmadeasy/laundry-api/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest represents the request body for creating an invoice.
// Items and total are optional; omitted items are derived from the order
// and an omitted total defaults to the item sum.
type CreateInvoiceRequest struct {
	OrderID string              `json:"order_id" binding:"required"`
	Items   models.InvoiceItems `json:"items"`
	Total   *decimal.Decimal    `json:"total"`
}

// newInvoiceService wires the invoice service from the application globals
func newInvoiceService() *services.InvoiceService {
	cfg := config.GetConfig()
	return services.NewInvoiceService(config.GetDB(), services.NewMailer(cfg), cfg)
}

// invoiceIDParam parses the numeric invoice identifier from the URL
func invoiceIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Invoice ID must be a number",
			},
		})
		return 0, false
	}
	return uint(id), true
}

// CreateInvoice handles POST /api/v1/invoices - creates and dispatches an
// invoice for an order (admin only)
func CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	invoice, err := newInvoiceService().Create(services.CreateInvoiceInput{
		OrderID: req.OrderID,
		Items:   req.Items,
		Total:   req.Total,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ORDER_NOT_FOUND",
					"message": "Order not found",
				},
			})
		case errors.Is(err, services.ErrTotalMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "TOTAL_MISMATCH",
					"message": "Invoice total does not match the sum of item subtotals",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to create invoice",
				},
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    invoice,
	})
}

// ListInvoices handles GET /api/v1/invoices - lists invoices, newest first (admin only)
func ListInvoices(c *gin.Context) {
	invoices, err := newInvoiceService().List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch invoices",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invoices,
	})
}

// MarkInvoiceEmailSent handles PUT /api/v1/invoices/:id/email (admin only)
func MarkInvoiceEmailSent(c *gin.Context) {
	markInvoiceSent(c, services.ChannelEmail)
}

// MarkInvoiceWhatsappSent handles PUT /api/v1/invoices/:id/whatsapp (admin only)
func MarkInvoiceWhatsappSent(c *gin.Context) {
	markInvoiceSent(c, services.ChannelWhatsapp)
}

func markInvoiceSent(c *gin.Context, channel string) {
	id, ok := invoiceIDParam(c)
	if !ok {
		return
	}

	invoice, err := newInvoiceService().MarkSent(id, channel)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVOICE_NOT_FOUND",
					"message": "Invoice not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update invoice",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invoice,
	})
}

// GetInvoiceWhatsAppLink handles GET /api/v1/invoices/:id/whatsapp-link -
// returns the wa.me deep link carrying the invoice message (admin only)
func GetInvoiceWhatsAppLink(c *gin.Context) {
	id, ok := invoiceIDParam(c)
	if !ok {
		return
	}

	link, err := newInvoiceService().WhatsAppLink(id)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVOICE_NOT_FOUND",
					"message": "Invoice not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to build WhatsApp link",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"url": link,
		},
	})
}
