package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateInvoice(t *testing.T) {
	tests := []struct {
		name           string
		body           func(orderID string) map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "Derive items from quick order",
			body: func(orderID string) map[string]interface{} {
				return map[string]interface{}{"order_id": orderID}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				items := data["items"].([]interface{})
				assert.Len(t, items, 1)
				first := items[0].(map[string]interface{})
				assert.Equal(t, "Garments", first["name"])
				assert.Equal(t, float64(15), first["quantity"])
				assert.Equal(t, "4500", data["total_amount"])
			},
		},
		{
			name: "Explicit items with matching total",
			body: func(orderID string) map[string]interface{} {
				return map[string]interface{}{
					"order_id": orderID,
					"items": []map[string]interface{}{
						{"name": "Jeans", "price": 500, "quantity": 2, "subtotal": 1000},
					},
					"total": 1000,
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "1000", data["total_amount"])
			},
		},
		{
			name: "Reject mismatched total",
			body: func(orderID string) map[string]interface{} {
				return map[string]interface{}{
					"order_id": orderID,
					"items": []map[string]interface{}{
						{"name": "Jeans", "price": 500, "quantity": 2, "subtotal": 1000},
					},
					"total": 1500,
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "TOTAL_MISMATCH",
		},
		{
			name: "Unknown order",
			body: func(string) map[string]interface{} {
				return map[string]interface{}{"order_id": "ORD-0000"}
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "ORDER_NOT_FOUND",
		},
		{
			name: "Missing order id",
			body: func(string) map[string]interface{} {
				return map[string]interface{}{}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupControllerTestDB(t)
			orderID := submitOrderForTest(t, validQuickOrderBody())

			router := setupTestRouter()
			router.POST("/invoices", mockAdminMiddleware("admin"), CreateInvoice)

			w := performJSON(router, http.MethodPost, "/invoices", tt.body(orderID))

			assert.Equal(t, tt.expectedStatus, w.Code, "Response body: %s", w.Body.String())

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			if tt.expectedError != "" {
				assert.False(t, response["success"].(bool))
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func createInvoiceForTest(t *testing.T, orderID string) uint {
	t.Helper()
	router := setupTestRouter()
	router.POST("/invoices", mockAdminMiddleware("admin"), CreateInvoice)

	w := performJSON(router, http.MethodPost, "/invoices", map[string]interface{}{"order_id": orderID})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create test invoice: %s", w.Body.String())
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	return uint(response["data"].(map[string]interface{})["id"].(float64))
}

func TestListInvoices(t *testing.T) {
	setupControllerTestDB(t)
	orderID := submitOrderForTest(t, validQuickOrderBody())
	createInvoiceForTest(t, orderID)
	createInvoiceForTest(t, orderID)

	router := setupTestRouter()
	router.GET("/invoices", mockAdminMiddleware("admin"), ListInvoices)

	w := performJSON(router, http.MethodGet, "/invoices", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response["data"].([]interface{}), 2)
}

func TestMarkInvoiceSentEndpoints(t *testing.T) {
	setupControllerTestDB(t)
	orderID := submitOrderForTest(t, validQuickOrderBody())
	invoiceID := createInvoiceForTest(t, orderID)

	router := setupTestRouter()
	router.PUT("/invoices/:id/email", mockAdminMiddleware("admin"), MarkInvoiceEmailSent)
	router.PUT("/invoices/:id/whatsapp", mockAdminMiddleware("admin"), MarkInvoiceWhatsappSent)

	// Marking twice keeps the flag true both times
	for i := 0; i < 2; i++ {
		w := performJSON(router, http.MethodPut, fmt.Sprintf("/invoices/%d/email", invoiceID), nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		data := response["data"].(map[string]interface{})
		assert.True(t, data["sent_via_email"].(bool))
	}

	w := performJSON(router, http.MethodPut, fmt.Sprintf("/invoices/%d/whatsapp", invoiceID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	assert.True(t, data["sent_via_whatsapp"].(bool))
	assert.True(t, data["sent_via_email"].(bool))
}

func TestMarkInvoiceSentNotFound(t *testing.T) {
	setupControllerTestDB(t)

	router := setupTestRouter()
	router.PUT("/invoices/:id/email", mockAdminMiddleware("admin"), MarkInvoiceEmailSent)

	w := performJSON(router, http.MethodPut, "/invoices/42/email", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "INVOICE_NOT_FOUND")
}

func TestMarkInvoiceSentBadID(t *testing.T) {
	setupControllerTestDB(t)

	router := setupTestRouter()
	router.PUT("/invoices/:id/email", mockAdminMiddleware("admin"), MarkInvoiceEmailSent)

	w := performJSON(router, http.MethodPut, "/invoices/not-a-number/email", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestGetInvoiceWhatsAppLink(t *testing.T) {
	setupControllerTestDB(t)
	orderID := submitOrderForTest(t, validQuickOrderBody())
	invoiceID := createInvoiceForTest(t, orderID)

	router := setupTestRouter()
	router.GET("/invoices/:id/whatsapp-link", mockAdminMiddleware("admin"), GetInvoiceWhatsAppLink)

	w := performJSON(router, http.MethodGet, fmt.Sprintf("/invoices/%d/whatsapp-link", invoiceID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	link := response["data"].(map[string]interface{})["url"].(string)
	assert.Contains(t, link, "https://wa.me/255712345678?text=")
	assert.Contains(t, link, orderID)
}

func TestGetInvoiceWhatsAppLinkNotFound(t *testing.T) {
	setupControllerTestDB(t)

	router := setupTestRouter()
	router.GET("/invoices/:id/whatsapp-link", mockAdminMiddleware("admin"), GetInvoiceWhatsAppLink)

	w := performJSON(router, http.MethodGet, "/invoices/99/whatsapp-link", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "INVOICE_NOT_FOUND")
}
