package controllers

import (
	"fmt"
	"net/http"

	"github.com/cleaningmadeasy/laundry-api/config"
	"github.com/cleaningmadeasy/laundry-api/services"
	"github.com/gin-gonic/gin"
)

// ContactRequest represents the request body for the public contact form
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SendContactMessage handles POST /api/v1/contact - relays a contact-form
// message to the business inbox
func SendContactMessage(c *gin.Context) {
	var req ContactRequest
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

	cfg := config.GetConfig()
	mailer := services.NewMailer(cfg)

	subject := fmt.Sprintf("Contact Form Submission from %s", req.Name)
	text := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", req.Name, req.Email, req.Message)
	html := fmt.Sprintf(`
		<h2>Contact Form Submission</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>`, req.Name, req.Email, req.Message)

	if err := mailer.Send([]string{cfg.InfoEmail}, subject, text, html); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMAIL_ERROR",
				"message": "Error sending message",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully",
	})
}
