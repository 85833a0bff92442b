package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metagrow/internal/metrics"
	"metagrow/internal/pkg/response"
)

const confirmationMessage = "Thank you for your message! I will get back to you within 24 hours."

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the contact API. The list endpoint is for operators
// only: requireAdmin rejects anonymous callers with 401.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	api.POST("/contact", h.Submit)
	api.GET("/contacts", requireAdmin, h.List)
}

// Submit handles POST /api/contact.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	stored, fieldErrs, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		response.Message(c, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}
	if len(fieldErrs) > 0 {
		metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": confirmationMessage,
		"contact": gin.H{"id": stored.ID},
	})
}

// List handles GET /api/contacts.
func (h *Handler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    contacts,
		"count":   len(contacts),
	})
}
