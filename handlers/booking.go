package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	draftRepo "feastly/database/repository/draft"
	"feastly/models"
	"feastly/services/booking"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// Quote recomputes order totals from the posted booking state.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req booking.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Quote(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to compute quote: %v", err)})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveDraft upserts the full draft snapshot under the path draft id.
func (h *BookingHandler) SaveDraft(c *gin.Context) {
	draftID := c.Param("draftID")
	var input struct {
		Draft models.BookingDraft `json:"draft"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft := input.Draft
	draft.DraftID = draftID
	if err := h.Service.SaveDraft(c.Request.Context(), draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to save draft: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draftID": draftID})
}

// GetDraft restores an in-progress booking.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	draftID := c.Param("draftID")
	draft, err := h.Service.GetDraft(c.Request.Context(), draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to load draft: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// DeleteDraft discards an in-progress booking.
func (h *BookingHandler) DeleteDraft(c *gin.Context) {
	draftID := c.Param("draftID")
	if err := h.Service.DeleteDraft(c.Request.Context(), draftID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to delete draft: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draftID": draftID, "deleted": true})
}

// Submit validates the booking and turns it into a persisted invoice.
func (h *BookingHandler) Submit(c *gin.Context) {
	var req booking.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	invoice, err := h.Service.Submit(c.Request.Context(), req)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message, "field": vErr.Field})
			return
		}
		h.Logger.Error("submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("submission failed: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// GetInvoice fetches a persisted invoice by id.
func (h *BookingHandler) GetInvoice(c *gin.Context) {
	invoiceID := c.Param("invoiceID")
	invoice, err := h.Service.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}
