package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	QuoteHandler       gin.HandlerFunc
	SaveDraftHandler   gin.HandlerFunc
	GetDraftHandler    gin.HandlerFunc
	DeleteDraftHandler gin.HandlerFunc
	SubmitHandler      gin.HandlerFunc
	GetInvoiceHandler  gin.HandlerFunc
}
