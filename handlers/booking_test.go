package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	draftRepo "feastly/database/repository/draft"
	"feastly/models"
	"feastly/services/booking"
)

type stubBookingService struct {
	quoteResp *booking.QuoteResponse
	quoteErr  error
	submitErr error
	drafts    map[string]*models.BookingDraft
}

func (s *stubBookingService) Quote(ctx context.Context, req booking.QuoteRequest) (*booking.QuoteResponse, error) {
	return s.quoteResp, s.quoteErr
}

func (s *stubBookingService) SaveDraft(ctx context.Context, draft models.BookingDraft) error {
	if s.drafts == nil {
		s.drafts = map[string]*models.BookingDraft{}
	}
	s.drafts[draft.DraftID] = &draft
	return nil
}

func (s *stubBookingService) GetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	if d, ok := s.drafts[draftID]; ok {
		return d, nil
	}
	return nil, draftRepo.ErrDraftNotFound
}

func (s *stubBookingService) DeleteDraft(ctx context.Context, draftID string) error {
	delete(s.drafts, draftID)
	return nil
}

func (s *stubBookingService) Submit(ctx context.Context, req booking.QuoteRequest) (*models.Invoice, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return &models.Invoice{ID: "inv-1", Status: "created"}, nil
}

func (s *stubBookingService) GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	if invoiceID != "inv-1" {
		return nil, draftRepo.ErrDraftNotFound
	}
	return &models.Invoice{ID: invoiceID}, nil
}

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, zap.NewNop())
	r.POST("/api/booking/quote", h.Quote)
	r.PUT("/api/booking/draft/:draftID", h.SaveDraft)
	r.GET("/api/booking/draft/:draftID", h.GetDraft)
	r.DELETE("/api/booking/draft/:draftID", h.DeleteDraft)
	r.POST("/api/booking/submit", h.Submit)
	r.GET("/api/booking/invoice/:invoiceID", h.GetInvoice)
	return r
}

func TestQuoteHandler(t *testing.T) {
	svc := &stubBookingService{
		quoteResp: &booking.QuoteResponse{
			Totals: models.OrderTotals{Subtotal: 100, Total: 113},
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/quote", strings.NewReader(`{"services":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"total":113`) {
		t.Errorf("body missing total: %s", w.Body.String())
	}
}

func TestQuoteHandlerRejectsBadJSON(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/quote", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDraftHandlerRoundTrip(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	body := `{"draft":{"selected_items":{"plate":10}}}`
	req := httptest.NewRequest(http.MethodPut, "/api/booking/draft/d1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d; body: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/booking/draft/d1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"plate":10`) {
		t.Errorf("draft not restored: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/booking/draft/d1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/booking/draft/d1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status after delete = %d, want 404", w.Code)
	}
}

func TestSubmitHandlerMapsValidationError(t *testing.T) {
	svc := &stubBookingService{
		submitErr: booking.NewValidationError("guestCount", "guest count must be greater than zero"),
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/submit", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"field":"guestCount"`) {
		t.Errorf("body missing field: %s", w.Body.String())
	}
}

func TestSubmitHandlerSuccess(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/submit", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "inv-1") {
		t.Errorf("body missing invoice id: %s", w.Body.String())
	}
}

func TestGetInvoiceHandlerNotFound(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/invoice/nope", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
