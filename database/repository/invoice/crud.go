package invoiceRepo

import (
	"context"
	"time"

	"feastly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new invoice and returns its ID.
func (r *mongoInvoiceRepo) Create(ctx context.Context, inv models.Invoice) (string, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	inv.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, inv)
	if err != nil {
		return "", err
	}
	return inv.ID, nil
}

// GetByID returns an invoice by its ID.
func (r *mongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// SaveSnapshot upserts the flattened PDF-input snapshot for an invoice.
// Snapshots are derived data; re-generating one replaces the previous copy.
func (r *mongoInvoiceRepo) SaveSnapshot(ctx context.Context, snap models.InvoiceSnapshot) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.snapColl.ReplaceOne(ctx, bson.M{"invoice_id": snap.InvoiceID}, snap, opts)
	return err
}

// GetSnapshot returns the flattened snapshot for an invoice.
func (r *mongoInvoiceRepo) GetSnapshot(ctx context.Context, invoiceID string) (*models.InvoiceSnapshot, error) {
	var snap models.InvoiceSnapshot
	err := r.snapColl.FindOne(ctx, bson.M{"invoice_id": invoiceID}).Decode(&snap)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
