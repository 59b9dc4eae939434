package invoiceRepo

import (
	"context"

	"feastly/database"
	"feastly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InvoiceRepository persists invoices and their flattened PDF-input
// snapshots.
type InvoiceRepository interface {
	Create(ctx context.Context, inv models.Invoice) (string, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	SaveSnapshot(ctx context.Context, snap models.InvoiceSnapshot) error
	GetSnapshot(ctx context.Context, invoiceID string) (*models.InvoiceSnapshot, error)
}

type mongoInvoiceRepo struct {
	coll     *mongo.Collection
	snapColl *mongo.Collection
}

// NewMongoInvoiceRepo returns a new InvoiceRepository instance using MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.MongoClient.Database("feastly")
	return &mongoInvoiceRepo{
		coll:     db.Collection("invoices"),
		snapColl: db.Collection("invoice_snapshots"),
	}
}
