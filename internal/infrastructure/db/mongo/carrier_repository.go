package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
)

const collectionCarriers = "transportistas"

// CarrierRepository implements ports.CarrierRepository on MongoDB. Unique
// indexes on rut and email make the uniqueness check part of the insert.
type CarrierRepository struct {
	col *mongo.Collection
}

func NewCarrierRepository(db *mongo.Database) *CarrierRepository {
	return &CarrierRepository{col: db.Collection(collectionCarriers)}
}

// Create inserts a new carrier document.
func (r *CarrierRepository) Create(ctx context.Context, c *domain.Carrier) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateCarrierError(err, c)
		}
		return err
	}
	return nil
}

// FindByID retrieves a carrier by its id.
func (r *CarrierRepository) FindByID(ctx context.Context, id string) (*domain.Carrier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Carrier
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCarrierNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns carriers ordered by creation time.
func (r *CarrierRepository) List(ctx context.Context, filter ports.CarrierFilter) ([]*domain.Carrier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Active != nil {
		query["activo"] = *filter.Active
	}

	opts := options.Find().SetSort(bson.D{{Key: "fecha_creacion", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Carrier, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the unique business-identifier indexes.
func (r *CarrierRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "rut", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_rut")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		{Keys: bson.D{{Key: "activo", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// duplicateCarrierError names the clashing field from the index in the
// server message. RUT wins when the message is ambiguous.
func duplicateCarrierError(err error, c *domain.Carrier) error {
	if strings.Contains(err.Error(), "uniq_email") && !strings.Contains(err.Error(), "uniq_rut") {
		return &domain.DuplicateIdentifierError{Field: domain.FieldEmail, Value: c.Email}
	}
	return &domain.DuplicateIdentifierError{Field: domain.FieldRUT, Value: c.RUT}
}
