package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
)

const collectionShipments = "shipments"

type ShipmentRepository struct {
	col *mongo.Collection
}

func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{col: db.Collection(collectionShipments)}
}

// Create inserts a new shipment document.
func (r *ShipmentRepository) Create(ctx context.Context, s *domain.Shipment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTrackingNumber
		}
		return err
	}
	return nil
}

// FindByID retrieves a shipment by its id.
func (r *ShipmentRepository) FindByID(ctx context.Context, id string) (*domain.Shipment, error) {
	return r.findOne(ctx, bson.M{"_id": id}, domain.ErrShipmentNotFound)
}

// FindByTrackingNumber retrieves a shipment by tracking number.
func (r *ShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	return r.findOne(ctx, bson.M{"tracking_number": trackingNumber}, domain.ErrTrackingNotFound)
}

// AppendStatus sets the status and pushes the history entry in one
// document update, returning the document after the update.
func (r *ShipmentRepository) AppendStatus(ctx context.Context, trackingNumber string, entry domain.HistoryEntry) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var s domain.Shipment
	err := r.col.FindOneAndUpdate(ctx, bson.M{"tracking_number": trackingNumber}, appendStatusUpdate(entry), opts).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTrackingNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns matching shipments ordered by creation time.
func (r *ShipmentRepository) List(ctx context.Context, filter ports.ShipmentFilter) ([]*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, shipmentQuery(filter), opts)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Shipment, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates necessary indexes on the shipments collection.
func (r *ShipmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tracking_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "transportista_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "order_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ShipmentRepository) findOne(ctx context.Context, filter bson.M, notFound error) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Shipment
	err := r.col.FindOne(ctx, filter).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, err
	}
	return &s, nil
}

func shipmentQuery(filter ports.ShipmentFilter) bson.M {
	query := bson.M{}
	if filter.CarrierID != "" {
		query["transportista_id"] = filter.CarrierID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.OrderID != "" {
		query["order_id"] = filter.OrderID
	}
	return query
}

// appendStatusUpdate sets the current status and pushes entry onto the
// history in one update. A delivered entry also stamps actual_delivery.
func appendStatusUpdate(entry domain.HistoryEntry) bson.M {
	set := bson.M{
		"status":     entry.Status,
		"updated_at": entry.Timestamp,
	}
	if entry.Status == domain.StatusDelivered {
		set["actual_delivery"] = entry.Timestamp
	}
	return bson.M{
		"$set":  set,
		"$push": bson.M{"history": entry},
	}
}
