package bookings

import (
	"context"
	"errors"
	"log"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// errDuplicateBooking signals an insert lost the race against an identical
// composite key; the unique index is the authority, not the prior lookup.
var errDuplicateBooking = errors.New("booking already exists for treatment, date and patient")

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionBookings)

	// One booking per (treatment, date, patient). The handler still checks
	// before inserting, but only this index makes the invariant hold under
	// concurrent identical requests.
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "date", Value: 1},
			{Key: "patient", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(context.TODO(), indexModel); err != nil {
		log.Printf("Failed to ensure booking unique index: %s", err.Error())
	}

	return &BookingMongoRepository{Collection: collection}
}

func (r *BookingMongoRepository) FindByCompositeKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	filter := bson.M{
		"treatment": treatment,
		"date":      date,
		"patient":   patient,
	}
	var booking models.Booking
	err := r.Collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"patient": patient})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var booking models.Booking
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", errDuplicateBooking
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BookingMongoRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) (*responses.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"paid":          true,
			"transactionId": transactionID,
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &responses.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}, nil
}
