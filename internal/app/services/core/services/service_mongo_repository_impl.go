package services

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceMongoRepository(db *mongo.Client, dbName string) contracts.ServiceRepository {
	return &ServiceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServices),
	}
}

func (r *ServiceMongoRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}

// FindAllNames projects down to the name field only, for the public listing.
func (r *ServiceMongoRepository) FindAllNames(ctx context.Context) ([]responses.ServiceName, error) {
	findOptions := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var services []responses.ServiceName
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}
