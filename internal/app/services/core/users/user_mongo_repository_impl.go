package users

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (r *UserMongoRepository) Upsert(ctx context.Context, email string, user *requests.UpsertUser) (*responses.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": buildUpsertDocument(email, user)}
	result, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return buildUpdateResult(result), nil
}

func (r *UserMongoRepository) SetRole(ctx context.Context, email, role string) (*responses.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": role}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return buildUpdateResult(result), nil
}

// buildUpsertDocument stores the whole request body; the modeled fields are
// written last so an extra key cannot shadow them, and the URL email wins.
func buildUpsertDocument(email string, user *requests.UpsertUser) bson.M {
	document := bson.M{}
	for key, value := range user.Extra {
		document[key] = value
	}
	document["email"] = email
	document["name"] = user.Name
	return document
}

func buildUpdateResult(result *mongo.UpdateResult) *responses.UpdateResult {
	updateResult := &responses.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
	if objectID, ok := result.UpsertedID.(primitive.ObjectID); ok {
		updateResult.UpsertedID = objectID.Hex()
	}
	return updateResult
}
