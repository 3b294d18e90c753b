package preferences

import (
	"context"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type preferenceMongoRepository struct {
	Collection *mongo.Collection
}

func NewPreferenceMongoRepository(db *mongo.Database) PreferenceRepository {
	return &preferenceMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPreferences),
	}
}

func (r *preferenceMongoRepository) FindByIdentityID(ctx context.Context, identityID string) (*models.Preferences, error) {
	filter := bson.M{"identityId": identityID}

	preferences := new(models.Preferences)
	err := r.Collection.FindOne(ctx, filter).Decode(preferences)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return preferences, nil
}

func (r *preferenceMongoRepository) Upsert(ctx context.Context, preferences *models.Preferences) error {
	filter := bson.M{"identityId": preferences.IdentityID}
	update := bson.M{"$set": bson.M{
		"identityId":         preferences.IdentityID,
		"theme":              preferences.Theme,
		"textSize":           preferences.TextSize,
		"favoriteArticleIds": preferences.FavoriteArticleIDs,
		"updatedAt":          preferences.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	_, err := r.Collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
