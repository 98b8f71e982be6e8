package mongodb

import (
	"context"
	"fmt"

	"github.com/davicafu/adsflow/internal/ad/domain"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// AdRepoMongoDB implementa RecordStore para MongoDB. Cada colección del dominio es una colección Mongo.
type AdRepoMongoDB struct {
	db *mongo.Database
}

var _ domain.RecordStore = (*AdRepoMongoDB)(nil)

// NewAdRepoMongoDB es el constructor del repositorio.
func NewAdRepoMongoDB(ctx context.Context, client *mongo.Client, dbName string) (*AdRepoMongoDB, error) {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("could not ping mongoDB: %w", err)
	}
	return &AdRepoMongoDB{db: client.Database(dbName)}, nil
}

// --- Struct de BSON para el mapeo ---
// Se define localmente para no "contaminar" el dominio con tags de BSON.

type mongoAd struct {
	ID        string  `bson:"_id"`
	Title     string  `bson:"title"`
	Price     float64 `bson:"price"`
	ImageURL  *string `bson:"imageUrl"`
	CreatedAt string  `bson:"createdAt"`
}

func toMongoAd(ad *domain.Ad) mongoAd {
	return mongoAd{
		ID:        ad.ID,
		Title:     ad.Title,
		Price:     ad.Price,
		ImageURL:  ad.ImageURL,
		CreatedAt: ad.CreatedAt,
	}
}

func (r *AdRepoMongoDB) Put(ctx context.Context, collection string, ad *domain.Ad) error {
	_, err := r.db.Collection(collection).InsertOne(ctx, toMongoAd(ad))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", domain.ErrConflictingKey, ad.ID)
		}
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
