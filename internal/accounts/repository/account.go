package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	accountserrors "luxestay/internal/accounts/errors"
	"luxestay/pkg/config"
	mongodb "luxestay/pkg/db/mongo"
	"luxestay/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	CollectionName = "Accounts"
)

type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, id string) (*model.Account, error)
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
}

type mongoAccountRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoAccountRepository(cfg *config.Config) AccountRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoAccountRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// Create relies on the unique username and email indexes to reject duplicates.
func (r *mongoAccountRepository) Create(ctx context.Context, account *model.Account) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	account.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return accountserrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid.Hex()
	}
	return nil
}

func (r *mongoAccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", accountserrors.ErrInvalidID, id)
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *mongoAccountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *mongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*model.Account, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var account model.Account
	if err := r.collection.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, accountserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &account, nil
}
