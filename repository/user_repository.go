package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type UserMongoRepository struct {
	db         mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &UserMongoRepository{
		db:         db,
		collection: collection,
	}
}

func (r *UserMongoRepository) Create(ctx context.Context, user *domain.User) error {
	coll := r.db.Collection(r.collection)

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserMongoRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	coll := r.db.Collection(r.collection)

	var user domain.User
	err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, driver.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *UserMongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	coll := r.db.Collection(r.collection)

	var user domain.User
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, driver.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
