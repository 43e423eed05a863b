package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ivanausecha/tidytask-backend/internal/auth/domain"
)

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(database *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: database.Collection("users")}
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"google_id": googleID})
}

// GetByValidResetToken matches the token hash and a future expiry in a single
// filter so an expired token behaves exactly like an unknown one.
func (r *MongoUserRepository) GetByValidResetToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	return r.findOne(ctx, bson.M{
		"reset.token_hash": tokenHash,
		"reset.expires_at": bson.M{"$gt": now},
	})
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	update := bson.M{"$set": bson.M{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"age":        user.Age,
		"email":      user.Email,
		"updated_at": user.UpdatedAt,
	}}
	return r.updateOne(ctx, user.ID, update)
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	update := bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	}}
	return r.updateOne(ctx, id, update)
}

func (r *MongoUserRepository) UpdateAvatar(ctx context.Context, id, avatarPath string) error {
	update := bson.M{"$set": bson.M{
		"avatar_path": avatarPath,
		"updated_at":  time.Now(),
	}}
	return r.updateOne(ctx, id, update)
}

func (r *MongoUserRepository) AttachGoogleID(ctx context.Context, id, googleID string) error {
	update := bson.M{"$set": bson.M{
		"google_id":  googleID,
		"updated_at": time.Now(),
	}}
	return r.updateOne(ctx, id, update)
}

func (r *MongoUserRepository) SetPasswordReset(ctx context.Context, id string, reset *domain.PasswordReset) error {
	update := bson.M{"$set": bson.M{
		"reset":      reset,
		"updated_at": time.Now(),
	}}
	return r.updateOne(ctx, id, update)
}

// ResetPassword writes the new hash and removes the reset sub-record in one
// document update, so a token can never be replayed after a successful reset.
func (r *MongoUserRepository) ResetPassword(ctx context.Context, id, passwordHash string) error {
	update := bson.M{
		"$set": bson.M{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		},
		"$unset": bson.M{"reset": ""},
	}
	return r.updateOne(ctx, id, update)
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
