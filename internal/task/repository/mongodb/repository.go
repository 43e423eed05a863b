package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ivanausecha/tidytask-backend/internal/task/domain"
)

type MongoTaskRepository struct {
	col *mongo.Collection
}

func NewMongoTaskRepository(database *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{col: database.Collection("tasks")}
}

func (r *MongoTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if _, err := r.col.InsertOne(ctx, task); err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *MongoTaskRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *MongoTaskRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	var task domain.Task
	err := r.col.FindOne(ctx, bson.M{"_id": id, "owner_id": ownerID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query task: %w", err)
	}
	return &task, nil
}

func (r *MongoTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	filter := bson.M{"_id": task.ID, "owner_id": task.OwnerID}
	update := bson.M{"$set": bson.M{
		"title":      task.Title,
		"detail":     task.Detail,
		"date":       task.Date,
		"time":       task.Time,
		"status":     task.Status,
		"updated_at": task.UpdatedAt,
	}}
	if _, err := r.col.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (r *MongoTaskRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoTaskRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{"owner_id": ownerID}); err != nil {
		return fmt.Errorf("failed to delete tasks for owner: %w", err)
	}
	return nil
}
