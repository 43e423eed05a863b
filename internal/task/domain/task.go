package domain

import "time"

// Task is a single to-do item. OwnerID is set at creation and never changes;
// every read, update and delete filters on it together with the task id.
type Task struct {
	ID        string    `bson:"_id"`
	OwnerID   string    `bson:"owner_id"`
	Title     string    `bson:"title"`
	Detail    string    `bson:"detail,omitempty"`
	Date      time.Time `bson:"date"`
	Time      string    `bson:"time,omitempty"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
