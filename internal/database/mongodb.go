package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
}

// Collection names
const (
	CollectionTasks     = "tasks"
	CollectionProjects  = "projects"
	CollectionMeetings  = "meetings"
	CollectionReminders = "reminders"
	CollectionGoals     = "goals"
)

// NewMongoDB creates a new MongoDB connection with connection pooling
func NewMongoDB(uri string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := extractDBName(uri)
	if dbName == "" {
		dbName = "taskdash"
	}

	db := &MongoDB{
		client:   client,
		database: client.Database(dbName),
		dbName:   dbName,
	}

	log.Printf("✅ Connected to MongoDB database: %s", dbName)

	return db, nil
}

// extractDBName extracts the database name from a MongoDB URI, e.g.
// mongodb://localhost:27017/taskdash?authSource=admin -> taskdash
func extractDBName(uri string) string {
	lastSlash := strings.LastIndex(uri, "/")
	if lastSlash == -1 || lastSlash == len(uri)-1 {
		return ""
	}
	name := uri[lastSlash+1:]
	if q := strings.Index(name, "?"); q != -1 {
		name = name[:q]
	}
	return name
}

// Initialize creates indexes for all collections
func (m *MongoDB) Initialize(ctx context.Context) error {
	log.Println("📦 Initializing MongoDB indexes...")

	// Tasks: default listing sort plus the filterable fields and the
	// project reference used by the cascade delete
	if err := m.createIndexes(ctx, CollectionTasks, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "priority", Value: 1}}},
		{Keys: bson.D{{Key: "project", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "updatedAt", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("failed to create tasks indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionProjects, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "milestones.status", Value: 1}, {Key: "milestones.dueDate", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create projects indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionMeetings, []mongo.IndexModel{
		{Keys: bson.D{{Key: "meetingDate", Value: 1}, {Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create meetings indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionReminders, []mongo.IndexModel{
		{Keys: bson.D{{Key: "reminderDate", Value: 1}, {Key: "reminderTime", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create reminders indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionGoals, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create goals indexes: %w", err)
	}

	log.Println("✅ MongoDB indexes initialized successfully")
	return nil
}

// createIndexes creates indexes for a collection
func (m *MongoDB) createIndexes(ctx context.Context, collectionName string, indexes []mongo.IndexModel) error {
	collection := m.database.Collection(collectionName)
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// Collection returns a collection handle
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Database returns the underlying MongoDB database
func (m *MongoDB) Database() *mongo.Database {
	return m.database
}

// Close closes the MongoDB connection
func (m *MongoDB) Close(ctx context.Context) error {
	log.Println("🔌 Closing MongoDB connection...")
	return m.client.Disconnect(ctx)
}

// Ping checks if the database connection is alive
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}
