package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/errors"
)

// MongoConfig holds connection settings for the MongoDB backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// drawDoc is the stored document shape. The draw is embedded whole; the
// summary fields are duplicated at the top level so List can project them
// without decoding every match.
type drawDoc struct {
	ID         string    `bson:"_id"`
	EventType  string    `bson:"event_type,omitempty"`
	DrawType   string    `bson:"draw_type,omitempty"`
	DrawSize   int       `bson:"draw_size,omitempty"`
	MatchCount int       `bson:"match_count"`
	UpdatedAt  time.Time `bson:"updated_at"`
	Draw       draw.Draw `bson:"draw"`
}

// MongoStore persists draws in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping. Empty database and collection names fall back to "courtline" and
// "draws".
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "courtline"
	}
	if cfg.Collection == "" {
		cfg.Collection = "draws"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "mongodb unreachable at %s", cfg.URI)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Put inserts or replaces a draw.
func (s *MongoStore) Put(ctx context.Context, d *draw.Draw) (string, error) {
	if d == nil {
		return "", errors.New(errors.ErrCodeInvalidDraw, "nil draw")
	}
	if d.DrawID == "" {
		d.DrawID = uuid.NewString()
	}

	doc := drawDoc{
		ID:         d.DrawID,
		EventType:  d.EventType,
		DrawType:   d.DrawType,
		DrawSize:   d.Size(),
		MatchCount: len(d.Matches),
		UpdatedAt:  time.Now().UTC(),
		Draw:       *d,
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": d.DrawID},
		doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStore, err, "failed to store draw %s", d.DrawID)
	}
	return d.DrawID, nil
}

// Get retrieves a draw by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*draw.Draw, error) {
	var doc drawDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeDrawNotFound, "draw not found: %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to load draw %s", id)
	}
	return &doc.Draw, nil
}

// List returns summaries of all stored draws, most recently updated first.
// Only the summary fields are fetched; match data stays on the server.
func (s *MongoStore) List(ctx context.Context) ([]Summary, error) {
	opts := options.Find().
		SetProjection(bson.M{
			"event_type":  1,
			"draw_type":   1,
			"draw_size":   1,
			"match_count": 1,
			"updated_at":  1,
		}).
		SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to list draws")
	}
	defer cursor.Close(ctx)

	var summaries []Summary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to decode draw summaries")
	}
	return summaries, nil
}

// Delete removes a draw. Missing IDs are ignored.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to delete draw %s", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
