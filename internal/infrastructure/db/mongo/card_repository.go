package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boardhq/board-api/internal/core/domain"
)

const cardsCollection = "cards"

type CardRepository struct {
	coll *mongo.Collection
}

func NewCardRepository(db *mongo.Database) *CardRepository {
	return &CardRepository{coll: db.Collection(cardsCollection)}
}

type cardDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	ProjectName string             `bson:"project_name,omitempty"`
	CreatedBy   string             `bson:"created_by"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d cardDoc) toDomain() domain.Card {
	return domain.Card{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		ProjectName: d.ProjectName,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Create inserts a new card. ID and both timestamps are assigned here, at the
// persistence boundary; created_at is the board's sort key.
func (r *CardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := cardDoc{
		Title:       card.Title,
		Description: card.Description,
		Category:    card.Category,
		ProjectName: card.ProjectName,
		CreatedBy:   card.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert card: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *CardRepository) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCardNotFound
	}

	var doc cardDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("find card: %w", err)
	}
	card := doc.toDomain()
	return &card, nil
}

// List returns every card ordered by creation time, newest first.
func (r *CardRepository) List(ctx context.Context) ([]domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer cur.Close(ctx)

	cards := make([]domain.Card, 0)
	for cur.Next(ctx) {
		var doc cardDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode card: %w", err)
		}
		cards = append(cards, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// EnsureIndexes creates the created_at index used by the board listing.
func (r *CardRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
