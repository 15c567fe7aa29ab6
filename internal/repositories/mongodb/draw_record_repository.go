package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// CollectionName is the collection holding the draw history
	CollectionName = "draw_records"
	// StagingCollectionName receives a new history before it replaces CollectionName
	StagingCollectionName = "draw_records_staging"
)

// DrawRecordRepository implements the repositories.DrawRecordRepository interface
type DrawRecordRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// drawRecordDocument is the stored shape of a models.DrawRecord. Seq keeps the history order.
type drawRecordDocument struct {
	Seq     int       `bson:"seq"`
	Round   int       `bson:"round"`
	Numbers []int     `bson:"numbers"`
	Bonus   int       `bson:"bonus"`
	Outcome string    `bson:"outcome"`
	SavedAt time.Time `bson:"savedAt"`
}

// NewDrawRecordRepository creates a new DrawRecordRepository
func NewDrawRecordRepository(db *mongo.Database) repositories.DrawRecordRepository {
	return &DrawRecordRepository{
		db:         db,
		collection: db.Collection(CollectionName),
	}
}

// Load returns all stored records in history order
func (r *DrawRecordRepository) Load(ctx context.Context) ([]models.DrawRecord, error) {
	opts := options.Find().SetSort(bson.M{"seq": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []drawRecordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return fromDocuments(docs)
}

// Save replaces the stored history with records. The new history is written to
// the staging collection and swapped in with one renameCollection, so a failure
// before the swap leaves the previous history in place.
func (r *DrawRecordRepository) Save(ctx context.Context, records []models.DrawRecord) error {
	staging := r.db.Collection(StagingCollectionName)
	if err := staging.Drop(ctx); err != nil {
		return fmt.Errorf("failed to reset staging collection: %w", err)
	}
	if err := r.db.CreateCollection(ctx, StagingCollectionName); err != nil {
		return fmt.Errorf("failed to create staging collection: %w", err)
	}

	if len(records) > 0 {
		docs := toDocuments(records, time.Now())
		items := make([]interface{}, len(docs))
		for i := range docs {
			items[i] = docs[i]
		}
		if _, err := staging.InsertMany(ctx, items, options.InsertMany().SetOrdered(true)); err != nil {
			return fmt.Errorf("failed to insert draw records: %w", err)
		}
	}

	rename := bson.D{
		{Key: "renameCollection", Value: r.db.Name() + "." + StagingCollectionName},
		{Key: "to", Value: r.db.Name() + "." + CollectionName},
		{Key: "dropTarget", Value: true},
	}
	if err := r.db.Client().Database("admin").RunCommand(ctx, rename).Err(); err != nil {
		return fmt.Errorf("failed to replace draw records: %w", err)
	}
	return nil
}

func toDocuments(records []models.DrawRecord, savedAt time.Time) []drawRecordDocument {
	docs := make([]drawRecordDocument, len(records))
	for i, rec := range records {
		docs[i] = drawRecordDocument{
			Seq:     i,
			Round:   rec.Round,
			Numbers: append([]int(nil), rec.Numbers[:]...),
			Bonus:   rec.Bonus,
			Outcome: rec.Outcome,
			SavedAt: savedAt,
		}
	}
	return docs
}

func fromDocuments(docs []drawRecordDocument) ([]models.DrawRecord, error) {
	records := make([]models.DrawRecord, 0, len(docs))
	for _, doc := range docs {
		if len(doc.Numbers) != models.NumbersPerDraw {
			return nil, fmt.Errorf("%w: round %d has %d numbers", models.ErrParse, doc.Round, len(doc.Numbers))
		}
		rec := models.DrawRecord{
			Round:   doc.Round,
			Bonus:   doc.Bonus,
			Outcome: doc.Outcome,
		}
		copy(rec.Numbers[:], doc.Numbers)
		records = append(records, rec)
	}
	return records, nil
}
