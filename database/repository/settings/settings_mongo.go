package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The settings collection holds a single document identified by this key.
const settingsDocID = "business"

// SettingsRepository is the persistence contract for business settings.
// Read always returns a usable value, seeding defaults on first access;
// Write merges only the provided fields.
type SettingsRepository interface {
	Read(ctx context.Context) (*models.BusinessSettings, error)
	Write(ctx context.Context, update models.BusinessSettingsUpdate) (*models.BusinessSettings, error)
}

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new instance of MongoSettingsRepo.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{
		coll: database.DB().Collection("settings"),
	}
}

type settingsDoc struct {
	DocID string `bson:"doc_id"`
	models.BusinessSettings `bson:",inline"`
}

// Read fetches the singleton settings document, creating it with defaults if
// it does not exist yet.
func (repo *MongoSettingsRepo) Read(ctx context.Context) (*models.BusinessSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc settingsDoc
	err := repo.coll.FindOne(ctx, bson.M{"doc_id": settingsDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return repo.seedDefaults(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading business settings: %w", err)
	}
	return &doc.BusinessSettings, nil
}

func (repo *MongoSettingsRepo) seedDefaults(ctx context.Context) (*models.BusinessSettings, error) {
	defaults := models.DefaultBusinessSettings()
	doc := settingsDoc{DocID: settingsDocID, BusinessSettings: *defaults}

	// Upsert so two concurrent first readers cannot create two documents.
	opts := options.Update().SetUpsert(true)
	_, err := repo.coll.UpdateOne(ctx,
		bson.M{"doc_id": settingsDocID},
		bson.M{"$setOnInsert": doc},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("error seeding default settings: %w", err)
	}

	var seeded settingsDoc
	if err := repo.coll.FindOne(ctx, bson.M{"doc_id": settingsDocID}).Decode(&seeded); err != nil {
		return nil, fmt.Errorf("error re-reading seeded settings: %w", err)
	}
	return &seeded.BusinessSettings, nil
}

// Write merges the provided fields into the settings document and returns the
// post-write state.
func (repo *MongoSettingsRepo) Write(ctx context.Context, update models.BusinessSettingsUpdate) (*models.BusinessSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Make sure the document exists before merging into it.
	if _, err := repo.Read(ctx); err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	if update.BusinessHours != nil {
		set["business_hours"] = update.BusinessHours
	}
	if update.BlockedDates != nil {
		set["blocked_dates"] = *update.BlockedDates
	}
	if update.AutoApprove != nil {
		set["auto_approve"] = *update.AutoApprove
	}
	if update.ConfirmationMessage != nil {
		set["confirmation_message"] = *update.ConfirmationMessage
	}

	_, err := repo.coll.UpdateOne(ctx, bson.M{"doc_id": settingsDocID}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("error writing business settings: %w", err)
	}

	var doc settingsDoc
	if err := repo.coll.FindOne(ctx, bson.M{"doc_id": settingsDocID}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error re-reading settings after write: %w", err)
	}
	return &doc.BusinessSettings, nil
}
