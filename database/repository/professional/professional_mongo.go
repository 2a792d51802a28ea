package professionalRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agendly/database"
	"agendly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no professional matches the given id.
var ErrNotFound = errors.New("professional not found")

// ProfessionalRepository is the persistence contract for professionals.
type ProfessionalRepository interface {
	Create(ctx context.Context, prof *models.Professional) (string, error)
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	ListAll(ctx context.Context) ([]models.Professional, error)
	Update(ctx context.Context, prof *models.Professional) error
	Delete(ctx context.Context, id string) error
}

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new instance of MongoProfessionalRepo.
func NewMongoProfessionalRepo() ProfessionalRepository {
	return &MongoProfessionalRepo{
		coll: database.DB().Collection("professionals"),
	}
}

func (repo *MongoProfessionalRepo) Create(ctx context.Context, prof *models.Professional) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if prof.ID == "" {
		prof.ID = uuid.New().String()
	}
	now := time.Now()
	prof.CreatedAt = now
	prof.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, prof); err != nil {
		return "", fmt.Errorf("error creating professional: %w", err)
	}
	return prof.ID, nil
}

func (repo *MongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prof models.Professional
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching professional %s: %w", id, err)
	}
	return &prof, nil
}

// ListAll returns every professional ordered by name.
func (repo *MongoProfessionalRepo) ListAll(ctx context.Context) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var professionals []models.Professional
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, fmt.Errorf("error decoding professionals: %w", err)
	}
	return professionals, nil
}

func (repo *MongoProfessionalRepo) Update(ctx context.Context, prof *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	prof.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":       prof.Name,
		"email":      prof.Email,
		"phone":      prof.Phone,
		"specialty":  prof.Specialty,
		"available":  prof.Available,
		"updated_at": prof.UpdatedAt,
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": prof.ID}, update)
	if err != nil {
		return fmt.Errorf("error updating professional %s: %w", prof.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a professional. Historical appointments keep their
// professional_id reference; no cascade.
func (repo *MongoProfessionalRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting professional %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
