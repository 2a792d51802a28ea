package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"agendly/database"
	"agendly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

// Create inserts a new appointment document, minting its id. The Active flag
// is derived from Status so the partial unique index can enforce the
// one-active-appointment-per-slot invariant.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, apt *models.Appointment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if apt.ID == "" {
		apt.ID = uuid.New().String()
	}
	now := time.Now()
	apt.CreatedAt = now
	apt.UpdatedAt = now
	apt.Active = apt.IsActive()

	if _, err := repo.coll.InsertOne(ctx, apt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateSlot
		}
		return "", fmt.Errorf("error creating appointment: %w", err)
	}
	return apt.ID, nil
}

// GetByID retrieves an appointment document by id.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var apt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&apt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &apt, nil
}

// Update rewrites the mutable fields of an existing appointment.
func (repo *MongoAppointmentRepo) Update(ctx context.Context, apt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	apt.UpdatedAt = time.Now()
	apt.Active = apt.IsActive()

	update := bson.M{"$set": bson.M{
		"customer_name":   apt.CustomerName,
		"customer_email":  apt.CustomerEmail,
		"customer_phone":  apt.CustomerPhone,
		"service_id":      apt.ServiceID,
		"professional_id": apt.ProfessionalID,
		"date":            apt.Date,
		"time":            apt.Time,
		"status":          apt.Status,
		"active":          apt.Active,
		"notes":           apt.Notes,
		"updated_at":      apt.UpdatedAt,
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": apt.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("error updating appointment %s: %w", apt.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an appointment document. The scheduling engine never calls
// this; it exists for the admin surface only.
func (repo *MongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
