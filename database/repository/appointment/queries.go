package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns appointments matching the filter, newest first.
func (repo *MongoAppointmentRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.ProfessionalID != "" {
		query["professional_id"] = filter.ProfessionalID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}

// ListActiveForDay returns all non-cancelled appointments for a professional
// on a given date.
func (repo *MongoAppointmentRepo) ListActiveForDay(ctx context.Context, professionalID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"professional_id": professionalID,
		"date":            date,
		"active":          true,
	}
	cursor, err := repo.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching day appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding day appointments: %w", err)
	}
	return appointments, nil
}

// FindActiveAt returns the non-cancelled appointments at an exact slot,
// optionally excluding one appointment id (the one being edited).
func (repo *MongoAppointmentRepo) FindActiveAt(ctx context.Context, professionalID, date, timeSlot, excludeID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"professional_id": professionalID,
		"date":            date,
		"time":            timeSlot,
		"active":          true,
	}
	if excludeID != "" {
		query["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := repo.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error finding occupying appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding occupying appointments: %w", err)
	}
	return appointments, nil
}
