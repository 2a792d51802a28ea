package models

import "time"

// Professional is a staff member customers can book with.
// Deleting a professional does not touch their historical appointments;
// callers must tolerate appointments whose professional no longer exists.
type Professional struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Specialty string    `bson:"specialty" json:"specialty"`
	Available bool      `bson:"available" json:"available"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
