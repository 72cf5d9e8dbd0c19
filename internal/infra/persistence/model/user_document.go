package model

import "time"

// UserDocument is the BSON shape of a user in the MongoDB 'users' collection.
// The UUID is stored as its string form in _id.
type UserDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	MobileNo  string    `bson:"mobileNo,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}
