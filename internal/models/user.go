package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCollection is the MongoDB collection holding user accounts.
const UserCollection = "user"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}

// Public returns the fields safe to expose at the API boundary. The
// password hash never leaves the service layer.
func (u User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":    u.ID.Hex(),
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}
