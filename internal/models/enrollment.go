package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentCollection is the MongoDB collection holding enrollments.
const EnrollmentCollection = "enrollment"

type EnrollmentStatus string

const (
	StatusEnrolled  EnrollmentStatus = "enrolled"
	StatusDropped   EnrollmentStatus = "dropped"
	StatusCompleted EnrollmentStatus = "completed"
)

// Enrollment links a user to a course. References are ObjectID hex
// strings; the store enforces no foreign keys, so dangling references
// are possible and tolerated.
type Enrollment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	CourseID   string             `bson:"course_id" json:"course_id"`
	Status     EnrollmentStatus   `bson:"status" json:"status"`
	EnrolledAt time.Time          `bson:"enrolled_at,omitempty" json:"enrolled_at,omitempty"`
}

// EnrollmentDetail is an enrollment hydrated with its course summary.
type EnrollmentDetail struct {
	EnrollmentID string           `json:"enrollment_id"`
	Status       EnrollmentStatus `json:"status"`
	Course       CourseSummary    `json:"course"`
}
