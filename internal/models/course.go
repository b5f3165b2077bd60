package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseCollection is the MongoDB collection holding the course catalog.
const CourseCollection = "course"

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code        string             `bson:"code" json:"code"`
	Title       string             `bson:"title" json:"title"`
	Description *string            `bson:"description,omitempty" json:"description"`
	Credits     int                `bson:"credits" json:"credits"`
	Instructor  string             `bson:"instructor" json:"instructor"`
	Tags        []string           `bson:"tags" json:"tags"`
}

// CourseSummary is the shape embedded in hydrated enrollment listings.
type CourseSummary struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
	Credits    int    `json:"credits"`
}

func (c Course) Summary() CourseSummary {
	return CourseSummary{
		ID:         c.ID.Hex(),
		Code:       c.Code,
		Title:      c.Title,
		Instructor: c.Instructor,
		Credits:    c.Credits,
	}
}
