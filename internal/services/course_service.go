package services

import (
	"context"
	"regexp"

	"uniapi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseService manages the course catalog.
type CourseService struct {
	store DocumentStore
}

func NewCourseService(store DocumentStore) *CourseService {
	return &CourseService{store: store}
}

// CreateCourseInput carries the validated payload for course creation.
// Credits is a pointer so an omitted value can default to 3; Description
// stays nil when not supplied and renders as null in listings.
type CreateCourseInput struct {
	Code        string
	Title       string
	Description *string
	Credits     *int
	Instructor  string
	Tags        []string
}

// Create persists a new course, enforcing code uniqueness with a
// check-then-write (same race caveat as registration).
func (s *CourseService) Create(ctx context.Context, in CreateCourseInput) (string, error) {
	var existing []models.Course
	if err := s.store.GetDocuments(ctx, models.CourseCollection, bson.M{"code": in.Code}, &existing); err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return "", ErrDuplicateCourseCode
	}

	credits := 3
	if in.Credits != nil {
		credits = *in.Credits
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	course := models.Course{
		Code:        in.Code,
		Title:       in.Title,
		Description: in.Description,
		Credits:     credits,
		Instructor:  in.Instructor,
		Tags:        tags,
	}

	return s.store.CreateDocument(ctx, models.CourseCollection, course)
}

// List returns the courses matching an optional free-text query and an
// optional tag. Both conditions combine with logical AND.
func (s *CourseService) List(ctx context.Context, q, tag string) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	if err := s.store.GetDocuments(ctx, models.CourseCollection, buildCourseFilter(q, tag), &courses); err != nil {
		return nil, err
	}

	for i := range courses {
		if courses[i].Tags == nil {
			courses[i].Tags = []string{}
		}
	}
	return courses, nil
}

// buildCourseFilter translates the query parameters into a Mongo filter:
// q matches title, code or instructor case-insensitively as a substring,
// tag matches courses whose tag array contains it.
func buildCourseFilter(q, tag string) bson.M {
	filter := bson.M{}
	if q != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"code": pattern},
			bson.M{"instructor": pattern},
		}
	}
	if tag != "" {
		filter["tags"] = tag
	}
	return filter
}
