package services

import (
	"context"
	"time"

	"uniapi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentService manages student enrollments and their course
// hydration.
type EnrollmentService struct {
	store DocumentStore
}

func NewEnrollmentService(store DocumentStore) *EnrollmentService {
	return &EnrollmentService{store: store}
}

// Enroll creates an enrollment for a (user, course) pair. Identifiers are
// validated before any store access; both referenced documents must
// exist, and at most one enrollment per pair is allowed (check-then-write).
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (models.Enrollment, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.Enrollment{}, ErrInvalidID
	}
	cid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return models.Enrollment{}, ErrInvalidID
	}

	var users []models.User
	if err := s.store.GetDocuments(ctx, models.UserCollection, bson.M{"_id": uid}, &users); err != nil {
		return models.Enrollment{}, err
	}
	var courses []models.Course
	if err := s.store.GetDocuments(ctx, models.CourseCollection, bson.M{"_id": cid}, &courses); err != nil {
		return models.Enrollment{}, err
	}
	if len(users) == 0 || len(courses) == 0 {
		return models.Enrollment{}, ErrNotFound
	}

	var existing []models.Enrollment
	if err := s.store.GetDocuments(ctx, models.EnrollmentCollection, bson.M{"user_id": userID, "course_id": courseID}, &existing); err != nil {
		return models.Enrollment{}, err
	}
	if len(existing) > 0 {
		return models.Enrollment{}, ErrAlreadyEnrolled
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     models.StatusEnrolled,
		EnrolledAt: time.Now(),
	}

	id, err := s.store.CreateDocument(ctx, models.EnrollmentCollection, enrollment)
	if err != nil {
		return models.Enrollment{}, err
	}
	enrollment.ID, err = primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Enrollment{}, err
	}

	return enrollment, nil
}

// ListForUser returns the user's enrollments, each hydrated with a
// summary of its course. Enrollments whose course no longer exists are
// silently skipped. Zero enrollments is an empty list, not an error.
func (s *EnrollmentService) ListForUser(ctx context.Context, userID string) ([]models.EnrollmentDetail, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, ErrInvalidID
	}

	var enrollments []models.Enrollment
	if err := s.store.GetDocuments(ctx, models.EnrollmentCollection, bson.M{"user_id": userID}, &enrollments); err != nil {
		return nil, err
	}

	details := make([]models.EnrollmentDetail, 0, len(enrollments))
	for _, e := range enrollments {
		cid, err := primitive.ObjectIDFromHex(e.CourseID)
		if err != nil {
			continue
		}
		var courses []models.Course
		if err := s.store.GetDocuments(ctx, models.CourseCollection, bson.M{"_id": cid}, &courses); err != nil {
			return nil, err
		}
		if len(courses) == 0 {
			continue
		}
		details = append(details, models.EnrollmentDetail{
			EnrollmentID: e.ID.Hex(),
			Status:       e.Status,
			Course:       courses[0].Summary(),
		})
	}

	return details, nil
}
