package services

import (
	"context"

	"uniapi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is a seeded in-memory DocumentStore. It understands the
// equality filters the services issue (email, code, _id, user_id,
// course_id); listing filters are covered separately by
// TestBuildCourseFilter.
type fakeStore struct {
	users       []models.User
	courses     []models.Course
	enrollments []models.Enrollment
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, record interface{}) (string, error) {
	id := primitive.NewObjectID()
	switch r := record.(type) {
	case models.User:
		r.ID = id
		f.users = append(f.users, r)
	case models.Course:
		r.ID = id
		f.courses = append(f.courses, r)
	case models.Enrollment:
		r.ID = id
		f.enrollments = append(f.enrollments, r)
	}
	return id.Hex(), nil
}

func (f *fakeStore) GetDocuments(ctx context.Context, collection string, filter bson.M, results interface{}) error {
	switch out := results.(type) {
	case *[]models.User:
		for _, u := range f.users {
			if email, ok := filter["email"].(string); ok && u.Email != email {
				continue
			}
			if oid, ok := filter["_id"].(primitive.ObjectID); ok && u.ID != oid {
				continue
			}
			*out = append(*out, u)
		}
	case *[]models.Course:
		for _, c := range f.courses {
			if code, ok := filter["code"].(string); ok && c.Code != code {
				continue
			}
			if oid, ok := filter["_id"].(primitive.ObjectID); ok && c.ID != oid {
				continue
			}
			*out = append(*out, c)
		}
	case *[]models.Enrollment:
		for _, e := range f.enrollments {
			if uid, ok := filter["user_id"].(string); ok && e.UserID != uid {
				continue
			}
			if cid, ok := filter["course_id"].(string); ok && e.CourseID != cid {
				continue
			}
			*out = append(*out, e)
		}
	}
	return nil
}
