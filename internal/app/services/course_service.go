package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/app/repositories"
	"github.com/yigit/coursereg/internal/db"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
	"github.com/yigit/coursereg/internal/pkg/logger"
)

// CourseInput carries the user-supplied fields of a course
type CourseInput struct {
	Name        string
	Code        string
	Description *string
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, input CourseInput) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, input CourseInput) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	database *sql.DB
	repos    *repositories.Repositories
}

// NewCourseService creates a new course service instance
func NewCourseService(database *sql.DB) CourseService {
	return &courseServiceImpl{
		database: database,
		repos:    repositories.NewRepositories(database),
	}
}

// CreateCourse validates and inserts a course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, input CourseInput) (*models.Course, error) {
	course, err := models.NewCourse(input.Name, input.Code, input.Description)
	if err != nil {
		return nil, err
	}

	err = db.WithTransaction(ctx, s.database, func(ctx context.Context, tx *sql.Tx) error {
		repos := repositories.NewRepositories(tx)

		exists, err := NewLookup(repos).CourseCodeExists(ctx, course.Code)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewConflictError(apperrors.CodeCourseCodeExists)
		}

		if err := repos.CourseRepository.Create(ctx, course); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return apperrors.NewConflictError(apperrors.CodeCourseCodeExists)
			}
			return fmt.Errorf("error creating course: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("courseID", course.ID).Str("courseCode", course.Code).Msg("Course created")
	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return NewLookup(s.repos).FindCourse(ctx, id)
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.repos.CourseRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse replaces a course's fields
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, input CourseInput) (*models.Course, error) {
	var updated *models.Course

	err := db.WithTransaction(ctx, s.database, func(ctx context.Context, tx *sql.Tx) error {
		repos := repositories.NewRepositories(tx)
		lookup := NewLookup(repos)

		if _, err := lookup.FindCourse(ctx, id); err != nil {
			return err
		}

		course, err := models.NewCourse(input.Name, input.Code, input.Description)
		if err != nil {
			return err
		}
		course.ID = id

		taken, err := lookup.CourseCodeTakenByOther(ctx, course.Code, id)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewConflictError(apperrors.CodeCourseCodeExists)
		}

		if err := repos.CourseRepository.Update(ctx, course); err != nil {
			switch {
			case errors.Is(err, repositories.ErrDuplicate):
				return apperrors.NewConflictError(apperrors.CodeCourseCodeExists)
			case errors.Is(err, repositories.ErrNotFound):
				return apperrors.NewResourceNotFoundError(apperrors.CodeCourseNotFound)
			}
			return fmt.Errorf("error updating course: %w", err)
		}

		updated = course
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("courseID", id).Msg("Course updated")
	return updated, nil
}

// DeleteCourse removes a course and every enrollment in it
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	var removed int64

	err := db.WithTransaction(ctx, s.database, func(ctx context.Context, tx *sql.Tx) error {
		repos := repositories.NewRepositories(tx)

		if _, err := NewLookup(repos).FindCourse(ctx, id); err != nil {
			return err
		}

		n, err := repos.EnrollmentRepository.DeleteByCourseID(ctx, id)
		if err != nil {
			return fmt.Errorf("error removing course enrollments: %w", err)
		}
		removed = n

		if err := repos.CourseRepository.Delete(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError(apperrors.CodeCourseNotFound)
			}
			return fmt.Errorf("error deleting course: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("courseID", id).Int64("enrollmentsRemoved", removed).Msg("Course deleted")
	return nil
}
