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

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	GetStudentEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetCourseEnrollments(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	Withdraw(ctx context.Context, studentID, courseID int64) error
}

type enrollmentServiceImpl struct {
	database *sql.DB
	repos    *repositories.Repositories
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(database *sql.DB) EnrollmentService {
	return &enrollmentServiceImpl{
		database: database,
		repos:    repositories.NewRepositories(database),
	}
}

// Enroll links a student to a course. The course is resolved before the student.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	enrollment, err := models.NewEnrollment(studentID, courseID)
	if err != nil {
		return nil, err
	}

	err = db.WithTransaction(ctx, s.database, func(ctx context.Context, tx *sql.Tx) error {
		repos := repositories.NewRepositories(tx)
		lookup := NewLookup(repos)

		if _, err := lookup.requireCourse(ctx, courseID); err != nil {
			return err
		}
		if _, err := lookup.requireStudent(ctx, studentID); err != nil {
			return err
		}

		if err := repos.EnrollmentRepository.Create(ctx, enrollment); err != nil {
			switch {
			case errors.Is(err, repositories.ErrDuplicate):
				return apperrors.NewConflictError(apperrors.CodeAlreadyEnrolled)
			case errors.Is(err, repositories.ErrForeignKey):
				return apperrors.NewInvalidCourseError()
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("enrollmentID", enrollment.ID).
		Int64("studentID", studentID).
		Int64("courseID", courseID).
		Msg("Student enrolled")
	return enrollment, nil
}

// GetStudentEnrollments lists a student's enrollments
func (s *enrollmentServiceImpl) GetStudentEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if _, err := NewLookup(s.repos).requireStudent(ctx, studentID); err != nil {
		return nil, err
	}

	enrollments, err := s.repos.EnrollmentRepository.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student enrollments: %w", err)
	}
	if len(enrollments) == 0 {
		return nil, apperrors.NewResourceNotFoundError(apperrors.CodeStudentNotEnrolled)
	}
	return enrollments, nil
}

// GetCourseEnrollments lists the enrollments in a course
func (s *enrollmentServiceImpl) GetCourseEnrollments(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	if _, err := NewLookup(s.repos).requireCourse(ctx, courseID); err != nil {
		return nil, err
	}

	enrollments, err := s.repos.EnrollmentRepository.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course enrollments: %w", err)
	}
	if len(enrollments) == 0 {
		return nil, apperrors.NewResourceNotFoundError(apperrors.CodeCourseHasNoStudents)
	}
	return enrollments, nil
}

// Withdraw removes a student from a course. The student is resolved before the course.
func (s *enrollmentServiceImpl) Withdraw(ctx context.Context, studentID, courseID int64) error {
	err := db.WithTransaction(ctx, s.database, func(ctx context.Context, tx *sql.Tx) error {
		repos := repositories.NewRepositories(tx)
		lookup := NewLookup(repos)

		if _, err := lookup.requireStudent(ctx, studentID); err != nil {
			return err
		}
		if _, err := lookup.requireCourse(ctx, courseID); err != nil {
			return err
		}

		enrollment, err := repos.EnrollmentRepository.GetByStudentAndCourse(ctx, studentID, courseID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError(apperrors.CodeEnrollmentNotFound)
			}
			return fmt.Errorf("error retrieving enrollment: %w", err)
		}

		if err := repos.EnrollmentRepository.Delete(ctx, enrollment.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError(apperrors.CodeEnrollmentNotFound)
			}
			return fmt.Errorf("error deleting enrollment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Student withdrawn")
	return nil
}
