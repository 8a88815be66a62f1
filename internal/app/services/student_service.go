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

// StudentInput carries the user-supplied fields of a student.
// CourseIDs nil leaves enrollments untouched; on update a non-nil slice
// replaces the student's enrollments with exactly those courses.
type StudentInput struct {
	RollNumber string
	FirstName  string
	LastName   *string
	CourseIDs  []int64
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, input StudentInput) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, input StudentInput) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	database *sql.DB
	repos    *repositories.Repositories
}

// NewStudentService creates a new student service instance
func NewStudentService(database *sql.DB) StudentService {
	return &studentServiceImpl{
		database: database,
		repos:    repositories.NewRepositories(database),
	}
}

// CreateStudent validates and inserts a student, enrolling it in any
// requested courses within the same transaction
func (s *studentServiceImpl) CreateStudent(ctx context.Context, input StudentInput) (*models.Student, error) {
	student, err := models.NewStudent(input.RollNumber, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}
	courseIDs := dedupeIDs(input.CourseIDs)

	err = db.WithTransaction(ctx, s.database, func(ctx context.Context, tx *sql.Tx) error {
		repos := repositories.NewRepositories(tx)
		lookup := NewLookup(repos)

		exists, err := lookup.RollNumberExists(ctx, student.RollNumber)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewConflictError(apperrors.CodeStudentExists)
		}

		if err := lookup.requireCourses(ctx, courseIDs); err != nil {
			return err
		}

		if err := repos.StudentRepository.Create(ctx, student); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return apperrors.NewConflictError(apperrors.CodeStudentExists)
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		return enrollInCourses(ctx, repos, student.ID, courseIDs)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", student.ID).Str("rollNumber", student.RollNumber).
		Int("courses", len(courseIDs)).Msg("Student created")
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return NewLookup(s.repos).FindStudent(ctx, id)
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.repos.StudentRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent replaces a student's fields. A roll number held by another
// student is a conflict.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, input StudentInput) (*models.Student, error) {
	var updated *models.Student

	err := db.WithTransaction(ctx, s.database, func(ctx context.Context, tx *sql.Tx) error {
		repos := repositories.NewRepositories(tx)
		lookup := NewLookup(repos)

		if _, err := lookup.FindStudent(ctx, id); err != nil {
			return err
		}

		student, err := models.NewStudent(input.RollNumber, input.FirstName, input.LastName)
		if err != nil {
			return err
		}
		student.ID = id

		taken, err := lookup.RollNumberTakenByOther(ctx, student.RollNumber, id)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewConflictError(apperrors.CodeStudentExists)
		}

		if err := repos.StudentRepository.Update(ctx, student); err != nil {
			switch {
			case errors.Is(err, repositories.ErrDuplicate):
				return apperrors.NewConflictError(apperrors.CodeStudentExists)
			case errors.Is(err, repositories.ErrNotFound):
				return apperrors.NewResourceNotFoundError(apperrors.CodeStudentNotFound)
			}
			return fmt.Errorf("error updating student: %w", err)
		}

		if input.CourseIDs != nil {
			if err := replaceEnrollments(ctx, repos, lookup, id, dedupeIDs(input.CourseIDs)); err != nil {
				return err
			}
		}

		updated = student
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", id).Msg("Student updated")
	return updated, nil
}

// DeleteStudent removes a student together with its enrollments
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	var removed int64

	err := db.WithTransaction(ctx, s.database, func(ctx context.Context, tx *sql.Tx) error {
		repos := repositories.NewRepositories(tx)

		if _, err := NewLookup(repos).FindStudent(ctx, id); err != nil {
			return err
		}

		n, err := repos.EnrollmentRepository.DeleteByStudentID(ctx, id)
		if err != nil {
			return fmt.Errorf("error removing student enrollments: %w", err)
		}
		removed = n

		if err := repos.StudentRepository.Delete(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError(apperrors.CodeStudentNotFound)
			}
			return fmt.Errorf("error deleting student: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("studentID", id).Int64("enrollmentsRemoved", removed).Msg("Student deleted")
	return nil
}

// enrollInCourses links a student to each course; courses must already be resolved
func enrollInCourses(ctx context.Context, repos *repositories.Repositories, studentID int64, courseIDs []int64) error {
	for _, courseID := range courseIDs {
		enrollment := &models.Enrollment{StudentID: studentID, CourseID: courseID}
		if err := repos.EnrollmentRepository.Create(ctx, enrollment); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return apperrors.NewConflictError(apperrors.CodeAlreadyEnrolled)
			}
			return fmt.Errorf("error enrolling student in course %d: %w", courseID, err)
		}
	}
	return nil
}

// replaceEnrollments makes the student's enrollments match courseIDs,
// keeping existing rows for courses that stay
func replaceEnrollments(ctx context.Context, repos *repositories.Repositories, lookup *Lookup, studentID int64, courseIDs []int64) error {
	if err := lookup.requireCourses(ctx, courseIDs); err != nil {
		return err
	}

	current, err := repos.EnrollmentRepository.GetByStudentID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("error retrieving student enrollments: %w", err)
	}

	wanted := make(map[int64]bool, len(courseIDs))
	for _, id := range courseIDs {
		wanted[id] = true
	}

	for _, e := range current {
		if wanted[e.CourseID] {
			delete(wanted, e.CourseID)
			continue
		}
		if err := repos.EnrollmentRepository.Delete(ctx, e.ID); err != nil {
			return fmt.Errorf("error removing enrollment %d: %w", e.ID, err)
		}
	}

	toAdd := make([]int64, 0, len(wanted))
	for _, id := range courseIDs {
		if wanted[id] {
			toAdd = append(toAdd, id)
		}
	}
	return enrollInCourses(ctx, repos, studentID, toAdd)
}
