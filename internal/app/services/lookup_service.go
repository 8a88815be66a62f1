package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/app/repositories"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

// Lookup answers existence and uniqueness questions against whatever store
// handle its repositories are bound to. It never writes.
type Lookup struct {
	repos *repositories.Repositories
}

// NewLookup creates a Lookup over repos
func NewLookup(repos *repositories.Repositories) *Lookup {
	return &Lookup{repos: repos}
}

// RollNumberExists reports whether a student currently holds rollNumber
func (l *Lookup) RollNumberExists(ctx context.Context, rollNumber string) (bool, error) {
	return l.RollNumberTakenByOther(ctx, rollNumber, 0)
}

// RollNumberTakenByOther reports whether a student other than studentID holds rollNumber
func (l *Lookup) RollNumberTakenByOther(ctx context.Context, rollNumber string, studentID int64) (bool, error) {
	exists, err := l.repos.StudentRepository.ExistsByRollNumber(ctx, rollNumber, studentID)
	if err != nil {
		return false, fmt.Errorf("error checking roll number: %w", err)
	}
	return exists, nil
}

// CourseCodeExists reports whether a course currently uses courseCode
func (l *Lookup) CourseCodeExists(ctx context.Context, courseCode string) (bool, error) {
	return l.CourseCodeTakenByOther(ctx, courseCode, 0)
}

// CourseCodeTakenByOther reports whether a course other than courseID uses courseCode
func (l *Lookup) CourseCodeTakenByOther(ctx context.Context, courseCode string, courseID int64) (bool, error) {
	exists, err := l.repos.CourseRepository.ExistsByCode(ctx, courseCode, courseID)
	if err != nil {
		return false, fmt.Errorf("error checking course code: %w", err)
	}
	return exists, nil
}

// FindStudent returns the student or a not-found error
func (l *Lookup) FindStudent(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewResourceNotFoundError(apperrors.CodeStudentNotFound)
	}
	student, err := l.repos.StudentRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.CodeStudentNotFound)
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// FindCourse returns the course or a not-found error
func (l *Lookup) FindCourse(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewResourceNotFoundError(apperrors.CodeCourseNotFound)
	}
	course, err := l.repos.CourseRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.CodeCourseNotFound)
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// requireStudent resolves a student referenced by an enrollment flow,
// reporting absence as an invalid-student error
func (l *Lookup) requireStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := l.FindStudent(ctx, id)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, apperrors.NewInvalidStudentError()
	}
	return student, err
}

// requireCourse resolves a course referenced by an enrollment flow,
// reporting absence as an invalid-course error
func (l *Lookup) requireCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := l.FindCourse(ctx, id)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, apperrors.NewInvalidCourseError()
	}
	return course, err
}

// requireCourses resolves every course in ids, failing with an
// invalid-course error if any is absent
func (l *Lookup) requireCourses(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := l.repos.CourseRepository.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error retrieving courses: %w", err)
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return apperrors.NewInvalidCourseError()
		}
	}
	return nil
}
