package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/pkg/dberrors"
	"github.com/yigit/coursereg/internal/pkg/logger"
)

var enrollmentColumns = []string{"enrollment_id", "student_id", "course_id"}

// EnrollmentRepository handles database operations for student/course links
type EnrollmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts an enrollment and sets its generated ID
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id").
		Values(enrollment.StudentID, enrollment.CourseID).
		Suffix("RETURNING enrollment_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&enrollment.ID); err != nil {
		switch {
		case dberrors.IsDuplicateKeyError(err):
			return ErrDuplicate
		case dberrors.IsForeignKeyError(err):
			return ErrForeignKey
		}
		logger.Error().Err(err).
			Int64("studentID", enrollment.StudentID).
			Int64("courseID", enrollment.CourseID).
			Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByStudentID lists a student's enrollments ordered by enrollment ID
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID})
}

// GetByCourseID lists a course's enrollments ordered by enrollment ID
func (r *EnrollmentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return r.list(ctx, squirrel.Eq{"course_id": courseID})
}

func (r *EnrollmentRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.Enrollment, error) {
	query, args, err := r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(where).
		OrderBy("enrollment_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// GetByStudentAndCourse retrieves the enrollment linking a student to a course
func (r *EnrollmentRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	query, args, err := r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	var e models.Enrollment
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.StudentID, &e.CourseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting enrollment: %w", err)
	}

	return &e, nil
}

// Delete removes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"enrollment_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	return requireAffected(res)
}

// DeleteByStudentID removes all of a student's enrollments and returns how many were removed
func (r *EnrollmentRepository) DeleteByStudentID(ctx context.Context, studentID int64) (int64, error) {
	return r.deleteWhere(ctx, squirrel.Eq{"student_id": studentID})
}

// DeleteByCourseID removes all enrollments in a course and returns how many were removed
func (r *EnrollmentRepository) DeleteByCourseID(ctx context.Context, courseID int64) (int64, error) {
	return r.deleteWhere(ctx, squirrel.Eq{"course_id": courseID})
}

func (r *EnrollmentRepository) deleteWhere(ctx context.Context, where squirrel.Eq) (int64, error) {
	query, args, err := r.sb.Delete("enrollments").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete enrollments query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete enrollments query")
		return 0, fmt.Errorf("error deleting enrollments: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}
	return n, nil
}
