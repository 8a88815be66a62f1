package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/pkg/dberrors"
	"github.com/yigit/coursereg/internal/pkg/helpers"
	"github.com/yigit/coursereg/internal/pkg/logger"
)

var courseColumns = []string{"course_id", "course_name", "course_code", "course_description"}

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanCourse(row interface{ Scan(...interface{}) error }) (*models.Course, error) {
	var (
		course      models.Course
		description sql.NullString
	)
	if err := row.Scan(&course.ID, &course.Name, &course.Code, &description); err != nil {
		return nil, err
	}
	course.Description = helpers.NullStringPtr(description)
	return &course, nil
}

// Create inserts a course and sets its generated ID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Insert("courses").
		Columns("course_name", "course_code", "course_description").
		Values(course.Name, course.Code, helpers.GetNullString(course.Description)).
		Suffix("RETURNING course_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&course.ID); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		logger.Error().Err(err).Str("courseCode", course.Code).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"course_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetByIDs retrieves the courses among ids that exist, keyed by ID
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Course, error) {
	courses := make(map[int64]*models.Course, len(ids))
	if len(ids) == 0 {
		return courses, nil
	}

	query, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"course_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get courses query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get courses by IDs query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses[course.ID] = course
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetAll retrieves every course ordered by ID
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query, args, err := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// ExistsByCode reports whether any course other than excludeID uses code.
// Pass excludeID 0 to check all courses.
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	where := squirrel.And{squirrel.Eq{"course_code": code}}
	if excludeID > 0 {
		where = append(where, squirrel.NotEq{"course_id": excludeID})
	}

	query, args, err := r.sb.Select("1").
		From("courses").
		Where(where).
		Limit(1).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build course existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("courseCode", code).Msg("Error checking course code existence")
		return false, fmt.Errorf("error checking course code existence: %w", err)
	}

	return exists, nil
}

// Update replaces the user-visible fields of an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"course_name":        course.Name,
			"course_code":        course.Code,
			"course_description": helpers.GetNullString(course.Description),
		}).
		Where(squirrel.Eq{"course_id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	return requireAffected(res)
}

// Delete removes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"course_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	return requireAffected(res)
}
