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

var studentColumns = []string{"student_id", "roll_number", "first_name", "last_name"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	var (
		student  models.Student
		lastName sql.NullString
	)
	if err := row.Scan(&student.ID, &student.RollNumber, &student.FirstName, &lastName); err != nil {
		return nil, err
	}
	student.LastName = helpers.NullStringPtr(lastName)
	return &student, nil
}

// Create inserts a student and sets its generated ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Insert("students").
		Columns("roll_number", "first_name", "last_name").
		Values(student.RollNumber, student.FirstName, helpers.GetNullString(student.LastName)).
		Suffix("RETURNING student_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&student.ID); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		logger.Error().Err(err).Str("rollNumber", student.RollNumber).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetAll retrieves every student ordered by ID
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// ExistsByRollNumber reports whether any student other than excludeID holds
// rollNumber. Pass excludeID 0 to check all students.
func (r *StudentRepository) ExistsByRollNumber(ctx context.Context, rollNumber string, excludeID int64) (bool, error) {
	where := squirrel.And{squirrel.Eq{"roll_number": rollNumber}}
	if excludeID > 0 {
		where = append(where, squirrel.NotEq{"student_id": excludeID})
	}

	query, args, err := r.sb.Select("1").
		From("students").
		Where(where).
		Limit(1).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("rollNumber", rollNumber).Msg("Error checking roll number existence")
		return false, fmt.Errorf("error checking roll number existence: %w", err)
	}

	return exists, nil
}

// Update replaces the user-visible fields of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"roll_number": student.RollNumber,
			"first_name":  student.FirstName,
			"last_name":   helpers.GetNullString(student.LastName),
		}).
		Where(squirrel.Eq{"student_id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	return requireAffected(res)
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	return requireAffected(res)
}

// requireAffected maps a zero-row write to ErrNotFound
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
