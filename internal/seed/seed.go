package seed

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursereg/internal/app/models"
	appRepos "github.com/yigit/coursereg/internal/app/repositories"
)

func strPtr(s string) *string { return &s }

// DefaultCourses is the catalog inserted by CreateDefaultData
var DefaultCourses = []appModels.Course{
	{Name: "Introduction to Programming", Code: "CS101", Description: strPtr("Variables, control flow and functions")},
	{Name: "Data Structures", Code: "CS201", Description: strPtr("Lists, trees, hash tables and graphs")},
	{Name: "Databases", Code: "CS301", Description: strPtr("Relational modelling and SQL")},
	{Name: "Linear Algebra", Code: "MA201"},
}

// CreateDefaultData creates the default course catalog. Courses whose code
// already exists are left untouched, so running it twice is harmless.
func CreateDefaultData(ctx context.Context, database *sql.DB, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(database)

	lgr.Info().Msg("Checking/Creating default data (Courses)...")
	var finalErr error // collect errors without stopping the process
	created := 0

	for _, c := range DefaultCourses {
		course := c
		exists, err := courseRepo.ExistsByCode(ctx, course.Code, 0)
		if err != nil {
			lgr.Error().Err(err).Str("courseCode", course.Code).Msg("Error checking default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		if err := courseRepo.Create(ctx, &course); err != nil {
			if errors.Is(err, appRepos.ErrDuplicate) {
				continue
			}
			lgr.Error().Err(err).Str("courseCode", course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("created", created).Msg("Default data check complete")
	return finalErr
}
