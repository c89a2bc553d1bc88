package seed

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lmshub/lms-backend/internal/store"
)

// demo courses inserted on first start so the dashboard, search and
// recommendation endpoints have something to serve in development.
var demoCourses = []store.Record{
	{
		"name":               "intro-to-python",
		"title":              "Introduction to Python",
		"short_introduction": "Learn Python from scratch with hands-on exercises",
		"image":              "/assets/courses/python.png",
		"tags":               "programming,python,beginner",
		"published":          true,
		"owner":              "instructor@lmshub.app",
	},
	{
		"name":               "data-analysis-basics",
		"title":              "Data Analysis Basics",
		"short_introduction": "Explore datasets with Python and pandas",
		"image":              "/assets/courses/data.png",
		"tags":               "data,python",
		"published":          true,
		"owner":              "instructor@lmshub.app",
	},
	{
		"name":               "web-development-101",
		"title":              "Web Development 101",
		"short_introduction": "HTML, CSS and JavaScript fundamentals",
		"image":              "/assets/courses/web.png",
		"tags":               "",
		"published":          true,
		"owner":              "instructor@lmshub.app",
	},
	{
		"name":               "advanced-databases-draft",
		"title":              "Advanced Databases",
		"short_introduction": "Query planning, indexing and replication",
		"image":              "",
		"tags":               "databases",
		"published":          false,
		"owner":              "instructor@lmshub.app",
	},
}

// CreateDefaultData seeds demo users and courses when the store is empty.
// Errors are reported to the caller but seeding is best effort; a partial
// seed never blocks startup.
func CreateDefaultData(ctx context.Context, st store.Store, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (users/courses)...")

	existing, err := st.Query(ctx, store.EntityCourse, store.Query{Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Msg("Courses already present, skipping seed")
		return nil
	}

	users := []store.Record{
		{"name": "instructor@lmshub.app", "email": "instructor@lmshub.app", "full_name": "Demo Instructor"},
		{"name": "student@lmshub.app", "email": "student@lmshub.app", "full_name": "Demo Student"},
	}
	for _, user := range users {
		if _, err := st.Insert(ctx, store.EntityUser, user); err != nil {
			lgr.Error().Err(err).Str("user", user.Str("name")).Msg("Error seeding user")
		}
	}

	for _, course := range demoCourses {
		if _, err := st.Insert(ctx, store.EntityCourse, course); err != nil {
			lgr.Error().Err(err).Str("course", course.Str("name")).Msg("Error seeding course")
		}
	}

	lgr.Info().Int("courses", len(demoCourses)).Msg("Default data created")
	return nil
}
