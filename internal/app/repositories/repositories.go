package repositories

import "github.com/lmshub/lms-backend/internal/store"

// Repositories is the container for all typed record readers. Each
// repository is a thin mapping layer between the generic record accessor
// and the domain models; no business rules live here.
type Repositories struct {
	Users       *UserRepository
	Courses     *CourseRepository
	Enrollments *EnrollmentRepository
	Progress    *ProgressRepository
}

// NewRepositories creates all repositories over one record store.
func NewRepositories(st store.Store) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(st),
		Courses:     NewCourseRepository(st),
		Enrollments: NewEnrollmentRepository(st),
		Progress:    NewProgressRepository(st),
	}
}
