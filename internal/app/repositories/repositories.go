package repositories

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kaan/degreeplan/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	TokenRepository   *TokenRepository
	CourseRepository  *CourseRepository
	ProgramRepository *ProgramRepository
	PlanRepository    *PlanRepository
}

// NewRepositories initializes all repositories. The redis client may be nil,
// in which case catalog lookups always hit the database.
func NewRepositories(database *db.PostgresDB, rdb *redis.Client, cacheTTL time.Duration) *Repositories {
	pool := database.Pool
	return &Repositories{
		UserRepository:    NewUserRepository(pool),
		TokenRepository:   NewTokenRepository(pool),
		CourseRepository:  NewCourseRepository(pool, NewCatalogCache(rdb, cacheTTL)),
		ProgramRepository: NewProgramRepository(pool),
		PlanRepository:    NewPlanRepository(database),
	}
}
