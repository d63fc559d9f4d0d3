package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories contains all repository instances
type Repositories struct {
	UserRepository       *UserRepository
	ClassRepository      *ClassRepository
	StudentRepository    *StudentRepository
	AttendanceRepository *AttendanceRepository
	CalendarRepository   *CalendarRepository
	AnalysisRepository   *AnalysisRepository
}

// NewRepositories creates all repositories over the shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		ClassRepository:      NewClassRepository(db),
		StudentRepository:    NewStudentRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		CalendarRepository:   NewCalendarRepository(db),
		AnalysisRepository:   NewAnalysisRepository(db),
	}
}
