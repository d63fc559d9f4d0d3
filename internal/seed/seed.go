package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/app/repositories"
	"github.com/ardhiancalwa/Schola/internal/config"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
	"github.com/ardhiancalwa/Schola/internal/pkg/logger"
)

// CreateDefaultData creates the default teacher account if it doesn't exist,
// so a fresh deployment is immediately usable. The credentials are
// overridable through the environment.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	userRepo := repositories.NewUserRepository(dbPool)

	email := config.GetEnv("SEED_TEACHER_EMAIL", "guru@schola.id")
	password := config.GetEnv("SEED_TEACHER_PASSWORD", "password123")
	fullName := config.GetEnv("SEED_TEACHER_NAME", "Ibu Sari")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			logger.Debug().Str("email", email).Msg("Default teacher account already exists")
			return nil
		}
		return err
	}

	logger.Info().Str("email", email).Msg("Default teacher account created")
	return nil
}
