package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/coursecat/api/internal/app/models"
	appRepos "github.com/coursecat/api/internal/app/repositories"
	"github.com/coursecat/api/internal/pkg/apperrors"
)

// defaultRoles are created at startup when missing
var defaultRoles = []string{"admin", "user"}

// CreateDefaultData creates the default roles if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	roleRepo := appRepos.NewRoleRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default roles...")

	for _, name := range defaultRoles {
		exists, err := roleRepo.ExistsByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to check role %s: %w", name, err)
		}
		if exists {
			continue
		}

		role := appModels.Role{Name: name}
		if err := roleRepo.Create(ctx, &role); err != nil {
			// Another instance may have created it between the check and the insert
			if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
				continue
			}
			return fmt.Errorf("failed to create role %s: %w", name, err)
		}
		lgr.Info().Str("role", name).Int64("roleId", role.ID).Msg("Default role created")
	}

	return nil
}
