// Package seed creates development fixtures on startup
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/tanish/hostelhub/internal/app/models"
	appRepos "github.com/tanish/hostelhub/internal/app/repositories"
	"github.com/tanish/hostelhub/internal/config"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
	"github.com/tanish/hostelhub/internal/pkg/auth"
)

// CreateDefaultData registers one admin account per support department so a
// fresh development database can accept complaints immediately. Existing
// accounts are left untouched.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	if !cfg.Seed.Enabled {
		lgr.Debug().Msg("Seeding disabled, skipping default data")
		return nil
	}

	supportRepo := appRepos.NewSupportDeptRepository(dbPool)

	hashed, err := auth.HashPassword(cfg.Seed.DefaultPassword)
	if err != nil {
		return err
	}

	lgr.Info().Msg("Checking/Creating default support department admins...")
	var finalErr error

	for _, dName := range appModels.DepartmentNames {
		dept := &appModels.SupportDepartment{
			DName:         dName,
			Email:         string(dName) + "-admin@hostelhub.app",
			Password:      hashed,
			StaffCapacity: 5,
		}

		err := supportRepo.Create(ctx, dept)
		switch {
		case err == nil:
			lgr.Info().Str("d_name", string(dName)).Msg("Default support admin created")
		case errors.Is(err, apperrors.ErrDepartmentExists), errors.Is(err, apperrors.ErrEmailExists):
			// already seeded
		default:
			lgr.Error().Err(err).Str("d_name", string(dName)).Msg("Error creating default support admin")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
