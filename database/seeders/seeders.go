// Package seeders bootstraps the reference data every deployment needs: one
// administrator, the organ catalog and the hospital list. Each step checks a
// row count first, so Run can be called on every start.
//
//	donorlink seed
package seeders

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/app/repositories"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/shashiranjanraj/donorlink/pkg/cache"
	"github.com/shashiranjanraj/donorlink/pkg/database"
	"github.com/shashiranjanraj/donorlink/pkg/logger"
	"gorm.io/gorm"
)

var organNames = []string{
	"Kidney",
	"Liver",
	"Eye",
	"Heart",
	"Lungs",
	"Pancreas",
	"Intestines",
}

var hospitalNames = []string{
	"Apollo Hospital",
	"Medanta",
	"Fortis Hospital",
	"BLK Hospital",
	"AIIMS",
	"Max Super Speciality Hospital",
}

const (
	adminEmail    = "admin@gmail.com"
	adminPassword = "root"
)

// Run seeds db, skipping every step whose table already has rows.
func Run(ctx context.Context, db *gorm.DB, hasher auth.PasswordHasher) error {
	_, err := run(database.WithDB(ctx, db), hasher)
	return err
}

// RunCtx seeds through the session already carried by ctx, as inside a
// request.
func RunCtx(ctx context.Context, hasher auth.PasswordHasher) error {
	_, err := run(ctx, hasher)
	return err
}

type step struct {
	name string
	fn   func(context.Context, auth.PasswordHasher) (bool, error)
}

var steps = []step{
	{"admin", seedAdmin},
	{"organs", seedOrgans},
	{"hospitals", seedHospitals},
}

func run(ctx context.Context, hasher auth.PasswordHasher) (inserted bool, err error) {
	for _, s := range steps {
		did, err := s.fn(ctx, hasher)
		if err != nil {
			return inserted, fmt.Errorf("seeder %q: %w", s.name, err)
		}
		if !did {
			logger.WithCtx(ctx).Debug("seed step skipped, rows present", "step", s.name)
			continue
		}
		logger.WithCtx(ctx).Info("seeded", "step", s.name)
		inserted = true
	}

	if inserted {
		if err := cache.Del(ctx, repositories.CatalogKeys...); err != nil {
			logger.WithCtx(ctx).Warn("seeders: cache invalidation failed", "error", err)
		}
	}
	return inserted, nil
}

func seedAdmin(ctx context.Context, hasher auth.PasswordHasher) (bool, error) {
	users := repositories.NewUserRepository()
	n, err := users.CountAdmins(ctx)
	if err != nil || n > 0 {
		return false, err
	}

	hashed, err := hasher.Hash(adminPassword)
	if err != nil {
		return false, err
	}
	admin := models.User{
		FirstName: "admin",
		LastName:  "",
		Email:     adminEmail,
		Mobile:    "",
		Password:  hashed,
		IsAdmin:   true,
	}
	return true, users.Create(ctx, &admin)
}

func seedOrgans(ctx context.Context, _ auth.PasswordHasher) (bool, error) {
	organs := repositories.NewOrganRepository()
	n, err := organs.Count(ctx)
	if err != nil || n > 0 {
		return false, err
	}

	rows := make([]models.Organ, len(organNames))
	for i, name := range organNames {
		rows[i] = models.Organ{OrganName: name}
	}
	return true, organs.Create(ctx, rows)
}

func seedHospitals(ctx context.Context, _ auth.PasswordHasher) (bool, error) {
	hospitals := repositories.NewHospitalRepository()
	n, err := hospitals.Count(ctx)
	if err != nil || n > 0 {
		return false, err
	}

	rows := make([]models.Hospital, len(hospitalNames))
	for i, name := range hospitalNames {
		rows[i] = models.Hospital{HospitalName: name}
	}
	return true, hospitals.Create(ctx, rows)
}
