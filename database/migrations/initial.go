package migrations

import (
	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_organs_table", &CreateOrgansTable{})
	migration.Register("20260101000002_create_hospital_table", &CreateHospitalTable{})
	migration.Register("20260101000003_create_donations_table", &CreateDonationsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: organs --------

type CreateOrgansTable struct{}

func (m *CreateOrgansTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Organ{})
}

func (m *CreateOrgansTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("organs")
}

// -------- 0003: hospital --------

type CreateHospitalTable struct{}

func (m *CreateHospitalTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Hospital{})
}

func (m *CreateHospitalTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("hospital")
}

// -------- 0004: donations --------

type CreateDonationsTable struct{}

func (m *CreateDonationsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Donation{})
}

func (m *CreateDonationsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("donations")
}
