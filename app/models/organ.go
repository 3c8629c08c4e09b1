package models

// Organ is static reference data seeded once.
type Organ struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OrganName string `gorm:"size:100;not null" json:"organ_name"`
}
