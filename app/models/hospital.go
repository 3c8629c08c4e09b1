package models

// Hospital is static reference data seeded once.
type Hospital struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	HospitalName string `gorm:"size:100;not null" json:"hospital_name"`
	Address      string `gorm:"size:100" json:"address"`
}

// TableName keeps the singular table name of the existing schema.
func (Hospital) TableName() string {
	return "hospital"
}
