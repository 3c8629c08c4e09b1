package models

import "time"

// User is a registered donor, recipient or administrator.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"size:100" json:"first_name"`
	LastName    string    `gorm:"size:100" json:"last_name"`
	Email       string    `gorm:"size:100;index" json:"email"` // unique by convention only
	Mobile      string    `gorm:"size:100" json:"mobile"`
	Password    string    `gorm:"size:255" json:"-"`
	IsAdmin     bool      `gorm:"not null;default:false" json:"isAdmin"`
	Address     string    `gorm:"size:100" json:"address"`
	BloodGroup  string    `gorm:"size:3" json:"bloodGroup"`
	HospitalID  *uint     `json:"hospital_id"`
	IsAlive     bool      `gorm:"not null;default:false" json:"isAlive"`
	IsDonor     bool      `gorm:"not null;default:false" json:"isDonor"`
	IsRecipient bool      `gorm:"not null;default:false" json:"isRecipient"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FullName is "FIRST LAST", the display form used in donation histories.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
