package models

import "time"

// Donation records one side of a donor/recipient transaction. A contribution
// sets DonorID, a request sets RecipientID and Reason; nothing in the system
// fills the other side or Status afterwards.
type Donation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DonorID     *uint     `gorm:"index" json:"donor_id"`
	RecipientID *uint     `gorm:"index" json:"recipient_id"`
	OrganID     uint      `gorm:"not null;index" json:"organ_id"`
	Status      *string   `gorm:"size:100" json:"status"`
	Reason      *string   `gorm:"size:255" json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}
