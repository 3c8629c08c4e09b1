package repositories

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/pkg/orm"
)

// DonationRepository writes donation rows and assembles per-user histories.
type DonationRepository struct{}

func NewDonationRepository() *DonationRepository {
	return &DonationRepository{}
}

func (r *DonationRepository) Create(ctx context.Context, d *models.Donation) error {
	return orm.DB(ctx).Create(d)
}

type historyRow struct {
	OrganName     string
	Status        *string
	CounterpartID *uint
	FirstName     *string
	LastName      *string
}

// History lists the donations where userID sits on role's side, oldest
// first. Rows whose organ no longer resolves are dropped; the counterpart is
// left-joined so unmatched rows keep a nil name. An unknown user yields an
// empty slice.
func (r *DonationRepository) History(ctx context.Context, userID uint, role Role) ([]models.HistoryEntry, error) {
	partyCol, counterpartCol := role.columns()

	var rows []historyRow
	err := orm.DB(ctx).Table("donations").
		Select("organs.organ_name AS organ_name, donations.status AS status, "+
			"counterpart.id AS counterpart_id, counterpart.first_name AS first_name, counterpart.last_name AS last_name").
		Joins(fmt.Sprintf("JOIN users AS party ON party.id = donations.%s", partyCol)).
		Joins("JOIN organs ON organs.id = donations.organ_id").
		Joins(fmt.Sprintf("LEFT JOIN users AS counterpart ON counterpart.id = donations.%s", counterpartCol)).
		Where("party.id = ?", userID).
		Order("donations.id ASC").
		Scan(&rows)
	if err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry := models.HistoryEntry{OrganName: row.OrganName, Status: row.Status}
		if row.CounterpartID != nil {
			name := deref(row.FirstName) + " " + deref(row.LastName)
			entry.CounterpartName = &name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
