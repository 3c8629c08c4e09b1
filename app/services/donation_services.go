package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/app/repositories"
	"github.com/shashiranjanraj/donorlink/pkg/errs"
	"github.com/shashiranjanraj/donorlink/pkg/logger"
	"github.com/shashiranjanraj/donorlink/pkg/metrics"
	"gorm.io/gorm"
)

const (
	MsgContributionPlaced = "Contribution Placed successfully"
	MsgRequestPlaced      = "Request Placed successfully"
)

// DonationService records one-sided donation rows and reads histories.
// Neither write fills the other party or a status.
type DonationService struct {
	users     *repositories.UserRepository
	organs    *repositories.OrganRepository
	donations *repositories.DonationRepository
}

func NewDonationService() *DonationService {
	return &DonationService{
		users:     repositories.NewUserRepository(),
		organs:    repositories.NewOrganRepository(),
		donations: repositories.NewDonationRepository(),
	}
}

// Contribute records userID offering organID.
func (s *DonationService) Contribute(ctx context.Context, userID, organID uint) error {
	if err := s.resolve(ctx, userID, organID); err != nil {
		return err
	}
	d := models.Donation{DonorID: &userID, OrganID: organID}
	return s.record(ctx, &d, "contribution")
}

// Request records userID asking for organID with a free-text reason.
func (s *DonationService) Request(ctx context.Context, userID, organID uint, reason string) error {
	if err := s.resolve(ctx, userID, organID); err != nil {
		return err
	}
	d := models.Donation{RecipientID: &userID, OrganID: organID, Reason: &reason}
	return s.record(ctx, &d, "request")
}

// Contributions is the donor-side history of userID.
func (s *DonationService) Contributions(ctx context.Context, userID uint) ([]models.HistoryEntry, error) {
	return s.history(ctx, userID, repositories.AsDonor)
}

// Requests is the recipient-side history of userID.
func (s *DonationService) Requests(ctx context.Context, userID uint) ([]models.HistoryEntry, error) {
	return s.history(ctx, userID, repositories.AsRecipient)
}

// resolve checks the user first, then the organ.
func (s *DonationService) resolve(ctx context.Context, userID, organID uint) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolve user %d: %w", userID, err)
	}
	if !ok {
		return errs.NewNotFoundError(fmt.Sprintf("User ID %d : Does Not Exists", userID))
	}

	_, err = s.organs.FindByID(ctx, organID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFoundError(fmt.Sprintf("Organ ID %d : Does Not Exists", organID))
	}
	if err != nil {
		return fmt.Errorf("resolve organ %d: %w", organID, err)
	}
	return nil
}

func (s *DonationService) record(ctx context.Context, d *models.Donation, kind string) error {
	if err := s.donations.Create(ctx, d); err != nil {
		return fmt.Errorf("record %s: %w", kind, err)
	}
	metrics.DonationsRecorded.WithLabelValues(kind).Inc()
	logger.WithCtx(ctx).Info("donation recorded", "kind", kind, "donation_id", d.ID, "organ_id", d.OrganID)
	return nil
}

func (s *DonationService) history(ctx context.Context, userID uint, role repositories.Role) ([]models.HistoryEntry, error) {
	entries, err := s.donations.History(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("%s history for user %d: %w", role, userID, err)
	}
	return entries, nil
}
