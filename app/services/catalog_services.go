package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/app/repositories"
)

// CatalogService serves the seeded organ and hospital reference lists.
type CatalogService struct {
	organs    *repositories.OrganRepository
	hospitals *repositories.HospitalRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		organs:    repositories.NewOrganRepository(),
		hospitals: repositories.NewHospitalRepository(),
	}
}

func (s *CatalogService) Organs(ctx context.Context) ([]models.Organ, error) {
	organs, err := s.organs.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organs: %w", err)
	}
	return organs, nil
}

func (s *CatalogService) Hospitals(ctx context.Context) ([]models.Hospital, error) {
	hospitals, err := s.hospitals.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	return hospitals, nil
}
