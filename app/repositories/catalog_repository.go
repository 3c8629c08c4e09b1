package repositories

import (
	"context"
	"time"

	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/config"
	"github.com/shashiranjanraj/donorlink/pkg/orm"
)

// Cache keys for the static reference listings. The seeder drops them after
// inserting rows.
const (
	OrganCacheKey    = "catalog:organs"
	HospitalCacheKey = "catalog:hospitals"
)

// CatalogKeys are every cache key backed by reference data.
var CatalogKeys = []string{OrganCacheKey, HospitalCacheKey}

// OrganRepository reads the seeded organ catalog.
type OrganRepository struct {
	ttl time.Duration
}

func NewOrganRepository() *OrganRepository {
	return &OrganRepository{ttl: config.CacheTTL()}
}

// All returns every organ, served from cache when Redis is connected.
func (r *OrganRepository) All(ctx context.Context) ([]models.Organ, error) {
	organs := []models.Organ{}
	err := orm.DB(ctx).Model(&models.Organ{}).Order("id").Cache(OrganCacheKey, r.ttl, &organs)
	return organs, err
}

func (r *OrganRepository) FindByID(ctx context.Context, id uint) (models.Organ, error) {
	var organ models.Organ
	err := orm.DB(ctx).Model(&models.Organ{}).Where("id = ?", id).First(&organ)
	return organ, err
}

func (r *OrganRepository) Count(ctx context.Context) (int64, error) {
	return orm.DB(ctx).Model(&models.Organ{}).Count()
}

func (r *OrganRepository) Create(ctx context.Context, organs []models.Organ) error {
	return orm.DB(ctx).Create(&organs)
}

// HospitalRepository reads the seeded hospital catalog.
type HospitalRepository struct {
	ttl time.Duration
}

func NewHospitalRepository() *HospitalRepository {
	return &HospitalRepository{ttl: config.CacheTTL()}
}

// All returns every hospital, served from cache when Redis is connected.
func (r *HospitalRepository) All(ctx context.Context) ([]models.Hospital, error) {
	hospitals := []models.Hospital{}
	err := orm.DB(ctx).Model(&models.Hospital{}).Order("id").Cache(HospitalCacheKey, r.ttl, &hospitals)
	return hospitals, err
}

func (r *HospitalRepository) Count(ctx context.Context) (int64, error) {
	return orm.DB(ctx).Model(&models.Hospital{}).Count()
}

func (r *HospitalRepository) Create(ctx context.Context, hospitals []models.Hospital) error {
	return orm.DB(ctx).Create(&hospitals)
}
