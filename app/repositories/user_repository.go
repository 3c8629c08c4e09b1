package repositories

import (
	"context"
	"strings"

	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail looks up a user by email, case-insensitively. Emails are
// stored lowercased, so the input is lowercased to match.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := orm.DB(ctx).Model(&models.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("id").
		First(&user)
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := orm.DB(ctx).Model(&models.User{}).Where("id = ?", id).First(&user)
	return user, err
}

// Exists reports whether a user with id is present.
func (r *UserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return orm.DB(ctx).Model(&models.User{}).Where("id = ?", id).Exists()
}

// Create persists a new user record.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return orm.DB(ctx).Create(user)
}

// UpdatePassword overwrites the stored password of user id.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, password string) error {
	return orm.DB(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", password)
}

// All returns every user in id order.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := orm.DB(ctx).Model(&models.User{}).Order("id").Get(&users)
	return users, err
}

// CountAdmins counts users carrying the administrator flag.
func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	return orm.DB(ctx).Model(&models.User{}).Where("is_admin = ?", true).Count()
}

// Participants lists users flagged for role together with their hospital
// name. Users whose hospital does not resolve are kept with a nil name.
func (r *UserRepository) Participants(ctx context.Context, role Role) ([]models.Participant, error) {
	out := []models.Participant{}
	err := orm.DB(ctx).Table("users").
		Select("users.*, hospital.hospital_name AS hospital_name").
		Joins("LEFT JOIN hospital ON hospital.id = users.hospital_id").
		Where("users."+role.flag()+" = ?", true).
		Order("users.id").
		Scan(&out)
	return out, err
}
