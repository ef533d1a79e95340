package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormUserRepository(db *gorm.DB, logger *logrus.Logger) domain.UserRepository {
	return &gormUserRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.log.Errorf("Repository: Failed to create user '%s': %v", user.Username, err)
		return translateError(err, "could not create user")
	}
	r.log.Infof("Repository: User created with ID %d, Username %s", user.UserID, user.Username)
	return nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, translateError(err, "user lookup")
	}
	return &user, nil
}

func (r *gormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *gormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *gormUserRepository) exists(ctx context.Context, cond string, arg string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where(cond, arg).Count(&count).Error; err != nil {
		r.log.Errorf("Repository: Failed to check user existence (%s): %v", cond, err)
		return false, translateError(err, "could not check user existence")
	}
	return count > 0, nil
}

func (r *gormUserRepository) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&domain.User{}).Where("user_id = ?", id).Update("last_login_at", at)
	if result.Error != nil {
		return translateError(result.Error, fmt.Sprintf("could not update last login for user %d", id))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user with id %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
