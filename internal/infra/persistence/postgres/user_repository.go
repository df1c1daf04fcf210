// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/repository"
	"homestay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their stable identifier.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user record with its defaults.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStateConsistency.WrapMessage("user already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// RotateToken atomically sets a fresh session token on the user row.
func (repo *userRepository) RotateToken(ctx context.Context, id string, token string) (*entity.User, error) {
	return repo.updateReturning(ctx, id, map[string]any{"token": token}, "failed to rotate session token")
}

// UpdateProfile atomically refreshes the profile fields on the user row.
// Income, bookings and listings are deliberately not part of the update.
func (repo *userRepository) UpdateProfile(ctx context.Context, id string, patch repository.UserProfilePatch) (*entity.User, error) {
	return repo.updateReturning(ctx, id, map[string]any{
		"name":    patch.Name,
		"avatar":  patch.Avatar,
		"contact": patch.Contact,
		"token":   patch.Token,
	}, "failed to update user profile")
}

// SetWallet atomically sets or clears the payment account identifier.
func (repo *userRepository) SetWallet(ctx context.Context, id string, walletID *string) (*entity.User, error) {
	return repo.updateReturning(ctx, id, map[string]any{"wallet_id": walletID}, "failed to update wallet id")
}

// updateReturning runs a single UPDATE ... RETURNING on the row keyed by id.
// Zero affected rows is the "no match" outcome, surfaced as ErrUserNotFound.
func (repo *userRepository) updateReturning(ctx context.Context, id string, values map[string]any, failMsg string) (*entity.User, error) {
	var updated []model.UserModel
	result := repo.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, failMsg)
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&updated[0]), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Token:     data.Token,
		Name:      data.Name,
		Avatar:    data.Avatar,
		Contact:   data.Contact,
		WalletID:  data.WalletID,
		Income:    data.Income,
		Bookings:  data.Bookings,
		Listings:  data.Listings,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:       data.ID,
		Token:    data.Token,
		Name:     data.Name,
		Avatar:   data.Avatar,
		Contact:  data.Contact,
		WalletID: data.WalletID,
		Income:   data.Income,
		Bookings: data.Bookings,
		Listings: data.Listings,
	}
}
