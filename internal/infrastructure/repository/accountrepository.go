package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/database"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/mappers"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/db"
)

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *user.Account) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return user.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *AccountRepository) Update(ctx context.Context, a *user.Account) error {
	model := r.mapper.ToModel(a)
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Select("username", "email", "first_name", "last_name", "password_hash",
			"is_staff", "is_superuser", "is_active", "last_login_at", "updated_at").
		Updates(model).Error
	if err != nil {
		if database.IsDuplicateKey(err) {
			return user.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*user.Account, error) {
	return r.getOne(ctx, "username = ?", username)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*user.Account, error) {
	if email == "" {
		return nil, user.ErrAccountNotFound
	}
	return r.getOne(ctx, "email = ?", email)
}

func (r *AccountRepository) getOne(ctx context.Context, cond string, arg any) (*user.Account, error) {
	var model models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).Order("id ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AccountRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.Account, error) {
	result := make(map[uint]*user.Account, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []*models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, row := range rows {
		result[row.ID] = r.mapper.ToDomain(row)
	}
	return result, nil
}

func (r *AccountRepository) ListSuperusers(ctx context.Context) ([]*user.Account, error) {
	var rows []*models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("is_superuser = ? AND is_active = ?", true, true).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list superusers: %w", err)
	}

	out := make([]*user.Account, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.ToDomain(row))
	}
	return out, nil
}
