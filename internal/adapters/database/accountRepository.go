package database

import (
	"context"

	"github.com/jonuar/Donacrypto/internal/config"
	"github.com/jonuar/Donacrypto/internal/core/account"
)

// AccountRepositoryDatabase implements the identity directory over MySQL
type AccountRepositoryDatabase struct{}

func NewAccountRepositoryDatabase() *AccountRepositoryDatabase {
	return &AccountRepositoryDatabase{}
}

func (repo *AccountRepositoryDatabase) Create(ctx context.Context, acc *account.Account) (*account.Account, error) {
	if err := config.DB.WithContext(ctx).Create(acc).Error; err != nil {
		return nil, err
	}
	return acc, nil
}

func (repo *AccountRepositoryDatabase) FindByID(ctx context.Context, id string) (*account.Account, error) {
	var acc account.Account
	if err := config.DB.WithContext(ctx).Where("id = ?", id).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (repo *AccountRepositoryDatabase) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	var acc account.Account
	if err := config.DB.WithContext(ctx).Where("email = ?", email).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (repo *AccountRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	var acc account.Account
	if err := config.DB.WithContext(ctx).Where("username = ?", username).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (repo *AccountRepositoryDatabase) FindByIDs(ctx context.Context, ids []string) ([]*account.Account, error) {
	accounts := make([]*account.Account, 0, len(ids))
	if len(ids) == 0 {
		return accounts, nil
	}
	if err := config.DB.WithContext(ctx).Where("id IN ?", ids).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// SearchCreators relies on the column collation for case-insensitive LIKE.
func (repo *AccountRepositoryDatabase) SearchCreators(ctx context.Context, query string, offset, limit int) ([]*account.Account, int64, error) {
	pattern := "%" + query + "%"
	q := config.DB.WithContext(ctx).Model(&account.Account{}).
		Where("role = ?", account.RoleCreator).
		Where("username LIKE ? OR bio LIKE ?", pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accounts []*account.Account
	if err := q.Order("username ASC").Offset(offset).Limit(limit).Find(&accounts).Error; err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

func (repo *AccountRepositoryDatabase) ListCreators(ctx context.Context, sort string, offset, limit int) ([]*account.Account, int64, error) {
	q := config.DB.WithContext(ctx).Model(&account.Account{}).
		Where("role = ?", account.RoleCreator)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var order string
	switch sort {
	case "recent":
		order = "created_at DESC"
	case "alphabetical":
		order = "username ASC"
	default:
		// "popular" has no store-level order; fetch alphabetically and let
		// the composer reorder the page
		order = "username ASC"
	}

	var accounts []*account.Account
	if err := q.Order(order).Offset(offset).Limit(limit).Find(&accounts).Error; err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}
