package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ormeredost-cmd/withdraw-server/internal/models"
)

type withdrawalStore struct {
	db *gorm.DB
}

func (s *withdrawalStore) Insert(ctx context.Context, req *models.WithdrawalRequest) error {
	return s.db.WithContext(ctx).Create(req).Error
}

func (s *withdrawalStore) FindAll(ctx context.Context) ([]models.WithdrawalRequest, error) {
	var reqs []models.WithdrawalRequest
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *withdrawalStore) UpdateByID(ctx context.Context, id uint, patch map[string]interface{}) (*models.WithdrawalRequest, error) {
	res := s.db.WithContext(ctx).Model(&models.WithdrawalRequest{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.findOne(ctx, "id = ?", id)
}

func (s *withdrawalStore) UpdateByWithdrawID(ctx context.Context, withdrawID string, patch map[string]interface{}) (*models.WithdrawalRequest, error) {
	res := s.db.WithContext(ctx).Model(&models.WithdrawalRequest{}).Where("withdraw_id = ?", withdrawID).Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.findOne(ctx, "withdraw_id = ?", withdrawID)
}

func (s *withdrawalStore) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WithdrawalRequest{})
	return res.RowsAffected, res.Error
}

func (s *withdrawalStore) DeleteByWithdrawID(ctx context.Context, withdrawID string) (int64, error) {
	res := s.db.WithContext(ctx).Where("withdraw_id = ?", withdrawID).Delete(&models.WithdrawalRequest{})
	return res.RowsAffected, res.Error
}

func (s *withdrawalStore) findOne(ctx context.Context, query string, arg interface{}) (*models.WithdrawalRequest, error) {
	var req models.WithdrawalRequest
	err := s.db.WithContext(ctx).Where(query, arg).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}
