package repository

import (
	"device-checkout-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestRepository handles read queries over the request ledger
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// GetByID retrieves a request by ID
func (r *RequestRepository) GetByID(id uuid.UUID) (*models.Request, error) {
	var req models.Request
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List retrieves requests matching filter, newest first
func (r *RequestRepository) List(filter RequestFilter, limit, offset int) ([]models.Request, int64, error) {
	var reqs []models.Request
	var total int64

	query := applyRequestFilter(r.db.Model(&models.Request{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("requested_at DESC").Limit(limit).Offset(offset).Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

// GetOwnershipHistory lists the assign requests that granted ownership of a device,
// open (approved) or closed (returned), newest first
func (r *RequestRepository) GetOwnershipHistory(deviceID uuid.UUID, limit, offset int) ([]models.Request, int64, error) {
	var reqs []models.Request
	var total int64

	query := r.db.Model(&models.Request{}).
		Where("device_id = ? AND type = ? AND status IN ?", deviceID, models.RequestTypeAssign,
			[]models.RequestStatus{models.RequestStatusApproved, models.RequestStatusReturned})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("requested_at DESC").Limit(limit).Offset(offset).Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

func applyRequestFilter(query *gorm.DB, filter RequestFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.DeviceID != nil {
		query = query.Where("device_id = ?", *filter.DeviceID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	return query
}
