package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"device-checkout-backend/internal/database/models"
	apperrors "device-checkout-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pendingIndexName = "device_requests_one_pending_per_device"

// TransitionRepository is the Postgres store behind the transition engine.
type TransitionRepository struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewTransitionRepository creates a transition repository. lockTimeout bounds each row-lock
// wait inside a transaction; zero leaves the server default in place.
func NewTransitionRepository(db *gorm.DB, lockTimeout time.Duration) *TransitionRepository {
	return &TransitionRepository{db: db, lockTimeout: lockTimeout}
}

// WithTx runs fn in a read-committed transaction
func (r *TransitionRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.db, r.lockTimeout, fn)
}

// LockDevice reads a device with SELECT ... FOR UPDATE
func (r *TransitionRepository) LockDevice(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	var device models.Device
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&device, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeviceNotFound
		}
		return nil, classifyContention(err)
	}
	return &device, nil
}

// GetRequest reads a request without locking it
func (r *TransitionRepository) GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	var req models.Request
	if err := conn(ctx, r.db).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, classifyContention(err)
	}
	return &req, nil
}

// LockRequest reads a request with SELECT ... FOR UPDATE. Callers lock the owning device first.
func (r *TransitionRepository) LockRequest(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	var req models.Request
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, classifyContention(err)
	}
	return &req, nil
}

// FindPendingRequest returns the pending request for a device, or nil when there is none
func (r *TransitionRepository) FindPendingRequest(ctx context.Context, deviceID uuid.UUID) (*models.Request, error) {
	var reqs []models.Request
	err := conn(ctx, r.db).
		Where("device_id = ? AND status = ?", deviceID, models.RequestStatusPending).
		Order("requested_at ASC").
		Limit(1).
		Find(&reqs).Error
	if err != nil {
		return nil, classifyContention(err)
	}
	if len(reqs) == 0 {
		return nil, nil
	}
	return &reqs[0], nil
}

// CreateRequest inserts a new ledger entry
func (r *TransitionRepository) CreateRequest(ctx context.Context, req *models.Request) error {
	err := conn(ctx, r.db).Omit(clause.Associations).Create(req).Error
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err, pendingIndexName):
		return apperrors.ErrDuplicatePendingRequest
	case pgCode(err) == pgForeignKeyViolation:
		return fmt.Errorf("create request: %w", apperrors.ErrUserNotFound)
	}
	return classifyContention(err)
}

// SaveRequest writes every column of an existing ledger entry
func (r *TransitionRepository) SaveRequest(ctx context.Context, req *models.Request) error {
	return classifyContention(conn(ctx, r.db).Omit(clause.Associations).Save(req).Error)
}

// SaveDevice writes every column of an existing device
func (r *TransitionRepository) SaveDevice(ctx context.Context, device *models.Device) error {
	return classifyContention(conn(ctx, r.db).Save(device).Error)
}

// CloseAssignments marks the approved assign requests of holderID on deviceID as returned
func (r *TransitionRepository) CloseAssignments(ctx context.Context, deviceID, holderID uuid.UUID) (int64, error) {
	result := conn(ctx, r.db).
		Model(&models.Request{}).
		Where("device_id = ? AND user_id = ? AND type = ? AND status = ?",
			deviceID, holderID, models.RequestTypeAssign, models.RequestStatusApproved).
		Update("status", models.RequestStatusReturned)
	if result.Error != nil {
		return 0, classifyContention(result.Error)
	}
	return result.RowsAffected, nil
}
