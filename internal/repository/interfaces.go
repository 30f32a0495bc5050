package repository

import (
	"context"

	"device-checkout-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DeviceRepositoryInterface defines the interface for device registry operations
type DeviceRepositoryInterface interface {
	Create(device *models.Device) error
	GetByID(id uuid.UUID) (*models.Device, error)
	GetBySerialNumber(serialNumber string) (*models.Device, error)
	GetAll(status models.DeviceStatus, limit, offset int) ([]models.Device, int64, error)
	UpdateDetails(id uuid.UUID, updates map[string]interface{}) error
	AuditSnapshot() ([]models.Device, []models.Request, error)
}

// RequestRepositoryInterface defines the read side of the request ledger
type RequestRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Request, error)
	List(filter RequestFilter, limit, offset int) ([]models.Request, int64, error)
	GetOwnershipHistory(deviceID uuid.UUID, limit, offset int) ([]models.Request, int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
}

// TransitionRepositoryInterface is the transactional store the transition engine runs against.
// Every method except WithTx expects the context handed to the WithTx callback.
type TransitionRepositoryInterface interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	LockDevice(ctx context.Context, id uuid.UUID) (*models.Device, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error)
	LockRequest(ctx context.Context, id uuid.UUID) (*models.Request, error)
	FindPendingRequest(ctx context.Context, deviceID uuid.UUID) (*models.Request, error)
	CreateRequest(ctx context.Context, req *models.Request) error
	SaveRequest(ctx context.Context, req *models.Request) error
	SaveDevice(ctx context.Context, device *models.Device) error
	CloseAssignments(ctx context.Context, deviceID, holderID uuid.UUID) (int64, error)
}

// RequestFilter narrows ledger listings; zero values match everything
type RequestFilter struct {
	Status   models.RequestStatus
	Type     models.RequestType
	DeviceID *uuid.UUID
	UserID   *uuid.UUID
}
