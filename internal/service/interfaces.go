package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TransitionServiceInterface defines the interface for the device transition engine
type TransitionServiceInterface interface {
	SubmitRequest(ctx context.Context, in SubmitRequestInput) (*RequestResponse, error)
	ProcessRequest(ctx context.Context, in ProcessRequestInput) (*RequestResponse, error)
	CancelRequest(ctx context.Context, in CancelRequestInput) (*RequestResponse, error)
}

// DeviceServiceInterface defines the interface for device service
type DeviceServiceInterface interface {
	CreateDevice(req *CreateDeviceRequest) (*DeviceResponse, error)
	GetDeviceByID(id uuid.UUID) (*DeviceResponse, error)
	GetDevices(status string, limit, offset int) ([]DeviceResponse, int64, error)
	UpdateDevice(id uuid.UUID, req *UpdateDeviceRequest) (*DeviceResponse, error)
	GetOwnershipHistory(id uuid.UUID, limit, offset int) ([]RequestResponse, int64, error)
	CheckInvariants() (*InvariantReport, error)
}

// RequestServiceInterface defines the interface for request ledger queries
type RequestServiceInterface interface {
	GetRequestByID(id uuid.UUID) (*RequestResponse, error)
	ListRequests(query RequestQuery, limit, offset int) ([]RequestResponse, int64, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	GetUsers(limit, offset int) ([]UserResponse, int64, error)
}
