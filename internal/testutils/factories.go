package testutils

import (
	"time"

	"device-checkout-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Jane Doe",
		// Unique per call so suites can create several users without collisions
		Email: "user-" + id.String()[:8] + "@test.com",
		Role:  models.UserRoleUser,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// DeviceFactory provides methods to create test Device data
type DeviceFactory struct{}

// NewDeviceFactory creates a new DeviceFactory
func NewDeviceFactory() *DeviceFactory {
	return &DeviceFactory{}
}

// Create creates an available test Device
func (f *DeviceFactory) Create() *models.Device {
	id := uuid.New()
	return &models.Device{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "ThinkPad X1",
		SerialNumber: "SN-" + id.String()[:8],
		Category:     "laptop",
		Status:       models.DeviceStatusAvailable,
	}
}

// WithSerialNumber sets a custom serial number for the device
func (f *DeviceFactory) WithSerialNumber(serial string) *models.Device {
	device := f.Create()
	device.SerialNumber = serial
	return device
}

// WithState creates a device already in the given lifecycle state
func (f *DeviceFactory) WithState(state models.DeviceState) *models.Device {
	device := f.Create()
	device.SetState(state)
	return device
}

// RequestFactory provides methods to create test Request data
type RequestFactory struct{}

// NewRequestFactory creates a new RequestFactory
func NewRequestFactory() *RequestFactory {
	return &RequestFactory{}
}

// Create creates a pending request of the given type
func (f *RequestFactory) Create(deviceID, userID uuid.UUID, requestType models.RequestType) *models.Request {
	return &models.Request{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DeviceID:    deviceID,
		UserID:      userID,
		Type:        requestType,
		Status:      models.RequestStatusPending,
		RequestedAt: time.Now().UTC(),
	}
}

// WithStatus creates a request that already reached status
func (f *RequestFactory) WithStatus(deviceID, userID uuid.UUID, requestType models.RequestType, status models.RequestStatus) *models.Request {
	req := f.Create(deviceID, userID, requestType)
	req.Status = status
	return req
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Device  *DeviceFactory
	Request *RequestFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Device:  NewDeviceFactory(),
		Request: NewRequestFactory(),
	}
}
