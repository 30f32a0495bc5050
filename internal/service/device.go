package service

import (
	"errors"
	"fmt"
	"strings"

	"device-checkout-backend/internal/database/models"
	apperrors "device-checkout-backend/internal/errors"
	"device-checkout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceService handles registry management outside the transition engine
type DeviceService struct {
	repo        repository.DeviceRepositoryInterface
	requestRepo repository.RequestRepositoryInterface
	validator   *validator.Validate
}

// NewDeviceService creates a new device service
func NewDeviceService(repo repository.DeviceRepositoryInterface, requestRepo repository.RequestRepositoryInterface, validator *validator.Validate) *DeviceService {
	return &DeviceService{
		repo:        repo,
		requestRepo: requestRepo,
		validator:   validator,
	}
}

// CreateDeviceRequest represents the data needed to register a device
type CreateDeviceRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	SerialNumber string `json:"serial_number" validate:"required,max=120"`
	Category     string `json:"category" validate:"max=100"`
}

// UpdateDeviceRequest carries descriptive fields only; lifecycle state changes go through requests
type UpdateDeviceRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	SerialNumber *string `json:"serial_number" validate:"omitempty,min=1,max=120"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
}

// InvariantViolation describes one device whose persisted state contradicts the ledger
type InvariantViolation struct {
	DeviceID string `json:"device_id"`
	Message  string `json:"message"`
}

// InvariantReport is the result of an invariant audit
type InvariantReport struct {
	CheckedDevices int                  `json:"checked_devices"`
	PendingCount   int                  `json:"pending_requests"`
	Violations     []InvariantViolation `json:"violations"`
}

// CreateDevice registers a new available device
func (s *DeviceService) CreateDevice(req *CreateDeviceRequest) (*DeviceResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.SerialNumber = strings.TrimSpace(req.SerialNumber)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetBySerialNumber(req.SerialNumber); err == nil && existing != nil {
		return nil, apperrors.ErrDeviceExists
	}

	device := &models.Device{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Category:     strings.TrimSpace(req.Category),
	}
	device.SetState(models.StateAvailable{})

	if err := s.repo.Create(device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}
	return newDeviceResponse(device), nil
}

// GetDeviceByID retrieves a device by ID
func (s *DeviceService) GetDeviceByID(id uuid.UUID) (*DeviceResponse, error) {
	device, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	return newDeviceResponse(device), nil
}

// GetDevices lists devices, optionally filtered by status
func (s *DeviceService) GetDevices(status string, limit, offset int) ([]DeviceResponse, int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	limit = ClampLimit(limit)
	deviceStatus := models.DeviceStatus(status)
	if status != "" && !deviceStatus.IsValid() {
		return nil, 0, apperrors.ErrInvalidStatus
	}

	devices, total, err := s.repo.GetAll(deviceStatus, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list devices: %w", err)
	}

	responses := make([]DeviceResponse, len(devices))
	for i := range devices {
		responses[i] = *newDeviceResponse(&devices[i])
	}
	return responses, total, nil
}

// UpdateDevice edits the descriptive fields of a device
func (s *DeviceService) UpdateDevice(id uuid.UUID, req *UpdateDeviceRequest) (*DeviceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		updates["category"] = strings.TrimSpace(*req.Category)
	}
	if req.SerialNumber != nil {
		serial := strings.TrimSpace(*req.SerialNumber)
		if existing, err := s.repo.GetBySerialNumber(serial); err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrDeviceExists
		}
		updates["serial_number"] = serial
	}

	if err := s.repo.UpdateDetails(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to update device: %w", err)
	}
	return s.GetDeviceByID(id)
}

// GetOwnershipHistory lists the assignments a device has gone through, newest first
func (s *DeviceService) GetOwnershipHistory(id uuid.UUID, limit, offset int) ([]RequestResponse, int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	limit = ClampLimit(limit)
	if _, err := s.GetDeviceByID(id); err != nil {
		return nil, 0, err
	}

	reqs, total, err := s.requestRepo.GetOwnershipHistory(id, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get ownership history: %w", err)
	}
	responses := make([]RequestResponse, len(reqs))
	for i := range reqs {
		responses[i] = *newRequestResponse(&reqs[i], nil)
	}
	return responses, total, nil
}

// CheckInvariants audits every device against the pending requests in the ledger.
// Both are read from one snapshot so in-flight transitions never show up half applied.
func (s *DeviceService) CheckInvariants() (*InvariantReport, error) {
	devices, pending, err := s.repo.AuditSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to read audit snapshot: %w", err)
	}

	pendingByDevice := make(map[uuid.UUID][]models.Request, len(pending))
	for _, req := range pending {
		pendingByDevice[req.DeviceID] = append(pendingByDevice[req.DeviceID], req)
	}

	report := &InvariantReport{
		CheckedDevices: len(devices),
		PendingCount:   len(pending),
		Violations:     []InvariantViolation{},
	}
	for i := range devices {
		device := &devices[i]
		reqs := pendingByDevice[device.ID]
		if len(reqs) > 1 {
			report.Violations = append(report.Violations, InvariantViolation{
				DeviceID: device.ID.String(),
				Message:  fmt.Sprintf("%d pending requests", len(reqs)),
			})
			continue
		}

		var current *models.Request
		if len(reqs) == 1 {
			current = &reqs[0]
		}
		if err := device.CheckInvariants(current); err != nil {
			report.Violations = append(report.Violations, InvariantViolation{
				DeviceID: device.ID.String(),
				Message:  err.Error(),
			})
		}
	}
	return report, nil
}
