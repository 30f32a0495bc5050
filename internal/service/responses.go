package service

import (
	"time"

	"device-checkout-backend/internal/database/models"

	"github.com/google/uuid"
)

// RequestResponse represents a ledger entry as returned to API clients
type RequestResponse struct {
	ID            string  `json:"id"`
	DeviceID      string  `json:"device_id"`
	UserID        string  `json:"user_id"`
	ProcessedByID *string `json:"processed_by_id,omitempty"`
	Type          string  `json:"type" example:"assign"`
	ReportType    *string `json:"report_type,omitempty" example:"missing"`
	Status        string  `json:"status" example:"pending"`
	Reason        *string `json:"reason,omitempty"`
	RequestedAt   string  `json:"requested_at" example:"2026-03-01T10:00:00Z"`
	ProcessedAt   *string `json:"processed_at,omitempty"`
	// DeviceStatus is the device status after the operation; empty on read-only queries
	DeviceStatus string `json:"device_status,omitempty" example:"pending"`
}

// RequestsListResponse is the swagger schema for paginated request listings
type RequestsListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// DeviceResponse represents a device as returned to API clients
type DeviceResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SerialNumber string  `json:"serial_number"`
	Category     string  `json:"category"`
	Status       string  `json:"status" example:"available"`
	AssignedToID *string `json:"assigned_to_id,omitempty"`
	RequestedBy  *string `json:"requested_by,omitempty"`
	ReceivedDate *string `json:"received_date,omitempty"`
	ReturnDate   *string `json:"return_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// DevicesListResponse is the swagger schema for GET /devices
type DevicesListResponse struct {
	Devices []DeviceResponse `json:"devices"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// UserResponse represents a user profile
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role" example:"user"`
}

func newRequestResponse(req *models.Request, device *models.Device) *RequestResponse {
	resp := &RequestResponse{
		ID:            req.ID.String(),
		DeviceID:      req.DeviceID.String(),
		UserID:        req.UserID.String(),
		ProcessedByID: uuidString(req.ProcessedByID),
		Type:          string(req.Type),
		Status:        string(req.Status),
		Reason:        req.Reason,
		RequestedAt:   formatTime(req.RequestedAt),
		ProcessedAt:   timeString(req.ProcessedAt),
	}
	if req.ReportType != nil {
		rt := string(*req.ReportType)
		resp.ReportType = &rt
	}
	if device != nil {
		resp.DeviceStatus = string(device.Status)
	}
	return resp
}

func newDeviceResponse(device *models.Device) *DeviceResponse {
	return &DeviceResponse{
		ID:           device.ID.String(),
		Name:         device.Name,
		SerialNumber: device.SerialNumber,
		Category:     device.Category,
		Status:       string(device.Status),
		AssignedToID: uuidString(device.AssignedToID),
		RequestedBy:  uuidString(device.RequestedBy),
		ReceivedDate: timeString(device.ReceivedDate),
		ReturnDate:   timeString(device.ReturnDate),
		CreatedAt:    formatTime(device.CreatedAt),
		UpdatedAt:    formatTime(device.UpdatedAt),
	}
}

func newUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// MaxPageSize caps the limit of every list operation
const MaxPageSize = 100

// ClampLimit lowers limit to MaxPageSize, leaving smaller values untouched
func ClampLimit(limit int) int {
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
