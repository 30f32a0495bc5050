package models

import (
	"time"

	apperrors "device-checkout-backend/internal/errors"

	"github.com/google/uuid"
)

// Request is one entry in the request ledger: a user's proposal to change a device's
// assignment or status, and its outcome. Rows are created pending and leave pending once.
type Request struct {
	BaseModel
	DeviceID      uuid.UUID     `json:"device_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID        uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProcessedByID *uuid.UUID    `json:"processed_by_id,omitempty" gorm:"type:uuid"`
	Type          RequestType   `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	ReportType    *ReportType   `json:"report_type,omitempty" gorm:"type:varchar(20)"`
	Status        RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	RequestedAt   time.Time     `json:"requested_at" gorm:"not null;index"`
	ProcessedAt   *time.Time    `json:"processed_at,omitempty"`
	Reason        *string       `json:"reason,omitempty" gorm:"type:text"`

	// Relationships
	Device      *Device `json:"-" gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
	User        *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProcessedBy *User   `json:"-" gorm:"foreignKey:ProcessedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Request
func (Request) TableName() string {
	return "device_requests"
}

// IsPending reports whether the request is still awaiting a decision
func (r *Request) IsPending() bool {
	return r.Status == RequestStatusPending
}

// Finalize moves a pending request to a terminal status exactly once.
func (r *Request) Finalize(status RequestStatus, processedBy uuid.UUID, at time.Time) error {
	if !r.IsPending() {
		return apperrors.ErrAlreadyProcessed
	}
	if !status.IsTerminal() {
		return apperrors.ErrInvalidStatus
	}
	r.Status = status
	r.ProcessedByID = &processedBy
	r.ProcessedAt = &at
	return nil
}

// IsOpenAssignment reports whether this row is an open ownership interval, i.e. an
// approved assignment that has not yet been returned.
func (r *Request) IsOpenAssignment() bool {
	return r.Type == RequestTypeAssign && r.Status == RequestStatusApproved
}
