package models

import (
	"fmt"
	"time"

	apperrors "device-checkout-backend/internal/errors"

	"github.com/google/uuid"
)

// Device represents a physical asset that can be loaned to one employee at a time.
//
// Status, AssignedToID and RequestedBy are the persisted encoding of a DeviceState.
// Code outside this package should read them through State and write them through
// SetState, MarkRequested and ClearRequested so the columns never contradict each other.
type Device struct {
	BaseModel
	Name         string       `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	SerialNumber string       `json:"serial_number" gorm:"size:120;uniqueIndex;not null" validate:"required,max=120"`
	Category     string       `json:"category" gorm:"size:100"`
	Status       DeviceStatus `json:"status" gorm:"type:varchar(20);not null;default:'available';index"`
	AssignedToID *uuid.UUID   `json:"assigned_to_id,omitempty" gorm:"type:uuid;index"`
	RequestedBy  *uuid.UUID   `json:"requested_by,omitempty" gorm:"type:uuid"`
	ReceivedDate *time.Time   `json:"received_date,omitempty"`
	ReturnDate   *time.Time   `json:"return_date,omitempty"`
}

// TableName returns the table name for Device
func (Device) TableName() string {
	return "devices"
}

// State decodes the persisted columns into a DeviceState.
// Contradictory column combinations yield ErrDeviceStateCorrupt.
func (d *Device) State() (DeviceState, error) {
	if d.Status != DeviceStatusAssigned && d.AssignedToID != nil {
		return nil, d.corrupt("holder set while %s", d.Status)
	}

	switch d.Status {
	case DeviceStatusAvailable:
		return StateAvailable{}, nil
	case DeviceStatusPending:
		if d.RequestedBy == nil {
			return nil, d.corrupt("pending without requester")
		}
		return StatePending{RequesterID: *d.RequestedBy}, nil
	case DeviceStatusAssigned:
		if d.AssignedToID == nil {
			return nil, d.corrupt("assigned without holder")
		}
		return StateAssigned{HolderID: *d.AssignedToID}, nil
	case DeviceStatusMissing:
		return StateMissing{}, nil
	case DeviceStatusStolen:
		return StateStolen{}, nil
	case DeviceStatusDead:
		return StateDead{}, nil
	case DeviceStatusReturned:
		return StateReturned{}, nil
	}
	return nil, d.corrupt("unknown status %q", d.Status)
}

// SetState encodes s into the persisted columns. The holder column is only ever
// written for StateAssigned; StatePending also records its requester.
func (d *Device) SetState(s DeviceState) {
	d.Status = s.Status()
	d.AssignedToID = nil

	switch st := s.(type) {
	case StateAssigned:
		holder := st.HolderID
		d.AssignedToID = &holder
	case StatePending:
		requester := st.RequesterID
		d.RequestedBy = &requester
	}
}

// MarkRequested records the user with an in-flight request against the device
func (d *Device) MarkRequested(userID uuid.UUID) {
	d.RequestedBy = &userID
}

// ClearRequested drops the in-flight request marker
func (d *Device) ClearRequested() {
	d.RequestedBy = nil
}

// HolderID returns the current holder, if any
func (d *Device) HolderID() (uuid.UUID, bool) {
	if d.Status != DeviceStatusAssigned || d.AssignedToID == nil {
		return uuid.Nil, false
	}
	return *d.AssignedToID, true
}

// CheckInvariants verifies the device columns against the pending request (nil when none exists).
func (d *Device) CheckInvariants(pending *Request) error {
	state, err := d.State()
	if err != nil {
		return err
	}

	if pending == nil {
		if d.RequestedBy != nil {
			return d.corrupt("requester set without a pending request")
		}
		return nil
	}

	if pending.DeviceID != d.ID {
		return d.corrupt("pending request %s belongs to device %s", pending.ID, pending.DeviceID)
	}
	if d.RequestedBy == nil || *d.RequestedBy != pending.UserID {
		return d.corrupt("requester does not match pending request %s", pending.ID)
	}
	if p, ok := state.(StatePending); ok && p.RequesterID != pending.UserID {
		return d.corrupt("pending marker does not match pending request %s", pending.ID)
	}
	return nil
}

func (d *Device) corrupt(format string, args ...interface{}) error {
	return fmt.Errorf("%w: device %s: %s", apperrors.ErrDeviceStateCorrupt, d.ID, fmt.Sprintf(format, args...))
}
