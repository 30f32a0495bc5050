package service

import (
	"device-checkout-backend/internal/database/models"
	apperrors "device-checkout-backend/internal/errors"

	"github.com/google/uuid"
)

// Actor is the resolved identity performing an operation
type Actor struct {
	ID   uuid.UUID
	Role models.UserRole
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

// CanProcess reports whether the actor may approve or reject requests
func (a Actor) CanProcess() bool {
	return a.Role == models.UserRoleManager || a.Role == models.UserRoleAdmin
}

// TransitionCandidate is a request about to be written to the ledger
type TransitionCandidate struct {
	Actor      Actor
	Type       models.RequestType
	ReportType *models.ReportType
}

// ValidateTransition decides whether candidate may be recorded against device.
// pending is the device's current pending request, nil when there is none.
// device must have been read under its row lock.
func ValidateTransition(device *models.Device, pending *models.Request, candidate TransitionCandidate) error {
	if pending != nil {
		return apperrors.ErrDuplicatePendingRequest
	}

	state, err := device.State()
	if err != nil {
		return err
	}

	switch candidate.Type {
	case models.RequestTypeAssign:
		if _, ok := state.(models.StateAvailable); !ok {
			return apperrors.ErrDeviceNotAvailable
		}
	case models.RequestTypeRelease:
		if candidate.Actor.IsAdmin() {
			return nil
		}
		if holder, ok := device.HolderID(); !ok || holder != candidate.Actor.ID {
			return apperrors.ErrNotOwner
		}
	case models.RequestTypeReturn:
		if _, ok := state.(models.StateAssigned); ok {
			return apperrors.ErrMustReleaseFirst
		}
	case models.RequestTypeReport:
		if candidate.ReportType == nil || !candidate.ReportType.IsValid() {
			return apperrors.ErrInvalidReportType
		}
	default:
		return apperrors.ErrInvalidRequestType
	}
	return nil
}
