package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"device-checkout-backend/internal/clock"
	"device-checkout-backend/internal/database/models"
	apperrors "device-checkout-backend/internal/errors"
	"device-checkout-backend/internal/logger"
	"device-checkout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TransitionService is the device transition engine. Every operation locks the device row,
// validates, writes the ledger and mutates the device in one transaction, and is retried as a
// whole on lock contention.
type TransitionService struct {
	repo      repository.TransitionRepositoryInterface
	retry     *RetryCoordinator
	clock     clock.Clock
	validator *validator.Validate
}

// NewTransitionService creates a new transition engine
func NewTransitionService(repo repository.TransitionRepositoryInterface, retry *RetryCoordinator, clk clock.Clock, validator *validator.Validate) *TransitionService {
	return &TransitionService{
		repo:      repo,
		retry:     retry,
		clock:     clk,
		validator: validator,
	}
}

// SubmitRequestInput represents a user's request against a device
type SubmitRequestInput struct {
	DeviceID   uuid.UUID          `json:"-"`
	Actor      Actor              `json:"-"`
	Type       models.RequestType `json:"type" example:"assign" validate:"required"`
	ReportType *models.ReportType `json:"report_type,omitempty" example:"missing"`
	Reason     *string            `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

// ProcessRequestInput represents a manager's decision on a pending request
type ProcessRequestInput struct {
	RequestID uuid.UUID       `json:"-"`
	Actor     Actor           `json:"-"`
	Decision  models.Decision `json:"decision" example:"approved" validate:"required"`
}

// CancelRequestInput identifies a pending request to withdraw
type CancelRequestInput struct {
	RequestID uuid.UUID
	Actor     Actor
}

// SubmitRequest records a pending request and marks the device as requested
func (s *TransitionService) SubmitRequest(ctx context.Context, in SubmitRequestInput) (*RequestResponse, error) {
	if err := s.validateSubmit(&in); err != nil {
		return nil, err
	}

	var req *models.Request
	var device *models.Device
	err := s.retry.Run(ctx, "submit request", func(ctx context.Context) error {
		return s.repo.WithTx(ctx, func(txCtx context.Context) error {
			dev, err := s.repo.LockDevice(txCtx, in.DeviceID)
			if err != nil {
				return err
			}
			pending, err := s.repo.FindPendingRequest(txCtx, dev.ID)
			if err != nil {
				return err
			}

			candidate := TransitionCandidate{Actor: in.Actor, Type: in.Type, ReportType: in.ReportType}
			if err := ValidateTransition(dev, pending, candidate); err != nil {
				return err
			}

			created := &models.Request{
				BaseModel:   models.BaseModel{ID: uuid.New()},
				DeviceID:    dev.ID,
				UserID:      in.Actor.ID,
				Type:        in.Type,
				ReportType:  in.ReportType,
				Status:      models.RequestStatusPending,
				RequestedAt: s.clock.Now(),
				Reason:      in.Reason,
			}
			if err := s.repo.CreateRequest(txCtx, created); err != nil {
				return err
			}

			if in.Type == models.RequestTypeAssign {
				dev.SetState(models.StatePending{RequesterID: in.Actor.ID})
			} else {
				dev.MarkRequested(in.Actor.ID)
			}
			if err := s.repo.SaveDevice(txCtx, dev); err != nil {
				return err
			}

			req, device = created, dev
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"request_id": req.ID.String(),
		"device_id":  device.ID.String(),
		"type":       req.Type,
	}).Info("request submitted")
	return newRequestResponse(req, device), nil
}

// ProcessRequest approves or rejects a pending request
func (s *TransitionService) ProcessRequest(ctx context.Context, in ProcessRequestInput) (*RequestResponse, error) {
	if !in.Actor.CanProcess() {
		return nil, apperrors.ErrUnauthorized
	}
	if !in.Decision.IsValid() {
		return nil, apperrors.ErrInvalidDecision
	}

	var req *models.Request
	var device *models.Device
	err := s.retry.Run(ctx, "process request", func(ctx context.Context) error {
		return s.repo.WithTx(ctx, func(txCtx context.Context) error {
			locked, dev, err := s.lockRequestAndDevice(txCtx, in.RequestID)
			if err != nil {
				return err
			}

			now := s.clock.Now()
			if err := locked.Finalize(in.Decision.RequestStatus(), in.Actor.ID, now); err != nil {
				return err
			}

			if in.Decision == models.DecisionApproved {
				err = s.applyApproval(txCtx, dev, locked, now)
			} else {
				err = restoreDevice(dev, locked)
			}
			if err != nil {
				return err
			}

			if err := s.repo.SaveRequest(txCtx, locked); err != nil {
				return err
			}
			if err := s.repo.SaveDevice(txCtx, dev); err != nil {
				return err
			}

			req, device = locked, dev
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"request_id": req.ID.String(),
		"device_id":  device.ID.String(),
		"decision":   in.Decision,
		"status":     device.Status,
	}).Info("request processed")
	return newRequestResponse(req, device), nil
}

// CancelRequest withdraws a pending request. Only the requester or an admin may cancel.
func (s *TransitionService) CancelRequest(ctx context.Context, in CancelRequestInput) (*RequestResponse, error) {
	if in.Actor.ID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	var req *models.Request
	var device *models.Device
	err := s.retry.Run(ctx, "cancel request", func(ctx context.Context) error {
		return s.repo.WithTx(ctx, func(txCtx context.Context) error {
			locked, dev, err := s.lockRequestAndDevice(txCtx, in.RequestID)
			if err != nil {
				return err
			}
			if locked.UserID != in.Actor.ID && !in.Actor.IsAdmin() {
				return apperrors.ErrUnauthorized
			}

			if err := locked.Finalize(models.RequestStatusCancelled, in.Actor.ID, s.clock.Now()); err != nil {
				return err
			}
			if err := restoreDevice(dev, locked); err != nil {
				return err
			}

			if err := s.repo.SaveRequest(txCtx, locked); err != nil {
				return err
			}
			if err := s.repo.SaveDevice(txCtx, dev); err != nil {
				return err
			}

			req, device = locked, dev
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"request_id": req.ID.String(),
		"device_id":  device.ID.String(),
	}).Info("request cancelled")
	return newRequestResponse(req, device), nil
}

func (s *TransitionService) validateSubmit(in *SubmitRequestInput) error {
	if in.Actor.ID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}
	if in.DeviceID == uuid.Nil {
		return apperrors.ErrDeviceNotFound
	}
	if !in.Type.IsValid() {
		return apperrors.ErrInvalidRequestType
	}
	if in.Type != models.RequestTypeReport {
		in.ReportType = nil
	}
	if in.Reason != nil {
		reason := strings.TrimSpace(*in.Reason)
		if reason == "" {
			in.Reason = nil
		} else {
			in.Reason = &reason
		}
	}
	if err := s.validator.Struct(in); err != nil {
		return apperrors.NewValidationError("reason", err.Error())
	}
	return nil
}

// lockRequestAndDevice locks the device before the request so every path takes row locks
// in the same order.
func (s *TransitionService) lockRequestAndDevice(ctx context.Context, requestID uuid.UUID) (*models.Request, *models.Device, error) {
	peek, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	device, err := s.repo.LockDevice(ctx, peek.DeviceID)
	if err != nil {
		return nil, nil, err
	}
	req, err := s.repo.LockRequest(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if req.DeviceID != device.ID {
		return nil, nil, fmt.Errorf("%w: request %s moved from device %s", apperrors.ErrDeviceStateCorrupt, req.ID, device.ID)
	}
	return req, device, nil
}

func (s *TransitionService) applyApproval(ctx context.Context, device *models.Device, req *models.Request, now time.Time) error {
	state, err := device.State()
	if err != nil {
		return err
	}

	switch req.Type {
	case models.RequestTypeAssign:
		device.SetState(models.StateAssigned{HolderID: req.UserID})
		device.ReceivedDate = &now

	case models.RequestTypeRelease:
		holder := req.UserID
		if assigned, ok := state.(models.StateAssigned); ok {
			holder = assigned.HolderID
		}
		if _, err := s.repo.CloseAssignments(ctx, device.ID, holder); err != nil {
			return err
		}
		device.SetState(models.StateAvailable{})

	case models.RequestTypeReport:
		if req.ReportType == nil {
			return apperrors.ErrInvalidReportType
		}
		next, ok := models.StateForReport(*req.ReportType)
		if !ok {
			return apperrors.ErrInvalidReportType
		}
		if assigned, ok := state.(models.StateAssigned); ok {
			if _, err := s.repo.CloseAssignments(ctx, device.ID, assigned.HolderID); err != nil {
				return err
			}
		}
		device.SetState(next)

	case models.RequestTypeReturn:
		if _, ok := state.(models.StateAssigned); ok {
			return apperrors.ErrMustReleaseFirst
		}
		device.SetState(models.StateReturned{})
		returnDate := clock.StartOfDay(now)
		device.ReturnDate = &returnDate

	default:
		return apperrors.ErrInvalidRequestType
	}

	device.ClearRequested()
	return nil
}

// restoreDevice undoes the in-flight marker after a rejection or cancellation
func restoreDevice(device *models.Device, req *models.Request) error {
	state, err := device.State()
	if err != nil {
		return err
	}

	device.ClearRequested()
	if _, ok := state.(models.StatePending); ok {
		if req.Type == models.RequestTypeRelease {
			device.SetState(models.StateAssigned{HolderID: req.UserID})
		} else {
			device.SetState(models.StateAvailable{})
		}
	}
	return nil
}
