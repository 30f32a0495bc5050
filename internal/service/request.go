package service

import (
	"errors"
	"fmt"

	"device-checkout-backend/internal/database/models"
	apperrors "device-checkout-backend/internal/errors"
	"device-checkout-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestService answers read queries over the request ledger
type RequestService struct {
	repo repository.RequestRepositoryInterface
}

// NewRequestService creates a new request service
func NewRequestService(repo repository.RequestRepositoryInterface) *RequestService {
	return &RequestService{repo: repo}
}

// RequestQuery filters ledger listings; empty fields match everything
type RequestQuery struct {
	Status   string
	Type     string
	DeviceID *uuid.UUID
	UserID   *uuid.UUID
}

// GetRequestByID retrieves a request by ID
func (s *RequestService) GetRequestByID(id uuid.UUID) (*RequestResponse, error) {
	req, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return newRequestResponse(req, nil), nil
}

// ListRequests lists requests matching query, newest first
func (s *RequestService) ListRequests(query RequestQuery, limit, offset int) ([]RequestResponse, int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	limit = ClampLimit(limit)

	filter := repository.RequestFilter{
		Status:   models.RequestStatus(query.Status),
		Type:     models.RequestType(query.Type),
		DeviceID: query.DeviceID,
		UserID:   query.UserID,
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, apperrors.ErrInvalidStatus
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, 0, apperrors.ErrInvalidRequestType
	}

	reqs, total, err := s.repo.List(filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}
	responses := make([]RequestResponse, len(reqs))
	for i := range reqs {
		responses[i] = *newRequestResponse(&reqs[i], nil)
	}
	return responses, total, nil
}
