package handlers

import (
	"net/http"
	"strconv"
	"time"

	"device-checkout-backend/internal/database/models"
	"device-checkout-backend/internal/events"
	"device-checkout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestHandler handles HTTP requests for the device request workflow
type RequestHandler struct {
	transitions service.TransitionServiceInterface
	requests    service.RequestServiceInterface
	publisher   events.Publisher
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(transitions service.TransitionServiceInterface, requests service.RequestServiceInterface, publisher events.Publisher) *RequestHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &RequestHandler{
		transitions: transitions,
		requests:    requests,
		publisher:   publisher,
	}
}

// SubmitRequestBody is the payload of POST /devices/{id}/requests
type SubmitRequestBody struct {
	Type       string  `json:"type" example:"assign" binding:"required"`
	ReportType *string `json:"report_type,omitempty" example:"missing"`
	Reason     *string `json:"reason,omitempty" example:"Needed for on-call week"`
}

// ProcessRequestBody is the payload of PUT /requests/{id}/process
type ProcessRequestBody struct {
	Decision string `json:"decision" example:"approved" binding:"required"`
}

// SubmitRequest submits an assign, release, report or return request for a device
// @Summary Submit a device request
// @Description Records a pending request against the device and marks the device as requested.
// @Description Only one request may be pending per device.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Device ID (UUID)"
// @Param request body SubmitRequestBody true "Request data"
// @Success 201 {object} service.RequestResponse "Request recorded"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Device not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Failure 503 {object} ErrorResponse "Device is busy, retry later"
// @Security BearerAuth
// @Router /devices/{id}/requests [post]
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	deviceID, ok := parseUUIDParam(c, "id", "device")
	if !ok {
		return
	}

	var body SubmitRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	in := service.SubmitRequestInput{
		DeviceID: deviceID,
		Actor:    actor,
		Type:     models.RequestType(body.Type),
		Reason:   body.Reason,
	}
	if body.ReportType != nil {
		reportType := models.ReportType(*body.ReportType)
		in.ReportType = &reportType
	}

	resp, err := h.transitions.SubmitRequest(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.publish(c, events.TypeRequestSubmitted, actor, resp)
	c.JSON(http.StatusCreated, resp)
}

// ProcessRequest approves or rejects a pending request
// @Summary Approve or reject a request
// @Description Managers and admins decide on a pending request. Approval applies the device state change.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param decision body ProcessRequestBody true "Decision"
// @Success 200 {object} service.RequestResponse "Request processed"
// @Failure 400 {object} ErrorResponse "Invalid decision"
// @Failure 403 {object} ErrorResponse "Caller may not process requests"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already processed"
// @Failure 503 {object} ErrorResponse "Device is busy, retry later"
// @Security BearerAuth
// @Router /requests/{id}/process [put]
func (h *RequestHandler) ProcessRequest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	requestID, ok := parseUUIDParam(c, "id", "request")
	if !ok {
		return
	}

	var body ProcessRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.transitions.ProcessRequest(c.Request.Context(), service.ProcessRequestInput{
		RequestID: requestID,
		Actor:     actor,
		Decision:  models.Decision(body.Decision),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.publish(c, events.TypeRequestProcessed, actor, resp)
	c.JSON(http.StatusOK, resp)
}

// CancelRequest withdraws a pending request
// @Summary Cancel a request
// @Description The requester (or an admin) withdraws a pending request and the device is restored.
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.RequestResponse "Request cancelled"
// @Failure 403 {object} ErrorResponse "Caller may not cancel this request"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already processed"
// @Failure 503 {object} ErrorResponse "Device is busy, retry later"
// @Security BearerAuth
// @Router /requests/{id}/cancel [put]
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	requestID, ok := parseUUIDParam(c, "id", "request")
	if !ok {
		return
	}

	resp, err := h.transitions.CancelRequest(c.Request.Context(), service.CancelRequestInput{
		RequestID: requestID,
		Actor:     actor,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.publish(c, events.TypeRequestCancelled, actor, resp)
	c.JSON(http.StatusOK, resp)
}

// GetRequest retrieves a request by ID
// @Summary Get request by ID
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.RequestResponse
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, ok := parseUUIDParam(c, "id", "request")
	if !ok {
		return
	}

	resp, err := h.requests.GetRequestByID(requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListRequests lists the request ledger, newest first
// @Summary List requests
// @Tags requests
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected, cancelled, returned)"
// @Param type query string false "Filter by type (assign, release, report, return)"
// @Param device_id query string false "Filter by device ID (UUID)"
// @Param user_id query string false "Filter by requester ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.RequestsListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter or pagination"
// @Security BearerAuth
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	query := service.RequestQuery{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}
	for param, target := range map[string]**uuid.UUID{"device_id": &query.DeviceID, "user_id": &query.UserID} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + param})
			return
		}
		*target = &id
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	limit = service.ClampLimit(limit)
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	requests, total, err := h.requests.ListRequests(query, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.RequestsListResponse{
		Requests: requests,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *RequestHandler) publish(c *gin.Context, eventType string, actor service.Actor, resp *service.RequestResponse) {
	events.PublishAsync(c.Request.Context(), h.publisher, events.Event{
		Type:         eventType,
		RequestID:    resp.ID,
		DeviceID:     resp.DeviceID,
		ActorID:      actor.ID.String(),
		RequestType:  resp.Type,
		Status:       resp.Status,
		DeviceStatus: resp.DeviceStatus,
		OccurredAt:   time.Now().UTC(),
	})
}
