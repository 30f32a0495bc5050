package handlers

import (
	"net/http"
	"strconv"

	"device-checkout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DeviceHandler handles HTTP requests for the device registry
type DeviceHandler struct {
	deviceService service.DeviceServiceInterface
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(deviceService service.DeviceServiceInterface) *DeviceHandler {
	return &DeviceHandler{
		deviceService: deviceService,
	}
}

// CreateDevice registers a new device
// @Summary Register a device
// @Description Adds a device to the registry. New devices start available.
// @Tags devices
// @Accept json
// @Produce json
// @Param device body service.CreateDeviceRequest true "Device data"
// @Success 201 {object} service.DeviceResponse "Device registered"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Serial number already registered"
// @Security BearerAuth
// @Router /devices [post]
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req service.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	device, err := h.deviceService.CreateDevice(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, device)
}

// GetDevice retrieves a device by ID
// @Summary Get device by ID
// @Tags devices
// @Produce json
// @Param id path string true "Device ID (UUID)"
// @Success 200 {object} service.DeviceResponse
// @Failure 400 {object} ErrorResponse "Invalid device ID"
// @Failure 404 {object} ErrorResponse "Device not found"
// @Security BearerAuth
// @Router /devices/{id} [get]
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "device")
	if !ok {
		return
	}

	device, err := h.deviceService.GetDeviceByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

// ListDevices lists devices
// @Summary List devices
// @Tags devices
// @Produce json
// @Param status query string false "Filter by status (available, pending, assigned, missing, stolen, dead, returned)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.DevicesListResponse
// @Failure 400 {object} ErrorResponse "Invalid status or pagination"
// @Security BearerAuth
// @Router /devices [get]
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	limit = service.ClampLimit(limit)
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	devices, total, err := h.deviceService.GetDevices(c.Query("status"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.DevicesListResponse{
		Devices: devices,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// UpdateDevice edits descriptive device fields
// @Summary Update a device
// @Description Edits name, serial number or category. Lifecycle status only changes through requests.
// @Tags devices
// @Accept json
// @Produce json
// @Param id path string true "Device ID (UUID)"
// @Param device body service.UpdateDeviceRequest true "Fields to change"
// @Success 200 {object} service.DeviceResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Device not found"
// @Failure 409 {object} ErrorResponse "Serial number already registered"
// @Security BearerAuth
// @Router /devices/{id} [put]
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "device")
	if !ok {
		return
	}

	var req service.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	device, err := h.deviceService.UpdateDevice(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

// GetDeviceHistory lists who held a device, newest first
// @Summary Device ownership history
// @Description Approved assign requests for the device; entries whose holding interval ended have status returned.
// @Tags devices
// @Produce json
// @Param id path string true "Device ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.RequestsListResponse
// @Failure 400 {object} ErrorResponse "Invalid device ID or pagination"
// @Failure 404 {object} ErrorResponse "Device not found"
// @Security BearerAuth
// @Router /devices/{id}/history [get]
func (h *DeviceHandler) GetDeviceHistory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "device")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	limit = service.ClampLimit(limit)
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	history, total, err := h.deviceService.GetOwnershipHistory(id, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.RequestsListResponse{
		Requests: history,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

// CheckInvariants audits persisted device state against the request ledger
// @Summary Audit device invariants
// @Description Reports devices whose status, holder or pending marker contradicts the pending requests.
// @Tags admin
// @Produce json
// @Success 200 {object} service.InvariantReport
// @Security BearerAuth
// @Router /admin/invariants [get]
func (h *DeviceHandler) CheckInvariants(c *gin.Context) {
	report, err := h.deviceService.CheckInvariants()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
