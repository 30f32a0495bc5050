package repository

import (
	"database/sql"

	"device-checkout-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceRepository handles database operations for the device registry
type DeviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new device repository
func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// Create creates a new device
func (r *DeviceRepository) Create(device *models.Device) error {
	return r.db.Create(device).Error
}

// GetByID retrieves a device by ID
func (r *DeviceRepository) GetByID(id uuid.UUID) (*models.Device, error) {
	var device models.Device
	err := r.db.First(&device, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// GetBySerialNumber retrieves a device by its serial number
func (r *DeviceRepository) GetBySerialNumber(serialNumber string) (*models.Device, error) {
	var device models.Device
	err := r.db.First(&device, "serial_number = ?", serialNumber).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// GetAll retrieves devices with pagination, optionally filtered by status
func (r *DeviceRepository) GetAll(status models.DeviceStatus, limit, offset int) ([]models.Device, int64, error) {
	var devices []models.Device
	var total int64

	query := r.db.Model(&models.Device{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&devices).Error; err != nil {
		return nil, 0, err
	}

	return devices, total, nil
}

// UpdateDetails updates descriptive columns of a device. Lifecycle columns are owned by the
// transition engine and are stripped here.
func (r *DeviceRepository) UpdateDetails(id uuid.UUID, updates map[string]interface{}) error {
	for _, column := range []string{"status", "assigned_to_id", "requested_by", "received_date", "return_date"} {
		delete(updates, column)
	}
	if len(updates) == 0 {
		return nil
	}
	result := r.db.Model(&models.Device{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AuditSnapshot reads every device and every pending request from one repeatable-read
// snapshot, so both sides reflect the same set of committed transitions.
func (r *DeviceRepository) AuditSnapshot() ([]models.Device, []models.Request, error) {
	var devices []models.Device
	var pending []models.Request

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id ASC").Find(&devices).Error; err != nil {
			return err
		}
		return tx.Where("status = ?", models.RequestStatusPending).Order("device_id ASC").Find(&pending).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, nil, err
	}

	return devices, pending, nil
}
