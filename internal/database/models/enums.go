package models

// DeviceStatus is the persisted lifecycle status of a device
type DeviceStatus string

const (
	DeviceStatusAvailable DeviceStatus = "available"
	DeviceStatusPending   DeviceStatus = "pending"
	DeviceStatusAssigned  DeviceStatus = "assigned"
	DeviceStatusMissing   DeviceStatus = "missing"
	DeviceStatusStolen    DeviceStatus = "stolen"
	DeviceStatusDead      DeviceStatus = "dead"
	DeviceStatusReturned  DeviceStatus = "returned"
)

// RequestType defines the kinds of requests users can raise against a device
type RequestType string

const (
	RequestTypeAssign  RequestType = "assign"
	RequestTypeRelease RequestType = "release"
	RequestTypeReport  RequestType = "report"
	RequestTypeReturn  RequestType = "return"
)

// ReportType qualifies a report request
type ReportType string

const (
	ReportTypeMissing ReportType = "missing"
	ReportTypeStolen  ReportType = "stolen"
	ReportTypeDead    ReportType = "dead"
)

// RequestStatus is the lifecycle status of a ledger entry
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusReturned  RequestStatus = "returned"
)

// Decision is a manager's verdict on a pending request
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// UserRole defines what a user may do in the checkout workflow
type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRoleManager UserRole = "manager"
	UserRoleAdmin   UserRole = "admin"
)

// IsValid checks if the DeviceStatus is valid
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceStatusAvailable, DeviceStatusPending, DeviceStatusAssigned,
		DeviceStatusMissing, DeviceStatusStolen, DeviceStatusDead, DeviceStatusReturned:
		return true
	}
	return false
}

// IsValid checks if the RequestType is valid
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeAssign, RequestTypeRelease, RequestTypeReport, RequestTypeReturn:
		return true
	}
	return false
}

// IsValid checks if the ReportType is valid
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeMissing, ReportTypeStolen, ReportTypeDead:
		return true
	}
	return false
}

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected,
		RequestStatusCancelled, RequestStatusReturned:
		return true
	}
	return false
}

// IsTerminal reports whether the status can no longer be processed or cancelled
func (s RequestStatus) IsTerminal() bool {
	return s.IsValid() && s != RequestStatusPending
}

// IsValid checks if the Decision is valid
func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// RequestStatus maps the decision onto the ledger status it produces
func (d Decision) RequestStatus() RequestStatus {
	if d == DecisionApproved {
		return RequestStatusApproved
	}
	return RequestStatusRejected
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}
