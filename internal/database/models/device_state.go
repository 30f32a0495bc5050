package models

import (
	"github.com/google/uuid"
)

// DeviceState is the decoded lifecycle state of a device. Holder and requester
// identities only exist on the variants where they are meaningful.
type DeviceState interface {
	Status() DeviceStatus
}

// StateAvailable means the device can be requested for assignment
type StateAvailable struct{}

// StatePending is the transient marker while an assign request is awaiting approval
type StatePending struct {
	RequesterID uuid.UUID
}

// StateAssigned means the device is held by HolderID
type StateAssigned struct {
	HolderID uuid.UUID
}

// StateMissing, StateStolen and StateDead are the outcomes of an approved report
type StateMissing struct{}

type StateStolen struct{}

type StateDead struct{}

// StateReturned means the device left the inventory
type StateReturned struct{}

func (StateAvailable) Status() DeviceStatus { return DeviceStatusAvailable }
func (StatePending) Status() DeviceStatus   { return DeviceStatusPending }
func (StateAssigned) Status() DeviceStatus  { return DeviceStatusAssigned }
func (StateMissing) Status() DeviceStatus   { return DeviceStatusMissing }
func (StateStolen) Status() DeviceStatus    { return DeviceStatusStolen }
func (StateDead) Status() DeviceStatus      { return DeviceStatusDead }
func (StateReturned) Status() DeviceStatus  { return DeviceStatusReturned }

// StateForReport maps an approved report onto the device state it produces
func StateForReport(reportType ReportType) (DeviceState, bool) {
	switch reportType {
	case ReportTypeMissing:
		return StateMissing{}, true
	case ReportTypeStolen:
		return StateStolen{}, true
	case ReportTypeDead:
		return StateDead{}, true
	}
	return nil, false
}
