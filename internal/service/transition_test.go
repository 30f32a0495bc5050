package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"device-checkout-backend/internal/clock"
	"device-checkout-backend/internal/database/models"
	apperrors "device-checkout-backend/internal/errors"
	"device-checkout-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

// TransitionServiceTestSuite runs the transition engine against the in-memory store
type TransitionServiceTestSuite struct {
	suite.Suite
	store   *memStore
	sleeper *recordingSleeper
	svc     *service.TransitionService
	ctx     context.Context

	alice   service.Actor
	bob     service.Actor
	manager service.Actor
	admin   service.Actor
}

// SetupTest sets up the test suite
func (suite *TransitionServiceTestSuite) SetupTest() {
	suite.store = newMemStore()
	suite.sleeper = &recordingSleeper{}
	retry := service.NewRetryCoordinator(service.RetryPolicy{
		MaxAttempts:    3,
		Backoff:        service.LinearBackoff(time.Second),
		AttemptTimeout: 200 * time.Millisecond,
	}, service.WithSleeper(suite.sleeper.sleep))
	suite.svc = service.NewTransitionService(suite.store, retry, clock.NewFixed(testNow), validator.New())
	suite.ctx = context.Background()

	suite.alice = service.Actor{ID: uuid.New(), Role: models.UserRoleUser}
	suite.bob = service.Actor{ID: uuid.New(), Role: models.UserRoleUser}
	suite.manager = service.Actor{ID: uuid.New(), Role: models.UserRoleManager}
	suite.admin = service.Actor{ID: uuid.New(), Role: models.UserRoleAdmin}
}

func (suite *TransitionServiceTestSuite) newDevice(state models.DeviceState) uuid.UUID {
	d := &models.Device{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "MacBook Pro",
		SerialNumber: "C02-" + uuid.NewString()[:6],
	}
	d.SetState(state)
	suite.store.putDevice(d)
	return d.ID
}

func (suite *TransitionServiceTestSuite) submit(deviceID uuid.UUID, actor service.Actor, requestType models.RequestType) (*service.RequestResponse, error) {
	return suite.svc.SubmitRequest(suite.ctx, service.SubmitRequestInput{DeviceID: deviceID, Actor: actor, Type: requestType})
}

func (suite *TransitionServiceTestSuite) process(requestID string, decision models.Decision) (*service.RequestResponse, error) {
	return suite.svc.ProcessRequest(suite.ctx, service.ProcessRequestInput{
		RequestID: uuid.MustParse(requestID),
		Actor:     suite.manager,
		Decision:  decision,
	})
}

func (suite *TransitionServiceTestSuite) mustAssign(deviceID uuid.UUID, actor service.Actor) *service.RequestResponse {
	req, err := suite.submit(deviceID, actor, models.RequestTypeAssign)
	suite.Require().NoError(err)
	_, err = suite.process(req.ID, models.DecisionApproved)
	suite.Require().NoError(err)
	return req
}

func (suite *TransitionServiceTestSuite) assertConsistent(deviceID uuid.UUID) {
	device := suite.store.device(deviceID)
	var pending []models.Request
	for _, r := range suite.store.requestsFor(deviceID) {
		if r.IsPending() {
			pending = append(pending, r)
		}
	}
	suite.Require().LessOrEqual(len(pending), 1, "at most one pending request per device")

	var current *models.Request
	if len(pending) == 1 {
		current = &pending[0]
	}
	suite.NoError(device.CheckInvariants(current))
	suite.Equal(device.Status == models.DeviceStatusAssigned, device.AssignedToID != nil)
}

// TestScenario walks a device through assign and release with manager approval
func (suite *TransitionServiceTestSuite) TestScenario() {
	deviceID := suite.newDevice(models.StateAvailable{})

	r1, err := suite.submit(deviceID, suite.alice, models.RequestTypeAssign)
	suite.Require().NoError(err)
	suite.Equal("pending", r1.Status)
	suite.Equal("pending", r1.DeviceStatus)
	suite.Equal(testNow.Format(time.RFC3339), r1.RequestedAt)
	device := suite.store.device(deviceID)
	suite.Equal(models.DeviceStatusPending, device.Status)
	suite.Equal(suite.alice.ID, *device.RequestedBy)
	suite.assertConsistent(deviceID)

	processed, err := suite.process(r1.ID, models.DecisionApproved)
	suite.Require().NoError(err)
	suite.Equal("approved", processed.Status)
	suite.Equal(suite.manager.ID.String(), *processed.ProcessedByID)
	device = suite.store.device(deviceID)
	suite.Equal(models.DeviceStatusAssigned, device.Status)
	suite.Equal(suite.alice.ID, *device.AssignedToID)
	suite.Nil(device.RequestedBy)
	suite.Equal(testNow, *device.ReceivedDate)
	suite.assertConsistent(deviceID)

	r2, err := suite.submit(deviceID, suite.alice, models.RequestTypeRelease)
	suite.Require().NoError(err)
	suite.Equal("pending", r2.Status)
	suite.Equal("assigned", r2.DeviceStatus, "release keeps the holder until approved")
	suite.assertConsistent(deviceID)

	_, err = suite.process(r2.ID, models.DecisionApproved)
	suite.Require().NoError(err)
	device = suite.store.device(deviceID)
	suite.Equal(models.DeviceStatusAvailable, device.Status)
	suite.Nil(device.AssignedToID)
	suite.Nil(device.RequestedBy)
	suite.Equal(models.RequestStatusReturned, suite.store.request(uuid.MustParse(r1.ID)).Status)
	suite.Equal(models.RequestStatusApproved, suite.store.request(uuid.MustParse(r2.ID)).Status)
	suite.assertConsistent(deviceID)
}

// TestReleaseRoundTripClosesOnlyHolderAssignments checks that other users' history is untouched
func (suite *TransitionServiceTestSuite) TestReleaseRoundTripClosesOnlyHolderAssignments() {
	deviceID := suite.newDevice(models.StateAvailable{})
	bobsOld := &models.Request{
		BaseModel: models.BaseModel{ID: uuid.New()},
		DeviceID:  deviceID, UserID: suite.bob.ID,
		Type: models.RequestTypeAssign, Status: models.RequestStatusReturned, RequestedAt: testNow.Add(-48 * time.Hour),
	}
	suite.store.putRequest(bobsOld)

	assign := suite.mustAssign(deviceID, suite.alice)
	release, err := suite.submit(deviceID, suite.alice, models.RequestTypeRelease)
	suite.Require().NoError(err)
	_, err = suite.process(release.ID, models.DecisionApproved)
	suite.Require().NoError(err)

	suite.Equal(models.RequestStatusReturned, suite.store.request(uuid.MustParse(assign.ID)).Status)
	suite.Equal(models.RequestStatusReturned, suite.store.request(bobsOld.ID).Status)
}

// TestAdminForceReleaseClosesHolderAssignment checks that a release filed by an admin ends the holder's loan
func (suite *TransitionServiceTestSuite) TestAdminForceReleaseClosesHolderAssignment() {
	deviceID := suite.newDevice(models.StateAvailable{})
	assign := suite.mustAssign(deviceID, suite.alice)

	release, err := suite.submit(deviceID, suite.admin, models.RequestTypeRelease)
	suite.Require().NoError(err)
	suite.Equal("assigned", release.DeviceStatus)
	_, err = suite.process(release.ID, models.DecisionApproved)
	suite.Require().NoError(err)

	device := suite.store.device(deviceID)
	suite.Equal(models.DeviceStatusAvailable, device.Status)
	suite.Nil(device.AssignedToID)
	suite.Nil(device.RequestedBy)
	suite.Equal(models.RequestStatusReturned, suite.store.request(uuid.MustParse(assign.ID)).Status)
	suite.Equal(models.RequestStatusApproved, suite.store.request(uuid.MustParse(release.ID)).Status)
	suite.assertConsistent(deviceID)
}

// TestReturnRequiresRelease covers the boundary between assigned and returned
func (suite *TransitionServiceTestSuite) TestReturnRequiresRelease() {
	deviceID := suite.newDevice(models.StateAvailable{})
	suite.mustAssign(deviceID, suite.alice)

	_, err := suite.submit(deviceID, suite.alice, models.RequestTypeReturn)
	suite.ErrorIs(err, apperrors.ErrMustReleaseFirst)
	suite.Empty(suite.pendingFor(deviceID), "rejected transitions leave no ledger entry")

	release, err := suite.submit(deviceID, suite.alice, models.RequestTypeRelease)
	suite.Require().NoError(err)
	_, err = suite.process(release.ID, models.DecisionApproved)
	suite.Require().NoError(err)

	ret, err := suite.submit(deviceID, suite.alice, models.RequestTypeReturn)
	suite.Require().NoError(err)
	suite.Equal("available", ret.DeviceStatus)

	_, err = suite.process(ret.ID, models.DecisionApproved)
	suite.Require().NoError(err)
	device := suite.store.device(deviceID)
	suite.Equal(models.DeviceStatusReturned, device.Status)
	suite.Equal(clock.StartOfDay(testNow), *device.ReturnDate)
	suite.Nil(device.RequestedBy)
	suite.assertConsistent(deviceID)
}

func (suite *TransitionServiceTestSuite) pendingFor(deviceID uuid.UUID) []models.Request {
	var pending []models.Request
	for _, r := range suite.store.requestsFor(deviceID) {
		if r.IsPending() {
			pending = append(pending, r)
		}
	}
	return pending
}

// TestReportApproval moves an assigned device to the reported state and closes the holder's interval
func (suite *TransitionServiceTestSuite) TestReportApproval() {
	for _, rt := range []models.ReportType{models.ReportTypeMissing, models.ReportTypeStolen, models.ReportTypeDead} {
		suite.Run(string(rt), func() {
			deviceID := suite.newDevice(models.StateAvailable{})
			assign := suite.mustAssign(deviceID, suite.alice)

			reportType := rt
			report, err := suite.svc.SubmitRequest(suite.ctx, service.SubmitRequestInput{
				DeviceID: deviceID, Actor: suite.alice, Type: models.RequestTypeReport, ReportType: &reportType,
			})
			suite.Require().NoError(err)
			suite.Equal(string(rt), *report.ReportType)

			_, err = suite.process(report.ID, models.DecisionApproved)
			suite.Require().NoError(err)

			device := suite.store.device(deviceID)
			suite.Equal(string(rt), string(device.Status))
			suite.Nil(device.AssignedToID)
			suite.Equal(models.RequestStatusReturned, suite.store.request(uuid.MustParse(assign.ID)).Status)
			suite.assertConsistent(deviceID)
		})
	}
}

// TestReportTypeDroppedForOtherTypes ensures report_type is only stored on report requests
func (suite *TransitionServiceTestSuite) TestReportTypeDroppedForOtherTypes() {
	deviceID := suite.newDevice(models.StateAvailable{})
	rt := models.ReportTypeDead

	resp, err := suite.svc.SubmitRequest(suite.ctx, service.SubmitRequestInput{
		DeviceID: deviceID, Actor: suite.alice, Type: models.RequestTypeAssign, ReportType: &rt,
	})

	suite.Require().NoError(err)
	suite.Nil(resp.ReportType)
}

// TestRejectAssignRestoresAvailability clears the pending marker
func (suite *TransitionServiceTestSuite) TestRejectAssignRestoresAvailability() {
	deviceID := suite.newDevice(models.StateAvailable{})
	req, err := suite.submit(deviceID, suite.alice, models.RequestTypeAssign)
	suite.Require().NoError(err)

	resp, err := suite.process(req.ID, models.DecisionRejected)

	suite.Require().NoError(err)
	suite.Equal("rejected", resp.Status)
	suite.Equal("available", resp.DeviceStatus)
	device := suite.store.device(deviceID)
	suite.Nil(device.RequestedBy)
	suite.Nil(device.AssignedToID)
	suite.assertConsistent(deviceID)
}

// TestRejectReleaseKeepsHolder leaves the device with its holder
func (suite *TransitionServiceTestSuite) TestRejectReleaseKeepsHolder() {
	deviceID := suite.newDevice(models.StateAvailable{})
	assign := suite.mustAssign(deviceID, suite.alice)
	release, err := suite.submit(deviceID, suite.alice, models.RequestTypeRelease)
	suite.Require().NoError(err)

	_, err = suite.process(release.ID, models.DecisionRejected)

	suite.Require().NoError(err)
	device := suite.store.device(deviceID)
	suite.Equal(models.DeviceStatusAssigned, device.Status)
	suite.Equal(suite.alice.ID, *device.AssignedToID)
	suite.Nil(device.RequestedBy)
	suite.Equal(models.RequestStatusApproved, suite.store.request(uuid.MustParse(assign.ID)).Status)
	suite.assertConsistent(deviceID)
}

// TestProcessRequiresManager rejects plain users
func (suite *TransitionServiceTestSuite) TestProcessRequiresManager() {
	deviceID := suite.newDevice(models.StateAvailable{})
	req, err := suite.submit(deviceID, suite.alice, models.RequestTypeAssign)
	suite.Require().NoError(err)

	_, err = suite.svc.ProcessRequest(suite.ctx, service.ProcessRequestInput{
		RequestID: uuid.MustParse(req.ID), Actor: suite.alice, Decision: models.DecisionApproved,
	})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal(models.RequestStatusPending, suite.store.request(uuid.MustParse(req.ID)).Status)
}

// TestProcessInvalidDecision rejects unknown decisions before touching storage
func (suite *TransitionServiceTestSuite) TestProcessInvalidDecision() {
	_, err := suite.svc.ProcessRequest(suite.ctx, service.ProcessRequestInput{
		RequestID: uuid.New(), Actor: suite.manager, Decision: "maybe",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidDecision)
	suite.Zero(suite.store.lockCalls)
}

// TestProcessTwice returns AlreadyProcessed on the second decision
func (suite *TransitionServiceTestSuite) TestProcessTwice() {
	deviceID := suite.newDevice(models.StateAvailable{})
	req, err := suite.submit(deviceID, suite.alice, models.RequestTypeAssign)
	suite.Require().NoError(err)
	_, err = suite.process(req.ID, models.DecisionApproved)
	suite.Require().NoError(err)

	_, err = suite.process(req.ID, models.DecisionRejected)

	suite.ErrorIs(err, apperrors.ErrAlreadyProcessed)
	suite.Equal(models.DeviceStatusAssigned, suite.store.device(deviceID).Status)
}

// TestProcessUnknownRequest maps to not found
func (suite *TransitionServiceTestSuite) TestProcessUnknownRequest() {
	_, err := suite.process(uuid.NewString(), models.DecisionApproved)
	suite.ErrorIs(err, apperrors.ErrRequestNotFound)
}

// TestSubmitUnknownDevice maps to not found
func (suite *TransitionServiceTestSuite) TestSubmitUnknownDevice() {
	_, err := suite.submit(uuid.New(), suite.alice, models.RequestTypeAssign)
	suite.ErrorIs(err, apperrors.ErrDeviceNotFound)
}

// TestSubmitInvalidType is rejected before any lock is taken
func (suite *TransitionServiceTestSuite) TestSubmitInvalidType() {
	deviceID := suite.newDevice(models.StateAvailable{})

	_, err := suite.submit(deviceID, suite.alice, "borrow")

	suite.ErrorIs(err, apperrors.ErrInvalidRequestType)
	suite.Zero(suite.store.lockCalls)
}

// TestSubmitDuplicatePending blocks a second request while one is pending
func (suite *TransitionServiceTestSuite) TestSubmitDuplicatePending() {
	deviceID := suite.newDevice(models.StateAvailable{})
	suite.mustAssign(deviceID, suite.alice)
	_, err := suite.submit(deviceID, suite.alice, models.RequestTypeRelease)
	suite.Require().NoError(err)

	rt := models.ReportTypeMissing
	_, err = suite.svc.SubmitRequest(suite.ctx, service.SubmitRequestInput{
		DeviceID: deviceID, Actor: suite.alice, Type: models.RequestTypeReport, ReportType: &rt,
	})

	suite.ErrorIs(err, apperrors.ErrDuplicatePendingRequest)
	suite.Len(suite.pendingFor(deviceID), 1)
}

// TestCancelTwice is a no-op the second time
func (suite *TransitionServiceTestSuite) TestCancelTwice() {
	deviceID := suite.newDevice(models.StateAvailable{})
	req, err := suite.submit(deviceID, suite.alice, models.RequestTypeAssign)
	suite.Require().NoError(err)
	in := service.CancelRequestInput{RequestID: uuid.MustParse(req.ID), Actor: suite.alice}

	first, err := suite.svc.CancelRequest(suite.ctx, in)
	suite.Require().NoError(err)
	suite.Equal("cancelled", first.Status)
	suite.Equal("available", first.DeviceStatus)
	commits := suite.store.commits

	_, err = suite.svc.CancelRequest(suite.ctx, in)

	suite.ErrorIs(err, apperrors.ErrAlreadyProcessed)
	suite.Equal(commits, suite.store.commits, "second cancel must not write")
	suite.assertConsistent(deviceID)
}

// TestCancelByOtherUser is refused; admins may cancel on behalf of anyone
func (suite *TransitionServiceTestSuite) TestCancelByOtherUser() {
	deviceID := suite.newDevice(models.StateAvailable{})
	req, err := suite.submit(deviceID, suite.alice, models.RequestTypeAssign)
	suite.Require().NoError(err)
	requestID := uuid.MustParse(req.ID)

	_, err = suite.svc.CancelRequest(suite.ctx, service.CancelRequestInput{RequestID: requestID, Actor: suite.bob})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal(models.RequestStatusPending, suite.store.request(requestID).Status)

	resp, err := suite.svc.CancelRequest(suite.ctx, service.CancelRequestInput{RequestID: requestID, Actor: suite.admin})
	suite.Require().NoError(err)
	suite.Equal(suite.admin.ID.String(), *resp.ProcessedByID)
}

// TestCancelReleaseKeepsHolder restores the assigned state
func (suite *TransitionServiceTestSuite) TestCancelReleaseKeepsHolder() {
	deviceID := suite.newDevice(models.StateAvailable{})
	suite.mustAssign(deviceID, suite.alice)
	release, err := suite.submit(deviceID, suite.alice, models.RequestTypeRelease)
	suite.Require().NoError(err)

	resp, err := suite.svc.CancelRequest(suite.ctx, service.CancelRequestInput{RequestID: uuid.MustParse(release.ID), Actor: suite.alice})

	suite.Require().NoError(err)
	suite.Equal("assigned", resp.DeviceStatus)
	suite.assertConsistent(deviceID)
}

// TestRetriesTransientFailures reruns the whole unit and succeeds
func (suite *TransitionServiceTestSuite) TestRetriesTransientFailures() {
	deviceID := suite.newDevice(models.StateAvailable{})
	suite.store.failLocks(apperrors.ErrDeadlock, apperrors.ErrLockWaitTimeout)

	resp, err := suite.submit(deviceID, suite.alice, models.RequestTypeAssign)

	suite.Require().NoError(err)
	suite.Equal("pending", resp.Status)
	suite.Equal(3, suite.store.lockCalls)
	suite.Equal([]time.Duration{time.Second, 2 * time.Second}, suite.sleeper.waits)
	suite.Len(suite.pendingFor(deviceID), 1)
}

// TestRetryExhaustionLeavesNoWrites gives up after three contended attempts
func (suite *TransitionServiceTestSuite) TestRetryExhaustionLeavesNoWrites() {
	deviceID := suite.newDevice(models.StateAvailable{})
	suite.store.failLocks(apperrors.ErrDeadlock, apperrors.ErrDeadlock, apperrors.ErrDeadlock)

	_, err := suite.submit(deviceID, suite.alice, models.RequestTypeAssign)

	suite.ErrorIs(err, apperrors.ErrLockContentionExhausted)
	suite.False(errors.Is(err, apperrors.ErrDeadlock))
	suite.Empty(suite.store.requestsFor(deviceID))
	suite.Equal(models.DeviceStatusAvailable, suite.store.device(deviceID).Status)
}

// TestLockHeldPastAttemptTimeout exhausts retries while another holder keeps the row
func (suite *TransitionServiceTestSuite) TestLockHeldPastAttemptTimeout() {
	deviceID := suite.newDevice(models.StateAvailable{})
	unlock := suite.store.holdLock(deviceID)
	defer unlock()

	_, err := suite.submit(deviceID, suite.alice, models.RequestTypeAssign)

	suite.ErrorIs(err, apperrors.ErrLockContentionExhausted)
	suite.Equal(3, suite.store.lockCalls)
	suite.Empty(suite.store.requestsFor(deviceID))
}

// TestConcurrentAssignsOneWinner races many users for the same device
func (suite *TransitionServiceTestSuite) TestConcurrentAssignsOneWinner() {
	deviceID := suite.newDevice(models.StateAvailable{})
	const contenders = 10

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	start := make(chan struct{})
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			actor := service.Actor{ID: uuid.New(), Role: models.UserRoleUser}
			_, errs[i] = suite.submit(deviceID, actor, models.RequestTypeAssign)
		}(i)
	}
	close(start)
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		suite.True(errors.Is(err, apperrors.ErrDuplicatePendingRequest) || errors.Is(err, apperrors.ErrDeviceNotAvailable),
			"unexpected error: %v", err)
	}
	suite.Equal(1, winners)
	suite.Len(suite.pendingFor(deviceID), 1)
	suite.assertConsistent(deviceID)
}

// TestConcurrentDevicesDoNotBlock runs independent devices in parallel
func (suite *TransitionServiceTestSuite) TestConcurrentDevicesDoNotBlock() {
	blocked := suite.newDevice(models.StateAvailable{})
	free := suite.newDevice(models.StateAvailable{})
	unlock := suite.store.holdLock(blocked)
	defer unlock()

	_, err := suite.submit(free, suite.alice, models.RequestTypeAssign)

	suite.NoError(err)
	suite.Equal(models.DeviceStatusPending, suite.store.device(free).Status)
}

func TestTransitionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransitionServiceTestSuite))
}
