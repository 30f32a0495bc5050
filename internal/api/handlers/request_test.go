package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"device-checkout-backend/internal/api/handlers"
	"device-checkout-backend/internal/auth"
	"device-checkout-backend/internal/database/models"
	apperrors "device-checkout-backend/internal/errors"
	"device-checkout-backend/internal/events"
	"device-checkout-backend/internal/mocks"
	"device-checkout-backend/internal/service"
	"device-checkout-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type recordingPublisher struct {
	events chan events.Event
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan events.Event, 8)}
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.events <- event
	return nil
}

func (p *recordingPublisher) next(t *testing.T) events.Event {
	t.Helper()
	select {
	case event := <-p.events:
		return event
	case <-time.After(time.Second):
		t.Fatal("no event published")
		return events.Event{}
	}
}

// identityMiddleware stands in for token verification
func identityMiddleware(identity **auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if *identity != nil {
			auth.SetIdentity(c, *identity)
		}
		c.Next()
	}
}

type RequestHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTransitions *mocks.MockTransitionServiceInterface
	mockRequests    *mocks.MockRequestServiceInterface
	publisher       *recordingPublisher
	identity        *auth.Identity
	http            *testutils.HTTPTestSuite
}

func (suite *RequestHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTransitions = mocks.NewMockTransitionServiceInterface(suite.ctrl)
	suite.mockRequests = mocks.NewMockRequestServiceInterface(suite.ctrl)
	suite.publisher = newRecordingPublisher()
	suite.identity = &auth.Identity{UserID: uuid.New(), Role: models.UserRoleUser}

	handler := handlers.NewRequestHandler(suite.mockTransitions, suite.mockRequests, suite.publisher)
	suite.http = testutils.SetupHTTPTest(identityMiddleware(&suite.identity))
	r := suite.http.Router
	r.POST("/devices/:id/requests", handler.SubmitRequest)
	r.PUT("/requests/:id/process", handler.ProcessRequest)
	r.PUT("/requests/:id/cancel", handler.CancelRequest)
	r.GET("/requests/:id", handler.GetRequest)
	r.GET("/requests", handler.ListRequests)
}

func (suite *RequestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RequestHandlerTestSuite) pendingResponse(deviceID uuid.UUID, requestType string) *service.RequestResponse {
	return &service.RequestResponse{
		ID:           uuid.NewString(),
		DeviceID:     deviceID.String(),
		UserID:       suite.identity.UserID.String(),
		Type:         requestType,
		Status:       string(models.RequestStatusPending),
		RequestedAt:  "2026-03-01T10:00:00Z",
		DeviceStatus: string(models.DeviceStatusPending),
	}
}

/*************** SubmitRequest ***************/

func (suite *RequestHandlerTestSuite) TestSubmitRequest_Success() {
	deviceID := uuid.New()
	resp := suite.pendingResponse(deviceID, "assign")

	suite.mockTransitions.EXPECT().
		SubmitRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.SubmitRequestInput) (*service.RequestResponse, error) {
			suite.Equal(deviceID, in.DeviceID)
			suite.Equal(suite.identity.UserID, in.Actor.ID)
			suite.Equal(models.RequestTypeAssign, in.Type)
			suite.Nil(in.ReportType)
			suite.Require().NotNil(in.Reason)
			suite.Equal("on-call week", *in.Reason)
			return resp, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/devices/"+deviceID.String()+"/requests", map[string]interface{}{
		"type":   "assign",
		"reason": "on-call week",
	})

	var body service.RequestResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &body)
	suite.Equal(resp.ID, body.ID)
	suite.Equal("pending", body.DeviceStatus)

	event := suite.publisher.next(suite.T())
	suite.Equal(events.TypeRequestSubmitted, event.Type)
	suite.Equal(resp.ID, event.RequestID)
	suite.Equal(deviceID.String(), event.DeviceID)
	suite.Equal(suite.identity.UserID.String(), event.ActorID)
	suite.Equal("assign", event.RequestType)
}

func (suite *RequestHandlerTestSuite) TestSubmitRequest_PassesReportType() {
	deviceID := uuid.New()
	suite.mockTransitions.EXPECT().
		SubmitRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.SubmitRequestInput) (*service.RequestResponse, error) {
			suite.Require().NotNil(in.ReportType)
			suite.Equal(models.ReportTypeStolen, *in.ReportType)
			return suite.pendingResponse(deviceID, "report"), nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/devices/"+deviceID.String()+"/requests", map[string]interface{}{
		"type":        "report",
		"report_type": "stolen",
	})

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.publisher.next(suite.T())
}

func (suite *RequestHandlerTestSuite) TestSubmitRequest_BadInput() {
	deviceURL := "/devices/" + uuid.NewString() + "/requests"

	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:           "invalid device id",
			Method:         http.MethodPost,
			URL:            "/devices/not-a-uuid/requests",
			Body:           map[string]interface{}{"type": "assign"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "Invalid device ID",
		},
		{
			Name:           "malformed json",
			Method:         http.MethodPost,
			URL:            deviceURL,
			Body:           `{"type":`,
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "missing type",
			Method:         http.MethodPost,
			URL:            deviceURL,
			Body:           map[string]interface{}{"reason": "x"},
			ExpectedStatus: http.StatusBadRequest,
		},
	})
	suite.Len(suite.publisher.events, 0)
}

func (suite *RequestHandlerTestSuite) TestSubmitRequest_RequiresIdentity() {
	suite.identity = nil

	recorder := suite.http.MakeRequest(http.MethodPost, "/devices/"+uuid.NewString()+"/requests", map[string]interface{}{"type": "assign"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

func (suite *RequestHandlerTestSuite) TestSubmitRequest_ErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"not available", apperrors.ErrDeviceNotAvailable, http.StatusConflict, "device is not available"},
		{"duplicate pending", apperrors.ErrDuplicatePendingRequest, http.StatusConflict, "pending request"},
		{"must release first", apperrors.ErrMustReleaseFirst, http.StatusConflict, "released"},
		{"not owner", apperrors.ErrNotOwner, http.StatusConflict, "not assigned"},
		{"device not found", apperrors.ErrDeviceNotFound, http.StatusNotFound, "device not found"},
		{"invalid report type", apperrors.ErrInvalidReportType, http.StatusBadRequest, "report_type"},
		{"invalid type", apperrors.ErrInvalidRequestType, http.StatusBadRequest, "type"},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusForbidden, "not allowed"},
		{"contention", apperrors.NewContentionExhaustedError("submit request", 3, apperrors.ErrLockWaitTimeout), http.StatusServiceUnavailable, "retries exhausted"},
		{"storage failure", fmt.Errorf("lock device: %w", errors.New("connection reset")), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockTransitions.EXPECT().SubmitRequest(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			recorder := suite.http.MakeRequest(http.MethodPost, "/devices/"+uuid.NewString()+"/requests", map[string]interface{}{"type": "assign"})

			testutils.AssertErrorResponse(suite.T(), recorder, tc.status, tc.msg)
			if tc.status == http.StatusServiceUnavailable {
				suite.Equal("1", recorder.Header().Get("Retry-After"))
			}
			suite.Len(suite.publisher.events, 0)
		})
	}
}

/*************** ProcessRequest ***************/

func (suite *RequestHandlerTestSuite) TestProcessRequest_Success() {
	suite.identity = &auth.Identity{UserID: uuid.New(), Role: models.UserRoleManager}
	requestID := uuid.New()
	processedBy := suite.identity.UserID.String()
	resp := &service.RequestResponse{
		ID:            requestID.String(),
		DeviceID:      uuid.NewString(),
		UserID:        uuid.NewString(),
		ProcessedByID: &processedBy,
		Type:          "assign",
		Status:        "approved",
		DeviceStatus:  "assigned",
	}

	suite.mockTransitions.EXPECT().
		ProcessRequest(gomock.Any(), service.ProcessRequestInput{
			RequestID: requestID,
			Actor:     service.Actor{ID: suite.identity.UserID, Role: models.UserRoleManager},
			Decision:  models.DecisionApproved,
		}).
		Return(resp, nil)

	recorder := suite.http.MakeRequest(http.MethodPut, "/requests/"+requestID.String()+"/process", map[string]interface{}{"decision": "approved"})

	var body service.RequestResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal("approved", body.Status)
	suite.Equal("assigned", body.DeviceStatus)

	event := suite.publisher.next(suite.T())
	suite.Equal(events.TypeRequestProcessed, event.Type)
	suite.Equal("approved", event.Status)
	suite.Equal("assigned", event.DeviceStatus)
}

func (suite *RequestHandlerTestSuite) TestProcessRequest_Errors() {
	requestURL := "/requests/" + uuid.NewString() + "/process"

	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:           "missing decision",
			Method:         http.MethodPut,
			URL:            requestURL,
			Body:           map[string]interface{}{},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "invalid request id",
			Method:         http.MethodPut,
			URL:            "/requests/123/process",
			Body:           map[string]interface{}{"decision": "approved"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "Invalid request ID",
		},
		{
			Name:   "not a manager",
			Method: http.MethodPut,
			URL:    requestURL,
			Body:   map[string]interface{}{"decision": "approved"},
			Setup: func() {
				suite.mockTransitions.EXPECT().ProcessRequest(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUnauthorized)
			},
			ExpectedStatus: http.StatusForbidden,
		},
		{
			Name:   "already processed",
			Method: http.MethodPut,
			URL:    requestURL,
			Body:   map[string]interface{}{"decision": "rejected"},
			Setup: func() {
				suite.mockTransitions.EXPECT().ProcessRequest(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrAlreadyProcessed)
			},
			ExpectedStatus: http.StatusConflict,
			ExpectedError:  "already been processed",
		},
		{
			Name:   "invalid decision",
			Method: http.MethodPut,
			URL:    requestURL,
			Body:   map[string]interface{}{"decision": "maybe"},
			Setup: func() {
				suite.mockTransitions.EXPECT().ProcessRequest(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidDecision)
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "decision",
		},
		{
			Name:   "unknown request",
			Method: http.MethodPut,
			URL:    requestURL,
			Body:   map[string]interface{}{"decision": "approved"},
			Setup: func() {
				suite.mockTransitions.EXPECT().ProcessRequest(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRequestNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "request not found",
		},
	})
	suite.Len(suite.publisher.events, 0)
}

/*************** CancelRequest ***************/

func (suite *RequestHandlerTestSuite) TestCancelRequest() {
	requestID := uuid.New()
	resp := &service.RequestResponse{
		ID:           requestID.String(),
		DeviceID:     uuid.NewString(),
		UserID:       suite.identity.UserID.String(),
		Type:         "assign",
		Status:       "cancelled",
		DeviceStatus: "available",
	}

	suite.mockTransitions.EXPECT().
		CancelRequest(gomock.Any(), service.CancelRequestInput{
			RequestID: requestID,
			Actor:     service.Actor{ID: suite.identity.UserID, Role: models.UserRoleUser},
		}).
		Return(resp, nil)

	recorder := suite.http.MakeRequest(http.MethodPut, "/requests/"+requestID.String()+"/cancel", nil)

	var body service.RequestResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal("cancelled", body.Status)

	event := suite.publisher.next(suite.T())
	suite.Equal(events.TypeRequestCancelled, event.Type)
	suite.Equal("available", event.DeviceStatus)
}

func (suite *RequestHandlerTestSuite) TestCancelRequest_AlreadyProcessed() {
	suite.mockTransitions.EXPECT().CancelRequest(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrAlreadyProcessed)

	recorder := suite.http.MakeRequest(http.MethodPut, "/requests/"+uuid.NewString()+"/cancel", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already been processed")
	suite.Len(suite.publisher.events, 0)
}

/*************** Queries ***************/

func (suite *RequestHandlerTestSuite) TestGetRequest() {
	requestID := uuid.New()
	suite.mockRequests.EXPECT().GetRequestByID(requestID).Return(&service.RequestResponse{ID: requestID.String(), Status: "pending"}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/requests/"+requestID.String(), nil)

	var body service.RequestResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal(requestID.String(), body.ID)
}

func (suite *RequestHandlerTestSuite) TestGetRequest_NotFound() {
	requestID := uuid.New()
	suite.mockRequests.EXPECT().GetRequestByID(requestID).Return(nil, apperrors.ErrRequestNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/requests/"+requestID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "request not found")
}

func (suite *RequestHandlerTestSuite) TestListRequests_Filters() {
	deviceID := uuid.New()
	userID := uuid.New()

	suite.mockRequests.EXPECT().
		ListRequests(service.RequestQuery{Status: "pending", Type: "release", DeviceID: &deviceID, UserID: &userID}, 5, 10).
		Return([]service.RequestResponse{{ID: "r-1"}}, int64(11), nil)

	recorder := suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/requests?status=pending&type=release&device_id=%s&user_id=%s&limit=5&offset=10", deviceID, userID), nil)

	var body service.RequestsListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal(int64(11), body.Total)
	suite.Equal(5, body.Limit)
	suite.Equal(10, body.Offset)
	suite.Len(body.Requests, 1)
}

func (suite *RequestHandlerTestSuite) TestListRequests_BadFilters() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/requests?device_id=nope", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "device_id")

	suite.mockRequests.EXPECT().ListRequests(gomock.Any(), 20, 0).Return(nil, int64(0), apperrors.ErrInvalidStatus)
	recorder = suite.http.MakeRequest(http.MethodGet, "/requests?status=lost", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "status")
}

func TestRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func TestPublishFailureDoesNotAffectResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	transitions := mocks.NewMockTransitionServiceInterface(ctrl)
	identity := &auth.Identity{UserID: uuid.New(), Role: models.UserRoleUser}
	failing := &failingPublisher{called: make(chan struct{})}

	handler := handlers.NewRequestHandler(transitions, mocks.NewMockRequestServiceInterface(ctrl), failing)
	h := testutils.SetupHTTPTest(identityMiddleware(&identity))
	h.Router.PUT("/requests/:id/cancel", handler.CancelRequest)

	transitions.EXPECT().CancelRequest(gomock.Any(), gomock.Any()).Return(&service.RequestResponse{ID: "r-1", Status: "cancelled"}, nil)

	recorder := h.MakeRequest(http.MethodPut, "/requests/"+uuid.NewString()+"/cancel", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	select {
	case <-failing.called:
	case <-time.After(time.Second):
		t.Fatal("publisher was not called")
	}
}

type failingPublisher struct {
	called chan struct{}
}

func (p *failingPublisher) Publish(context.Context, events.Event) error {
	close(p.called)
	return errors.New("redis unavailable")
}
