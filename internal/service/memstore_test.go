package service_test

import (
	"context"
	"sync"

	"device-checkout-backend/internal/database/models"
	apperrors "device-checkout-backend/internal/errors"

	"github.com/google/uuid"
)

// memStore is an in-memory TransitionRepositoryInterface with row locks held until commit
// or rollback and writes staged per transaction, so engine tests see the same isolation
// the Postgres store gives: a second transaction blocks on the device row and then reads
// what the first one committed.
type memStore struct {
	mu       sync.Mutex
	devices  map[uuid.UUID]models.Device
	requests map[uuid.UUID]models.Request
	locks    map[uuid.UUID]chan struct{}

	// lockFailures are returned, in order, by the next LockDevice calls
	lockFailures []error
	lockCalls    int
	commits      int
}

type memTx struct {
	devices  map[uuid.UUID]models.Device
	requests map[uuid.UUID]models.Request
	held     []uuid.UUID
}

type memTxKey struct{}

func newMemStore() *memStore {
	return &memStore{
		devices:  map[uuid.UUID]models.Device{},
		requests: map[uuid.UUID]models.Request{},
		locks:    map[uuid.UUID]chan struct{}{},
	}
}

func (s *memStore) putDevice(d *models.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.devices[d.ID] = *d
}

func (s *memStore) putRequest(r *models.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID] = *r
}

func (s *memStore) device(id uuid.UUID) models.Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.devices[id]
}

func (s *memStore) request(id uuid.UUID) models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[id]
}

func (s *memStore) requestsFor(deviceID uuid.UUID) []models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Request
	for _, r := range s.requests {
		if r.DeviceID == deviceID {
			out = append(out, r)
		}
	}
	return out
}

func (s *memStore) failLocks(errs ...error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockFailures = append(s.lockFailures, errs...)
}

// holdLock takes a row lock outside any transaction; the returned func releases it
func (s *memStore) holdLock(id uuid.UUID) func() {
	ch := s.lockChan(id)
	ch <- struct{}{}
	return func() { <-ch }
}

func (s *memStore) lockChan(id uuid.UUID) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.locks[id]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[id] = ch
	}
	return ch
}

func (s *memStore) acquire(ctx context.Context, tx *memTx, id uuid.UUID) error {
	for _, held := range tx.held {
		if held == id {
			return nil
		}
	}
	select {
	case s.lockChan(id) <- struct{}{}:
		tx.held = append(tx.held, id)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *memStore) release(tx *memTx) {
	for _, id := range tx.held {
		<-s.lockChan(id)
	}
	tx.held = nil
}

func txOf(ctx context.Context) *memTx {
	tx, _ := ctx.Value(memTxKey{}).(*memTx)
	if tx == nil {
		panic("memStore used outside WithTx")
	}
	return tx
}

func (s *memStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := &memTx{devices: map[uuid.UUID]models.Device{}, requests: map[uuid.UUID]models.Request{}}
	defer s.release(tx)

	if err := fn(context.WithValue(ctx, memTxKey{}, tx)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, d := range tx.devices {
		s.devices[id] = d
	}
	for id, r := range tx.requests {
		s.requests[id] = r
	}
	s.commits++
	return nil
}

func (s *memStore) readDevice(tx *memTx, id uuid.UUID) (models.Device, bool) {
	if d, ok := tx.devices[id]; ok {
		return d, true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.devices[id]
	return d, ok
}

func (s *memStore) readRequest(tx *memTx, id uuid.UUID) (models.Request, bool) {
	if r, ok := tx.requests[id]; ok {
		return r, true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	return r, ok
}

// visibleRequests merges committed rows with the transaction's staged writes
func (s *memStore) visibleRequests(tx *memTx) []models.Request {
	s.mu.Lock()
	merged := make(map[uuid.UUID]models.Request, len(s.requests))
	for id, r := range s.requests {
		merged[id] = r
	}
	s.mu.Unlock()
	for id, r := range tx.requests {
		merged[id] = r
	}
	out := make([]models.Request, 0, len(merged))
	for _, r := range merged {
		out = append(out, r)
	}
	return out
}

func (s *memStore) LockDevice(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	tx := txOf(ctx)

	s.mu.Lock()
	s.lockCalls++
	if len(s.lockFailures) > 0 {
		err := s.lockFailures[0]
		s.lockFailures = s.lockFailures[1:]
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	if err := s.acquire(ctx, tx, id); err != nil {
		return nil, err
	}
	d, ok := s.readDevice(tx, id)
	if !ok {
		return nil, apperrors.ErrDeviceNotFound
	}
	return &d, nil
}

func (s *memStore) GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	r, ok := s.readRequest(txOf(ctx), id)
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return &r, nil
}

func (s *memStore) LockRequest(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	tx := txOf(ctx)
	if err := s.acquire(ctx, tx, id); err != nil {
		return nil, err
	}
	r, ok := s.readRequest(tx, id)
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return &r, nil
}

func (s *memStore) FindPendingRequest(ctx context.Context, deviceID uuid.UUID) (*models.Request, error) {
	for _, r := range s.visibleRequests(txOf(ctx)) {
		if r.DeviceID == deviceID && r.Status == models.RequestStatusPending {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memStore) CreateRequest(ctx context.Context, req *models.Request) error {
	tx := txOf(ctx)
	if req.Status == models.RequestStatusPending {
		for _, r := range s.visibleRequests(tx) {
			if r.DeviceID == req.DeviceID && r.Status == models.RequestStatusPending {
				return apperrors.ErrDuplicatePendingRequest
			}
		}
	}
	tx.requests[req.ID] = *req
	return nil
}

func (s *memStore) SaveRequest(ctx context.Context, req *models.Request) error {
	txOf(ctx).requests[req.ID] = *req
	return nil
}

func (s *memStore) SaveDevice(ctx context.Context, device *models.Device) error {
	txOf(ctx).devices[device.ID] = *device
	return nil
}

func (s *memStore) CloseAssignments(ctx context.Context, deviceID, holderID uuid.UUID) (int64, error) {
	tx := txOf(ctx)
	var n int64
	for _, r := range s.visibleRequests(tx) {
		if r.DeviceID == deviceID && r.UserID == holderID && r.IsOpenAssignment() {
			r.Status = models.RequestStatusReturned
			tx.requests[r.ID] = r
			n++
		}
	}
	return n, nil
}
