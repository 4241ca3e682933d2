//go:build unit || e2e

// Package memstore is an in-memory unit of work for command tests. A
// transaction sees its own writes on top of the last committed state, holds
// a per-session lock from GetForUpdate until it ends, and publishes its
// writes only on commit.
package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"signup-engine/internal/domain/reservation"
	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra"
	"signup-engine/internal/infra/pgquery"
	"signup-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.Mutex
	sessions     map[uuid.UUID]*session.Session
	reservations map[uuid.UUID]*reservation.Reservation
	events       []shared.OutboxEvent
	published    map[uuid.UUID]time.Time

	lockMu sync.Mutex
	locks  map[uuid.UUID]*sync.Mutex

	failMu   sync.Mutex
	failures map[string]error
}

func New() *Store {
	return &Store{
		sessions:     make(map[uuid.UUID]*session.Session),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		published:    make(map[uuid.UUID]time.Time),
		locks:        make(map[uuid.UUID]*sync.Mutex),
		failures:     make(map[string]error),
	}
}

// Operation names accepted by FailOn.
const (
	OpSessionCreate            = "sessions.create"
	OpSessionUpdate            = "sessions.update"
	OpSessionDelete            = "sessions.delete"
	OpReservationCreate        = "reservations.create"
	OpReservationUpdate        = "reservations.update"
	OpReservationDelete        = "reservations.delete"
	OpReservationDeleteSession = "reservations.delete_by_session"
	OpReservationUpdateExpiry  = "reservations.update_expiry"
	OpEventAppend              = "events.append"
)

// FailOn makes every later call of op return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *Store) failure(op string) error {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	return s.failures[op]
}

func (s *Store) rowLock(id uuid.UUID) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// Within implements shared.UnitOfWork.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := newTx(s)
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// PutSession stores a committed copy of sess.
func (s *Store) PutSession(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID()] = cloneSession(sess)
}

// PutReservation stores a committed copy of r without touching session pools.
func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID()] = cloneReservation(r)
}

func (s *Store) Session(id uuid.UUID) (*session.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return cloneSession(sess), true
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, false
	}
	return cloneReservation(r), true
}

// ReservationsOf returns the committed reservations of a session ordered by creation.
func (s *Store) ReservationsOf(sessionID uuid.UUID) []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if r.SessionID() == sessionID {
			out = append(out, cloneReservation(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) Events() []shared.OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.OutboxEvent(nil), s.events...)
}

// Topics lists committed event topics in append order.
func (s *Store) Topics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	topics := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		topics = append(topics, ev.Topic)
	}
	return topics
}

func (s *Store) PublishedAt(id uuid.UUID) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.published[id]
	return at, ok
}

type tx struct {
	store *Store
	held  []*sync.Mutex
	owned map[uuid.UUID]bool

	sessions        map[uuid.UUID]*session.Session
	deletedSessions map[uuid.UUID]bool
	reservations    map[uuid.UUID]*reservation.Reservation
	deletedRes      map[uuid.UUID]bool
	events          []shared.OutboxEvent
	published       map[uuid.UUID]time.Time
}

func newTx(s *Store) *tx {
	return &tx{
		store:           s,
		owned:           make(map[uuid.UUID]bool),
		sessions:        make(map[uuid.UUID]*session.Session),
		deletedSessions: make(map[uuid.UUID]bool),
		reservations:    make(map[uuid.UUID]*reservation.Reservation),
		deletedRes:      make(map[uuid.UUID]bool),
		published:       make(map[uuid.UUID]time.Time),
	}
}

func (t *tx) Sessions() shared.SessionRepository         { return sessionRepo{t} }
func (t *tx) Reservations() shared.ReservationRepository { return reservationRepo{t} }
func (t *tx) Events() shared.EventRepository             { return eventRepo{t} }
func (t *tx) DB() pgquery.DBTX                           { return nil }

func (t *tx) lock(id uuid.UUID) {
	if t.owned[id] {
		return
	}
	l := t.store.rowLock(id)
	l.Lock()
	t.held = append(t.held, l)
	t.owned[id] = true
}

func (t *tx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

func (t *tx) commit() {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range t.deletedRes {
		delete(s.reservations, id)
	}
	for id, r := range t.reservations {
		s.reservations[id] = r
	}
	for id := range t.deletedSessions {
		delete(s.sessions, id)
	}
	for id, sess := range t.sessions {
		s.sessions[id] = sess
	}
	s.events = append(s.events, t.events...)
	for id, at := range t.published {
		s.published[id] = at
	}
}

func (t *tx) session(id uuid.UUID) (*session.Session, bool) {
	if t.deletedSessions[id] {
		return nil, false
	}
	if sess, ok := t.sessions[id]; ok {
		return cloneSession(sess), true
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	sess, ok := t.store.sessions[id]
	if !ok {
		return nil, false
	}
	return cloneSession(sess), true
}

func (t *tx) reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	if t.deletedRes[id] {
		return nil, false
	}
	if r, ok := t.reservations[id]; ok {
		return cloneReservation(r), true
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	r, ok := t.store.reservations[id]
	if !ok {
		return nil, false
	}
	return cloneReservation(r), true
}

// visibleReservations merges committed rows with this transaction's writes.
func (t *tx) visibleReservations() []*reservation.Reservation {
	merged := make(map[uuid.UUID]*reservation.Reservation)
	t.store.mu.Lock()
	for id, r := range t.store.reservations {
		merged[id] = r
	}
	t.store.mu.Unlock()
	for id, r := range t.reservations {
		merged[id] = r
	}
	out := make([]*reservation.Reservation, 0, len(merged))
	for id, r := range merged {
		if !t.deletedRes[id] {
			out = append(out, cloneReservation(r))
		}
	}
	return out
}

func (t *tx) visibleSessions() []*session.Session {
	merged := make(map[uuid.UUID]*session.Session)
	t.store.mu.Lock()
	for id, sess := range t.store.sessions {
		merged[id] = sess
	}
	t.store.mu.Unlock()
	for id, sess := range t.sessions {
		merged[id] = sess
	}
	out := make([]*session.Session, 0, len(merged))
	for id, sess := range merged {
		if !t.deletedSessions[id] {
			out = append(out, cloneSession(sess))
		}
	}
	return out
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type sessionRepo struct{ t *tx }

func (r sessionRepo) Create(_ context.Context, _ pgquery.DBTX, sess *session.Session) error {
	if err := r.t.store.failure(OpSessionCreate); err != nil {
		return err
	}
	r.t.sessions[sess.ID()] = cloneSession(sess)
	delete(r.t.deletedSessions, sess.ID())
	return nil
}

func (r sessionRepo) GetForUpdate(ctx context.Context, _ pgquery.DBTX, id uuid.UUID) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.t.lock(id)
	sess, ok := r.t.session(id)
	if !ok {
		return nil, notFound("session not found")
	}
	return sess, nil
}

func (r sessionRepo) Update(_ context.Context, _ pgquery.DBTX, sess *session.Session) error {
	if err := r.t.store.failure(OpSessionUpdate); err != nil {
		return err
	}
	if _, ok := r.t.session(sess.ID()); !ok {
		return notFound("session not found")
	}
	r.t.sessions[sess.ID()] = cloneSession(sess)
	return nil
}

func (r sessionRepo) Delete(_ context.Context, _ pgquery.DBTX, id uuid.UUID) error {
	if err := r.t.store.failure(OpSessionDelete); err != nil {
		return err
	}
	if _, ok := r.t.session(id); !ok {
		return notFound("session not found")
	}
	for _, res := range r.t.visibleReservations() {
		if res.SessionID() == id {
			return infra.WrapRepoErr("failed to delete session", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.t.sessions, id)
	r.t.deletedSessions[id] = true
	return nil
}

func (r sessionRepo) DeleteExpired(_ context.Context, _ pgquery.DBTX, now time.Time) (int64, error) {
	var n int64
	for _, sess := range r.t.visibleSessions() {
		if sess.IsExpired(now) {
			delete(r.t.sessions, sess.ID())
			r.t.deletedSessions[sess.ID()] = true
			n++
		}
	}
	return n, nil
}

type reservationRepo struct{ t *tx }

func (r reservationRepo) Create(_ context.Context, _ pgquery.DBTX, res *reservation.Reservation) error {
	if err := r.t.store.failure(OpReservationCreate); err != nil {
		return err
	}
	if _, ok := r.t.session(res.SessionID()); !ok {
		return infra.WrapRepoErr("failed to create reservation", nil, infra.KindForeignKeyViolated)
	}
	r.t.reservations[res.ID()] = cloneReservation(res)
	delete(r.t.deletedRes, res.ID())
	return nil
}

func (r reservationRepo) GetByID(_ context.Context, _ pgquery.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.t.reservation(id)
	if !ok {
		return nil, notFound("reservation not found")
	}
	return res, nil
}

func (r reservationRepo) Update(_ context.Context, _ pgquery.DBTX, res *reservation.Reservation) error {
	if err := r.t.store.failure(OpReservationUpdate); err != nil {
		return err
	}
	if _, ok := r.t.reservation(res.ID()); !ok {
		return notFound("reservation not found")
	}
	r.t.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r reservationRepo) Delete(_ context.Context, _ pgquery.DBTX, id uuid.UUID) error {
	if err := r.t.store.failure(OpReservationDelete); err != nil {
		return err
	}
	if _, ok := r.t.reservation(id); !ok {
		return notFound("reservation not found")
	}
	delete(r.t.reservations, id)
	r.t.deletedRes[id] = true
	return nil
}

func (r reservationRepo) DeleteBySession(_ context.Context, _ pgquery.DBTX, sessionID uuid.UUID) (int64, error) {
	if err := r.t.store.failure(OpReservationDeleteSession); err != nil {
		return 0, err
	}
	var n int64
	for _, res := range r.t.visibleReservations() {
		if res.SessionID() == sessionID {
			delete(r.t.reservations, res.ID())
			r.t.deletedRes[res.ID()] = true
			n++
		}
	}
	return n, nil
}

func (r reservationRepo) UpdateExpiryBySession(_ context.Context, _ pgquery.DBTX, sessionID uuid.UUID, expiresAt, now time.Time) (int64, error) {
	if err := r.t.store.failure(OpReservationUpdateExpiry); err != nil {
		return 0, err
	}
	var n int64
	for _, res := range r.t.visibleReservations() {
		if res.SessionID() != sessionID {
			continue
		}
		r.t.reservations[res.ID()] = reservation.ReconstructReservation(
			res.ID(), res.SessionID(), res.UserID(), res.Request(), expiresAt, res.CreatedAt(), now,
		)
		n++
	}
	return n, nil
}

func (r reservationRepo) DeleteExpired(_ context.Context, _ pgquery.DBTX, now time.Time) (int64, error) {
	expiredParents := make(map[uuid.UUID]bool)
	for _, sess := range r.t.visibleSessions() {
		if sess.IsExpired(now) {
			expiredParents[sess.ID()] = true
		}
	}
	var n int64
	for _, res := range r.t.visibleReservations() {
		if res.IsExpired(now) || expiredParents[res.SessionID()] {
			delete(r.t.reservations, res.ID())
			r.t.deletedRes[res.ID()] = true
			n++
		}
	}
	return n, nil
}

type eventRepo struct{ t *tx }

func (r eventRepo) Append(_ context.Context, _ pgquery.DBTX, ev shared.Event) error {
	if err := r.t.store.failure(OpEventAppend); err != nil {
		return err
	}
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return err
	}
	r.t.events = append(r.t.events, shared.OutboxEvent{
		ID:        uuid.New(),
		Topic:     ev.Topic,
		Payload:   payload,
		CreatedAt: ev.OccurredAt,
	})
	return nil
}

func (r eventRepo) ClaimPending(_ context.Context, _ pgquery.DBTX, limit int32) ([]shared.OutboxEvent, error) {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.OutboxEvent
	for _, ev := range s.events {
		if _, done := s.published[ev.ID]; done {
			continue
		}
		if int32(len(out)) >= limit {
			break
		}
		out = append(out, ev)
	}
	return out, nil
}

func (r eventRepo) MarkPublished(_ context.Context, _ pgquery.DBTX, ids []uuid.UUID, at time.Time) error {
	for _, id := range ids {
		r.t.published[id] = at
	}
	return nil
}

func cloneSession(s *session.Session) *session.Session {
	d := s.Details()
	if d.Note != nil {
		note := *d.Note
		d.Note = &note
	}
	return session.ReconstructSession(
		s.ID(), s.OwnerID(), s.ActivityDate(), d, s.Capacity(), s.Consumed(),
		s.ExpiresAt(), s.CreatedAt(), s.UpdatedAt(),
	)
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.SessionID(), r.UserID(), r.Request(), r.ExpiresAt(), r.CreatedAt(), r.UpdatedAt(),
	)
}
