package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"electrofusion/kv"
	"electrofusion/models"
)

const keyPrefix = "electro-fusion"

// Store owns one user's AppState for the life of the session. Every
// dispatched action runs through the pure reducer, then the records it
// touched are written to durable storage before Dispatch returns.
//
// Persistence is deliberately weak: a failed write is logged and the
// in-memory state still advances, so a crash right after a failed write
// loses that mutation. This mirrors the storefront's local-storage policy.
type Store struct {
	mu     sync.Mutex
	userID string
	kv     kv.Store
	state  AppState
}

// NewStore builds a store for userID and rehydrates it from durable
// storage. Missing records are empty collections, not errors; a corrupt
// record is logged and dropped.
func NewStore(ctx context.Context, store kv.Store, userID string) *Store {
	s := &Store{
		userID: userID,
		kv:     store,
		state: AppState{
			Cart:     []models.CartItem{},
			Wishlist: []models.Product{},
			Orders:   []models.Order{},
		},
	}
	s.rehydrate(ctx)
	return s
}

func recordKey(record Record, userID string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, record, userID)
}

func (s *Store) rehydrate(ctx context.Context) {
	s.loadRecord(ctx, RecordCart, &s.state.Cart)
	s.loadRecord(ctx, RecordWishlist, &s.state.Wishlist)
	s.loadRecord(ctx, RecordOrders, &s.state.Orders)

	var user models.User
	if s.loadRecord(ctx, RecordUser, &user) {
		s.state.User = &user
		s.state.IsAuthenticated = true
	}
}

func (s *Store) loadRecord(ctx context.Context, record Record, dst any) bool {
	data, err := s.kv.Get(ctx, recordKey(record, s.userID))
	if err != nil {
		if err != kv.ErrNotFound {
			log.Printf("state: load %s for %s: %v", record, s.userID, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("state: corrupt %s record for %s: %v", record, s.userID, err)
		return false
	}
	return true
}

// Dispatch applies the action and synchronously persists the records it
// changed. It returns the resulting state snapshot.
func (s *Store) Dispatch(ctx context.Context, a Action) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := Apply(s.state, a)
	s.state = next

	if a.Type == ActionLogout {
		s.eraseAll(ctx)
		return s.snapshotLocked()
	}
	for _, record := range changed {
		s.persistRecord(ctx, record)
	}
	return s.snapshotLocked()
}

func (s *Store) persistRecord(ctx context.Context, record Record) {
	var payload any
	switch record {
	case RecordCart:
		payload = s.state.Cart
	case RecordWishlist:
		payload = s.state.Wishlist
	case RecordOrders:
		payload = s.state.Orders
	case RecordUser:
		payload = s.state.User
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("state: marshal %s for %s: %v", record, s.userID, err)
		return
	}
	if err := s.kv.Set(ctx, recordKey(record, s.userID), data); err != nil {
		log.Printf("state: persist %s for %s: %v", record, s.userID, err)
	}
}

func (s *Store) eraseAll(ctx context.Context) {
	for _, record := range AllRecords {
		if err := s.kv.Delete(ctx, recordKey(record, s.userID)); err != nil {
			log.Printf("state: erase %s for %s: %v", record, s.userID, err)
		}
	}
}

// State returns a snapshot safe for the caller to read; slices are copied
// so later dispatches cannot race with the reader.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() AppState {
	snap := s.state
	snap.Cart = append([]models.CartItem(nil), s.state.Cart...)
	snap.Wishlist = append([]models.Product(nil), s.state.Wishlist...)
	snap.Orders = append([]models.Order(nil), s.state.Orders...)
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}
	return snap
}

func (s *Store) UserID() string {
	return s.userID
}
