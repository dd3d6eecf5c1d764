// Package checkout drives the three-step order flow: address validation,
// payment method selection, and the mocked payment that finalizes an order.
package checkout

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"electrofusion/invoice"
	"electrofusion/models"
	"electrofusion/notify"
	"electrofusion/state"
	"electrofusion/utils"

	"github.com/google/uuid"
)

// Flow-level failures surfaced to the HTTP layer.
var (
	ErrEmptyCart  = errors.New("checkout: cart is empty")
	ErrInFlight   = errors.New("checkout: payment already in progress")
	ErrSessionEnd = errors.New("checkout: session ended during payment")
)

// Service owns the checkout flow for all sessions. One payment may be in
// flight per user; a second submit during the mocked processing delay is
// rejected rather than queued.
type Service struct {
	manager    *state.Manager
	hub        *notify.Hub
	delay      time.Duration
	invoiceDir string

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewService(manager *state.Manager, hub *notify.Hub, delay time.Duration, invoiceDir string) *Service {
	return &Service{
		manager:    manager,
		hub:        hub,
		delay:      delay,
		invoiceDir: invoiceDir,
		inFlight:   make(map[string]bool),
	}
}

func (s *Service) begin(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[userID] {
		return false
	}
	s.inFlight[userID] = true
	return true
}

func (s *Service) end(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}

// PlaceOrder validates the submission, runs the mocked payment delay, then
// commits the order: append to history, clear the cart, and fire the
// invoice and toast side effects. A session that logs out while the
// payment is processing gets no order.
func (s *Service) PlaceOrder(ctx context.Context, userID string, addr models.Address, paymentMethod string) (models.Order, error) {
	if err := ValidateAddress(addr); err != nil {
		return models.Order{}, err
	}
	if err := ValidatePaymentMethod(paymentMethod); err != nil {
		return models.Order{}, err
	}

	store := s.manager.ForUser(ctx, userID)
	snap := store.State()
	if len(snap.Cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if !snap.IsAuthenticated {
		return models.Order{}, ErrSessionEnd
	}

	if !s.begin(userID) {
		return models.Order{}, ErrInFlight
	}
	defer s.end(userID)

	attemptID := uuid.NewString()
	log.Printf("PlaceOrder: processing payment attempt %s for %s (%s)", attemptID, userID, paymentMethod)

	// Mocked payment processing.
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return models.Order{}, ctx.Err()
		}
	}

	// The session may have ended while the payment was processing; a late
	// completion is discarded instead of resurrecting state.
	snap = store.State()
	if !snap.IsAuthenticated {
		log.Printf("PlaceOrder: attempt %s discarded, session ended", attemptID)
		return models.Order{}, ErrSessionEnd
	}
	if len(snap.Cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		ID:            utils.NewOrderID(),
		Items:         snap.Cart,
		Total:         snap.CartTotal(),
		Address:       addr,
		PaymentMethod: paymentMethod,
		Date:          time.Now(),
		Status:        models.OrderStatusConfirmed,
	}

	store.Dispatch(ctx, state.AddOrder(order))
	store.Dispatch(ctx, state.ClearCart())

	// Independent side effects; neither is retried on failure.
	go s.writeInvoice(order)
	s.hub.Push(userID, notify.Toast{
		Title:       "Order placed successfully!",
		Description: "Your invoice has been downloaded automatically",
	})

	return order, nil
}

// writeInvoice drops a copy of the invoice PDF into the invoice directory.
func (s *Service) writeInvoice(order models.Order) {
	if s.invoiceDir == "" {
		return
	}
	data, err := invoice.Render(order)
	if err != nil {
		log.Println("writeInvoice render error:", err)
		return
	}
	if err := os.MkdirAll(s.invoiceDir, 0755); err != nil {
		log.Println("writeInvoice mkdir error:", err)
		return
	}
	path := filepath.Join(s.invoiceDir, invoice.Filename(order))
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Println("writeInvoice save error:", err)
	}
}
