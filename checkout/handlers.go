package checkout

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"electrofusion/middleware"
	"electrofusion/models"
	"electrofusion/state"
	"electrofusion/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	service *Service
	manager *state.Manager
}

func NewHandlers(service *Service, manager *state.Manager) *Handlers {
	return &Handlers{service: service, manager: manager}
}

// ValidateAddress checks the address step without committing anything, so
// the client can advance to payment selection.
func (h *Handlers) ValidateAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var addr models.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	var vErr *ValidationError
	if err := ValidateAddress(addr); errors.As(err, &vErr) {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
			"error": vErr.Msg,
			"field": vErr.Field,
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "valid"})
}

// PlaceOrder runs the full payment step.
func (h *Handlers) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Address       models.Address `json:"address"`
		PaymentMethod string         `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("PlaceOrder decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order payload")
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), userID, input.Address, input.PaymentMethod)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
				"error": vErr.Msg,
				"field": vErr.Field,
			})
		case errors.Is(err, ErrEmptyCart):
			utils.RespondWithJSON(w, http.StatusConflict, utils.M{"error": "Cart is empty", "redirect": "/cart"})
		case errors.Is(err, ErrInFlight):
			utils.RespondWithError(w, http.StatusConflict, "Payment already in progress")
		case errors.Is(err, ErrSessionEnd):
			utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"error": "Not signed in", "redirect": "/profile"})
		default:
			log.Println("PlaceOrder error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders returns the order history, newest first.
func (h *Handlers) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snap := h.manager.ForUser(r.Context(), userID).State()
	utils.RespondWithJSON(w, http.StatusOK, snap.Orders)
}

// GetOrder returns one order from the history.
func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snap := h.manager.ForUser(r.Context(), userID).State()
	for _, order := range snap.Orders {
		if order.ID == ps.ByName("orderid") {
			utils.RespondWithJSON(w, http.StatusOK, order)
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound, "Order not found")
}
