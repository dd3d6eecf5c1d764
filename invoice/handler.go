package invoice

import (
	"log"
	"net/http"

	"electrofusion/middleware"
	"electrofusion/state"
	"electrofusion/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	manager *state.Manager
}

func NewHandlers(manager *state.Manager) *Handlers {
	return &Handlers{manager: manager}
}

// Download streams the invoice PDF for one of the user's orders.
func (h *Handlers) Download(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orderID := ps.ByName("orderid")
	snap := h.manager.ForUser(r.Context(), userID).State()

	for _, order := range snap.Orders {
		if order.ID != orderID {
			continue
		}
		data, err := Render(order)
		if err != nil {
			log.Println("Invoice render error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate invoice")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename="+Filename(order))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	utils.RespondWithError(w, http.StatusNotFound, "Order not found")
}
