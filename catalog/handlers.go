package catalog

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"electrofusion/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers exposes the catalog over HTTP.
type Handlers struct {
	provider  Provider
	assetsDir string
}

func NewHandlers(provider Provider, assetsDir string) *Handlers {
	return &Handlers{provider: provider, assetsDir: assetsDir}
}

// GetProducts returns all products, optional ?category= filter.
func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, err := h.provider.Products(ctx)
	if err != nil {
		log.Println("GetProducts error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve products")
		return
	}

	if cat := r.URL.Query().Get("category"); cat != "" && cat != "all" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == cat {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	product, err := h.provider.Product(ctx, ps.ByName("id"))
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetProduct error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categories, err := h.provider.Categories(ctx)
	if err != nil {
		log.Println("GetCategories error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve categories")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, categories)
}
