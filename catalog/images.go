package catalog

import (
	"context"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"electrofusion/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

// GetProductImage serves the product's image, resized to ?w= pixels wide
// when requested. Width is clamped to 1600 to bound the resize work.
func (h *Handlers) GetProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	product, err := h.provider.Product(ctx, ps.ByName("id"))
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetProductImage lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve product")
		return
	}

	path := filepath.Join(h.assetsDir, filepath.Base(product.Image))

	width := 0
	if q := r.URL.Query().Get("w"); q != "" {
		width, err = strconv.Atoi(q)
		if err != nil || width < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid width")
			return
		}
		if width > 1600 {
			width = 1600
		}
	}

	if width == 0 {
		http.ServeFile(w, r, path)
		return
	}

	img, err := imaging.Open(path)
	if err != nil {
		log.Println("GetProductImage open error:", err)
		utils.RespondWithError(w, http.StatusNotFound, "Image not available")
		return
	}

	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)
	w.Header().Set("Content-Type", "image/jpeg")
	if err := imaging.Encode(w, thumb, imaging.JPEG); err != nil {
		log.Println("GetProductImage encode error:", err)
	}
}
