package invoice

import (
	"bytes"
	"testing"
	"time"

	"electrofusion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() models.Order {
	return models.Order{
		ID: "EF1700000000000ABCD",
		Items: []models.CartItem{
			{Product: models.Product{ID: "1", Name: "iPhone 15 Pro Max", Brand: "Apple", Price: 134900}, Quantity: 1},
			{Product: models.Product{ID: "5", Name: "Sony WH-1000XM5", Brand: "Sony", Price: 29990}, Quantity: 2},
		},
		Total: 194880,
		Address: models.Address{
			Name:    "Asha Rao",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			Street:  "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
		PaymentMethod: models.PaymentUPI,
		Date:          time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:        models.OrderStatusConfirmed,
	}
}

func TestFilenameEmbedsOrderID(t *testing.T) {
	assert.Equal(t, "ElectroFusion_Invoice_EF1700000000000ABCD.pdf", Filename(sampleOrder()))

	other := sampleOrder()
	other.ID = "EF1700000000001WXYZ"
	assert.NotEqual(t, Filename(sampleOrder()), Filename(other), "different orders must not collide")
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := Render(sampleOrder())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(data), 1000)
}

func TestRenderWithLandmark(t *testing.T) {
	withLandmark := sampleOrder()
	withLandmark.Address.Landmark = "Opposite Central Mall"

	data, err := Render(withLandmark)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderPaginatesLargeOrders(t *testing.T) {
	small, err := Render(sampleOrder())
	require.NoError(t, err)

	big := sampleOrder()
	for i := 0; i < 40; i++ {
		big.Items = append(big.Items, models.CartItem{
			Product:  models.Product{ID: "x", Name: "Filler Gadget", Brand: "BrandCo", Price: 999},
			Quantity: 1,
		})
	}
	bigData, err := Render(big)
	require.NoError(t, err)

	assert.Greater(t, len(bigData), len(small), "forty extra rows must spill onto further pages")
}
