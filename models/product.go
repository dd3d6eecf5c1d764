package models

// Specs holds the optional hardware details shown on a product card.
type Specs struct {
	RAM       string `json:"ram,omitempty" bson:"ram,omitempty"`
	Storage   string `json:"storage,omitempty" bson:"storage,omitempty"`
	Display   string `json:"display,omitempty" bson:"display,omitempty"`
	Processor string `json:"processor,omitempty" bson:"processor,omitempty"`
}

// PriceComparison lists competitor prices for the same product. The values
// are static fixtures, not live quotes.
type PriceComparison struct {
	Amazon   int `json:"amazon" bson:"amazon"`
	Flipkart int `json:"flipkart" bson:"flipkart"`
	Myntra   int `json:"myntra" bson:"myntra"`
	Meesho   int `json:"meesho" bson:"meesho"`
}

// Product is immutable reference data; prices are integer rupee amounts.
type Product struct {
	ID              string          `json:"id" bson:"productid"`
	Name            string          `json:"name" bson:"name"`
	Brand           string          `json:"brand" bson:"brand"`
	Price           int             `json:"price" bson:"price"`
	Image           string          `json:"image" bson:"image"`
	Specs           Specs           `json:"specs" bson:"specs"`
	PriceComparison PriceComparison `json:"priceComparison" bson:"priceComparison"`
	Category        string          `json:"category" bson:"category"`
}

// CartItem is a product plus the quantity the user intends to buy.
type CartItem struct {
	Product  `bson:",inline"`
	Quantity int `json:"quantity" bson:"quantity"`
}
