package domain

import (
	"errors"
	"time"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseProcessing is the default status assigned to new purchases.
const PurchaseProcessing = "processing"

// Purchase is a buyer's order for a harvest lot.
type Purchase struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	BuyerID    string    `json:"buyer_id" bson:"buyer_id"`
	SellerID   string    `json:"seller_id" bson:"seller_id"`
	HarvestID  string    `json:"harvest_id" bson:"harvest_id"`
	CropID     string    `json:"crop_id" bson:"crop_id"`
	Date       time.Time `json:"date" bson:"date"`
	Quantity   float64   `json:"quantity" bson:"quantity"`
	TotalPrice float64   `json:"total_price" bson:"total_price"`
	Status     string    `json:"status" bson:"status"`
}
