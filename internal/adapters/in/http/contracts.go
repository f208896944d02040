package http

import "time"

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PickupStop is one row of the driver's grouped pickup list.
type PickupStop struct {
	OwnerID          string `json:"ownerId"`
	ParcelCount      int64  `json:"parcelCount"`
	Address          string `json:"address"`
	DetailAddress    string `json:"detailAddress"`
	PickupTimeWindow string `json:"pickupTimeWindow"`
	ProductName      string `json:"productName"`
	Status           string `json:"status"`
	IsNextTarget     bool   `json:"isNextTarget"`
}

// DeliveryStop is one row of the driver's delivery list.
type DeliveryStop struct {
	ParcelID           string     `json:"parcelId"`
	TrackingCode       string     `json:"trackingCode"`
	RecipientAddress   string     `json:"recipientAddress"`
	DetailAddress      string     `json:"detailAddress"`
	DeliveryTimeWindow string     `json:"deliveryTimeWindow"`
	ProductName        string     `json:"productName"`
	Status             string     `json:"status"`
	IsNextTarget       bool       `json:"isNextTarget"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

// CompletePickupRequest identifies the pickup group to complete.
type CompletePickupRequest struct {
	OwnerID string `json:"ownerId"`
}

// PickupCompletionSummary reports a completed pickup group. Payload fields
// carry a representative parcel, mirroring the grouped list rows.
type PickupCompletionSummary struct {
	OwnerID          string `json:"ownerId"`
	ParcelCount      int64  `json:"parcelCount"`
	CompletedCount   int64  `json:"completedCount"`
	Address          string `json:"address"`
	DetailAddress    string `json:"detailAddress"`
	PickupTimeWindow string `json:"pickupTimeWindow"`
	ProductName      string `json:"productName"`
	Status           string `json:"status"`
}

// CompleteDeliveryRequest identifies the parcel to complete.
type CompleteDeliveryRequest struct {
	TrackingCode string `json:"trackingCode"`
}

// DeliveryCompletionView reports a completed delivery with the parcel's
// payload, mirroring the delivery list rows.
type DeliveryCompletionView struct {
	ParcelID           string    `json:"parcelId"`
	TrackingCode       string    `json:"trackingCode"`
	RecipientAddress   string    `json:"recipientAddress"`
	DetailAddress      string    `json:"detailAddress"`
	DeliveryTimeWindow string    `json:"deliveryTimeWindow"`
	ProductName        string    `json:"productName"`
	Status             string    `json:"status"`
	CompletedAt        time.Time `json:"completedAt"`
}

// CompletionStatus proxies the oracle's plan-wide pickup completion check.
type CompletionStatus struct {
	Completed bool `json:"completed"`
}
