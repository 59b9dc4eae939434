package models

// DeliveryRange is one fee bracket a vendor delivers within, e.g.
// {Range: "5-25 miles", Fee: 15}.
type DeliveryRange struct {
	Range string  `bson:"range" json:"range"` // "<min>-<max> miles"
	Fee   float64 `bson:"fee" json:"fee"`
}

// DeliveryFeeSelection maps a service id to its chosen fee bracket, whether
// auto-selected from a computed distance or picked manually by an admin.
type DeliveryFeeSelection map[string]DeliveryRange
