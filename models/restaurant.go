package models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// Restaurant is owned by the JSON document and only changes through admin writes.
type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	CuisineType  string   `json:"cuisineType"`
	Rating       float64  `json:"rating"`
	DeliveryTime string   `json:"deliveryTime"`
	DeliveryFee  float64  `json:"deliveryFee"`
	Location     Location `json:"location"`
	DeliveryApps []string `json:"deliveryApps"`
}

// RestaurantWithOrders is the detail view returned by GET /restaurants/:id
type RestaurantWithOrders struct {
	Restaurant
	Orders []Order `json:"orders"`
}
