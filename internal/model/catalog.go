package model

import "encoding/json"

// ZoneDocumentID is the key of the single zone document served publicly.
const ZoneDocumentID = "laos"

// EmptyZones is served when no zone document is stored.
var EmptyZones = json.RawMessage(`{"zones":[]}`)

// Category is a shop category shown on the browse screen.
type Category struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// CategoriesResponse wraps the category listing.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// ShopsResponse wraps the shop listing.
type ShopsResponse struct {
	Shops []Shop `json:"shops"`
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries a freshly issued admin token.
type LoginResponse struct {
	Token string `json:"token"`
}
