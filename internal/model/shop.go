package model

import "encoding/json"

// DefaultCurrency is applied to new shops that do not name one.
const DefaultCurrency = "THB"

// Shop is a delivery or pickup shop as returned by the public listing.
type Shop struct {
	ID           string          `json:"id"`
	Name         *string         `json:"name"`
	Currency     *string         `json:"currency"`
	CategoryID   *string         `json:"categoryId"`
	ProvinceID   *string         `json:"provinceId"`
	DistrictID   *string         `json:"districtId"`
	VillageID    *string         `json:"villageId"`
	HasDelivery  *bool           `json:"hasDelivery"`
	Pickup       *bool           `json:"pickup"`
	DeliveryFee  *float64        `json:"deliveryFee"`
	MinOrder     *float64        `json:"minOrder"`
	EtaMin       *float64        `json:"etaMin"`
	Hours        *string         `json:"hours"`
	Rating       *float64        `json:"rating"`
	Orders       *int64          `json:"orders"`
	CreatedAt    *string         `json:"createdAt"`
	Cover        *string         `json:"cover"`
	MessengerURL *string         `json:"messengerUrl"`
	Tags         json.RawMessage `json:"tags"`
	Featured     *bool           `json:"featured"`
	Active       *bool           `json:"active"`
	MapURL       *string         `json:"mapUrl"`
	Lat          *float64        `json:"lat"`
	Lng          *float64        `json:"lng"`
	MenuImage    *string         `json:"menuImage"`
}

// ShopInput is a fully coerced shop row ready to be written.
type ShopInput struct {
	ID           string
	Name         *string
	Currency     *string
	CategoryID   *string
	ProvinceID   *string
	DistrictID   *string
	VillageID    *string
	HasDelivery  bool
	Pickup       bool
	DeliveryFee  float64
	MinOrder     float64
	EtaMin       float64
	Hours        *string
	Rating       float64
	Orders       int64
	CreatedAt    *string
	Cover        *string
	MessengerURL *string
	Tags         json.RawMessage
	Featured     bool
	Active       bool
	MapURL       *string
	Lat          *float64
	Lng          *float64
	MenuImage    *string
}

// RecordKey holds the fields every created shop or menu item must carry.
type RecordKey struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
}

// Key returns the identifying fields of the input.
func (in ShopInput) Key() RecordKey {
	return RecordKey{ID: in.ID, Name: deref(in.Name)}
}

// NewShopInput coerces a create-shop body. Empty optional text becomes null,
// currency defaults to THB, and pickup/active default to true unless the body
// carries a JSON boolean for them.
func NewShopInput(b Body) ShopInput {
	in := commonShopInput(b)
	in.ID = deref(textOrNull(b["id"]))
	in.Name = textOrNull(b["name"])
	in.Currency = textOrNull(b["currency"])
	if in.Currency == nil {
		c := DefaultCurrency
		in.Currency = &c
	}
	in.CategoryID = textOrNull(b["categoryId"])
	in.ProvinceID = textOrNull(b["provinceId"])
	in.DistrictID = textOrNull(b["districtId"])
	in.VillageID = textOrNull(b["villageId"])
	in.Hours = textOrNull(b["hours"])
	in.Pickup = boolOr(b["pickup"], true)
	in.Active = boolOr(b["active"], true)
	return in
}

// UpdateShopInput coerces a replace-shop body for the shop id taken from the
// path. Unlike NewShopInput, booleans are plain truthiness (absent means
// false) and identity/location text fields are stored exactly as given.
func UpdateShopInput(id string, b Body) ShopInput {
	in := commonShopInput(b)
	in.ID = id
	in.Name = textAsGiven(b["name"])
	in.Currency = textAsGiven(b["currency"])
	in.CategoryID = textAsGiven(b["categoryId"])
	in.ProvinceID = textAsGiven(b["provinceId"])
	in.DistrictID = textAsGiven(b["districtId"])
	in.VillageID = textAsGiven(b["villageId"])
	in.Hours = textAsGiven(b["hours"])
	in.Pickup = truthy(b["pickup"])
	in.Active = truthy(b["active"])
	return in
}

// commonShopInput applies the coercions shared by create and update.
func commonShopInput(b Body) ShopInput {
	return ShopInput{
		HasDelivery:  truthy(b["hasDelivery"]),
		DeliveryFee:  numberOrZero(b["deliveryFee"]),
		MinOrder:     numberOrZero(b["minOrder"]),
		EtaMin:       numberOrZero(b["etaMin"]),
		Rating:       numberOrZero(b["rating"]),
		Orders:       integerOrZero(b["orders"]),
		CreatedAt:    textOrNull(b["createdAt"]),
		Cover:        textOrNull(b["cover"]),
		MessengerURL: textOrNull(b["messengerUrl"]),
		Tags:         jsonOrEmptyList(b["tags"]),
		Featured:     truthy(b["featured"]),
		MapURL:       textOrNull(b["mapUrl"]),
		Lat:          numberOrNull(b["lat"]),
		Lng:          numberOrNull(b["lng"]),
		MenuImage:    textOrNull(b["menuImage"]),
	}
}
