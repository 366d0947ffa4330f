package model

// MenuItem is one priced entry on a shop's menu.
type MenuItem struct {
	ID        string   `json:"id"`
	ShopID    string   `json:"shopId"`
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	Currency  *string  `json:"currency"`
	Image     *string  `json:"image"`
	Available *bool    `json:"available"`
	Sort      *int64   `json:"sort"`
}

// MenuItemInput is a fully coerced menu item row ready to be written.
type MenuItemInput struct {
	ID        string
	ShopID    string
	Name      *string
	Price     float64
	Currency  *string
	Image     *string
	Available bool
	Sort      int64
}

// Key returns the identifying fields of the input.
func (in MenuItemInput) Key() RecordKey {
	return RecordKey{ID: in.ID, Name: deref(in.Name)}
}

// NewMenuItemInput coerces a create-menu-item body for the given shop.
func NewMenuItemInput(shopID string, b Body) MenuItemInput {
	in := commonMenuItemInput(shopID, b)
	in.ID = deref(textOrNull(b["id"]))
	in.Name = textOrNull(b["name"])
	return in
}

// UpdateMenuItemInput coerces a replace-menu-item body for the (menuID, shopID) pair.
func UpdateMenuItemInput(shopID, menuID string, b Body) MenuItemInput {
	in := commonMenuItemInput(shopID, b)
	in.ID = menuID
	in.Name = textAsGiven(b["name"])
	return in
}

func commonMenuItemInput(shopID string, b Body) MenuItemInput {
	return MenuItemInput{
		ShopID:    shopID,
		Price:     numberOrZero(b["price"]),
		Currency:  textOrNull(b["currency"]),
		Image:     textOrNull(b["image"]),
		Available: notFalse(b["available"]),
		Sort:      integerOrZero(b["sort"]),
	}
}
