package repository

import (
	"fmt"
	"strings"

	"orbi-food/internal/model"
)

// column maps a storage column to the API field it is exposed as.
type column struct {
	Name  string
	Field string
}

// columnSet is an ordered mapping table. The order is shared by the SELECT
// projection, the scan targets and the write arguments of an entity.
type columnSet []column

// selectList renders "a, b, c".
func (cs columnSet) selectList() string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// placeholders renders "$1, $2, ..." for every column.
func (cs columnSet) placeholders() string {
	ph := make([]string, len(cs))
	for i := range cs {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ph, ", ")
}

// assignments renders "a = $n, b = $n+1, ..." starting at placeholder n.
func (cs columnSet) assignments(n int) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("%s = $%d", c.Name, n+i)
	}
	return strings.Join(parts, ", ")
}

var categoryColumns = columnSet{
	{"id", "id"},
	{"name", "name"},
	{"icon", "icon"},
}

func categoryTargets(c *model.Category) []any {
	return []any{&c.ID, &c.Name, &c.Icon}
}

// shopColumns lists id first; updates bind id as $1 and the rest in order.
var shopColumns = columnSet{
	{"id", "id"},
	{"name", "name"},
	{"currency", "currency"},
	{"category_id", "categoryId"},
	{"province_id", "provinceId"},
	{"district_id", "districtId"},
	{"village_id", "villageId"},
	{"has_delivery", "hasDelivery"},
	{"pickup", "pickup"},
	{"delivery_fee", "deliveryFee"},
	{"min_order", "minOrder"},
	{"eta_min", "etaMin"},
	{"hours", "hours"},
	{"rating", "rating"},
	{"orders", "orders"},
	{"created_at", "createdAt"},
	{"cover", "cover"},
	{"messenger_url", "messengerUrl"},
	{"tags", "tags"},
	{"featured", "featured"},
	{"active", "active"},
	{"map_url", "mapUrl"},
	{"lat", "lat"},
	{"lng", "lng"},
	{"menu_image", "menuImage"},
}

func shopTargets(s *model.Shop) []any {
	return []any{
		&s.ID, &s.Name, &s.Currency,
		&s.CategoryID, &s.ProvinceID, &s.DistrictID, &s.VillageID,
		&s.HasDelivery, &s.Pickup,
		&s.DeliveryFee, &s.MinOrder, &s.EtaMin,
		&s.Hours, &s.Rating, &s.Orders,
		&s.CreatedAt, &s.Cover, &s.MessengerURL,
		&s.Tags, &s.Featured, &s.Active,
		&s.MapURL, &s.Lat, &s.Lng, &s.MenuImage,
	}
}

func shopArgs(in model.ShopInput) []any {
	return []any{
		in.ID, in.Name, in.Currency,
		in.CategoryID, in.ProvinceID, in.DistrictID, in.VillageID,
		in.HasDelivery, in.Pickup,
		in.DeliveryFee, in.MinOrder, in.EtaMin,
		in.Hours, in.Rating, in.Orders,
		in.CreatedAt, in.Cover, in.MessengerURL,
		in.Tags, in.Featured, in.Active,
		in.MapURL, in.Lat, in.Lng, in.MenuImage,
	}
}

// menuItemColumns lists the key pair (id, shop_id) first; updates bind them as $1, $2.
var menuItemColumns = columnSet{
	{"id", "id"},
	{"shop_id", "shopId"},
	{"name", "name"},
	{"price", "price"},
	{"currency", "currency"},
	{"image", "image"},
	{"available", "available"},
	{"sort", "sort"},
}

func menuItemTargets(m *model.MenuItem) []any {
	return []any{&m.ID, &m.ShopID, &m.Name, &m.Price, &m.Currency, &m.Image, &m.Available, &m.Sort}
}

func menuItemArgs(in model.MenuItemInput) []any {
	return []any{in.ID, in.ShopID, in.Name, in.Price, in.Currency, in.Image, in.Available, in.Sort}
}
