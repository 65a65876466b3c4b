package models

// Category is static reference data; the catalog seeds it once.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

type ConditionType string

const (
	ConditionNew     ConditionType = "New"
	ConditionLikeNew ConditionType = "Like New"
	ConditionGood    ConditionType = "Good"
	ConditionFair    ConditionType = "Fair"
)

// ParseConditionType maps free text onto a known condition label.
func ParseConditionType(s string) (ConditionType, bool) {
	switch ConditionType(s) {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair:
		return ConditionType(s), true
	}
	return "", false
}

type ShippingOption string

const (
	ShippingOptionShip     ShippingOption = "Shipping"
	ShippingOptionPickup   ShippingOption = "Local pickup"
	ShippingOptionDelivery ShippingOption = "Delivery radius"
)

type Seller struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Badges       []string `json:"badges"`
	ResponseMins int      `json:"responseMins"`
	SoldCount    int      `json:"soldCount"`
}

type Variant struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Product is immutable catalog data; it is never mutated after seeding.
type Product struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Price        float64          `json:"price" validate:"gte=0"`
	Category     string           `json:"category"`
	Condition    ConditionType    `json:"condition"`
	Rating       float64          `json:"rating" validate:"gte=0,lte=5"`
	Reviews      int              `json:"reviews" validate:"gte=0"`
	Location     string           `json:"location"`
	Shipping     []ShippingOption `json:"shipping"`
	AcceptOffers bool             `json:"acceptOffers"`
	Seller       Seller           `json:"seller"`
	Images       []string         `json:"images"`
	Description  string           `json:"description"`
	Variants     []Variant        `json:"variants"`
	Trending     bool             `json:"trending,omitempty"`
	Featured     bool             `json:"featured,omitempty"`
}
