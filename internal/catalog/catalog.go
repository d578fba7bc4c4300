package catalog

import (
	"cleanair-backend/internal/money"
)

// Text is a bilingual label. The API returns both languages and the client
// picks one, same as the wizard frontend expects.
type Text struct {
	EN string `json:"en"`
	FR string `json:"fr"`
}

type DryerLocation struct {
	ID    string      `json:"id"`
	Label Text        `json:"label"`
	Price money.Cents `json:"price"`
}

type Package struct {
	ID             string          `json:"id"`
	Name           Text            `json:"name"`
	Price          money.Cents     `json:"price"`
	PriceLabel     *Text           `json:"priceLabel,omitempty"`
	PriceNote      *Text           `json:"priceNote,omitempty"`
	Description    Text            `json:"description"`
	Includes       []Text          `json:"includes"`
	HasVentCount   bool            `json:"hasVentCount,omitempty"`
	UnitLabel      *Text           `json:"unitLabel,omitempty"`
	DryerLocations []DryerLocation `json:"dryerLocations,omitempty"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        Text      `json:"name"`
	Description Text      `json:"description"`
	Icon        string    `json:"icon"`
	MostPopular bool      `json:"mostPopular,omitempty"`
	Packages    []Package `json:"packages"`
}

// Extra is an optional add-on. An extra either carries DryerLocations and is
// priced per sub-location, or it is priced BundlePrice x quantity. The two
// branches never apply to the same id.
type Extra struct {
	ID                string          `json:"id"`
	Name              Text            `json:"name"`
	Description       Text            `json:"description"`
	OriginalPrice     money.Cents     `json:"originalPrice"`
	BundlePrice       money.Cents     `json:"bundlePrice"`
	BundlePricePrefix *Text           `json:"bundlePricePrefix,omitempty"`
	HasQuantity       bool            `json:"hasQuantity"`
	DryerLocations    []DryerLocation `json:"dryerLocations,omitempty"`
}

type SelectOption struct {
	Value string      `json:"value"`
	Label Text        `json:"label"`
	Fee   money.Cents `json:"fee,omitempty"`
}

type TaxLine struct {
	Label string     `json:"label"`
	Rate  money.Rate `json:"rate"`
}

func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func PackageByID(categoryID, packageID string) (Package, bool) {
	c, ok := CategoryByID(categoryID)
	if !ok {
		return Package{}, false
	}
	for _, p := range c.Packages {
		if p.ID == packageID {
			return p, true
		}
	}
	return Package{}, false
}

func ExtraByID(id string) (Extra, bool) {
	for _, e := range Extras {
		if e.ID == id {
			return e, true
		}
	}
	return Extra{}, false
}

// TaxLinesFor resolves the tax table row for a province. Unknown provinces
// fall back to the default province, which is always present.
func TaxLinesFor(province string) []TaxLine {
	if lines, ok := ProvinceTaxes[province]; ok {
		return lines
	}
	return ProvinceTaxes[DefaultProvince]
}

func IsProvince(name string) bool {
	for _, p := range Provinces {
		if p.Value == name {
			return true
		}
	}
	return false
}

// UnitLocationFee returns the access fee for a furnace/unit location choice.
// Unknown values carry no fee, matching the frontend's fallback.
func UnitLocationFee(value string) money.Cents {
	for _, opt := range UnitLocations {
		if opt.Value == value {
			return opt.Fee
		}
	}
	return 0
}

// CouponDiscount resolves a coupon code to a subtotal discount. Codes are
// uppercased before lookup; unknown or empty codes are worth nothing.
func CouponDiscount(code string) money.Cents {
	if code == "" {
		return 0
	}
	return Coupons[normalizeCoupon(code)]
}

func normalizeCoupon(code string) string {
	out := make([]byte, 0, len(code))
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c == ' ' {
			continue
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
