// Package pricing computes the quote shown in the wizard sidebar and on the
// review step: package subtotal, extras, access fees, coverage, coupon
// discount, then province tax lines and the grand total. Pure functions; the
// quote is recomputed on every input change, never cached.
package pricing

import (
	"errors"
	"fmt"
	"sort"

	"cleanair-backend/internal/catalog"
	"cleanair-backend/internal/money"
)

var ErrUnknownPackage = errors.New("unknown package")

// Selection is everything the customer has picked across the wizard steps
// that affects price.
type Selection struct {
	CategoryID string `json:"categoryId"`
	PackageID  string `json:"packageId"`

	// Units is the package quantity (furnaces, wall units). Zero means one.
	Units int `json:"units"`

	// VentMode is "arrival" (counted on site) or "known"; only "known"
	// charges per vent up front.
	VentMode  string `json:"ventMode"`
	VentCount int    `json:"ventCount"`

	// PackageDryerLocations prices a dryer-vent package by access point.
	PackageDryerLocations map[string]int `json:"packageDryerLocations"`

	// Extras maps extra id to quantity. The dryer-vent extra ignores its
	// quantity and is priced from DryerVentLocations instead.
	Extras             map[string]int `json:"extras"`
	DryerVentLocations map[string]int `json:"dryerVentLocations"`

	UnitLocation string      `json:"unitLocation"`
	Province     string      `json:"province"`
	Discount     money.Cents `json:"discount"`
}

type Line struct {
	Label  string      `json:"label"`
	Amount money.Cents `json:"amount"`
}

type Quote struct {
	Valid     bool        `json:"valid"`
	BasePrice money.Cents `json:"basePrice"`
	Items     []Line      `json:"items"`
	Subtotal  money.Cents `json:"subtotal"`
	TaxLines  []Line      `json:"taxLines"`
	Total     money.Cents `json:"total"`
}

// Compute aggregates the selection into a quote. Tax rates each apply to the
// same subtotal independently (no compounding), and the total is exactly the
// subtotal plus the rounded tax line amounts.
func Compute(sel Selection) (Quote, error) {
	pkg, ok := catalog.PackageByID(sel.CategoryID, sel.PackageID)
	if !ok {
		return Quote{}, ErrUnknownPackage
	}

	q := Quote{Valid: true, BasePrice: pkg.Price}

	var subtotal money.Cents

	if len(pkg.DryerLocations) > 0 {
		// Dryer-vent packages are priced purely by access point; the
		// selection is only valid once at least one is picked.
		picked := false
		for _, loc := range pkg.DryerLocations {
			qty := sel.PackageDryerLocations[loc.ID]
			if qty <= 0 {
				continue
			}
			picked = true
			amount := loc.Price * money.Cents(qty)
			q.Items = append(q.Items, Line{Label: fmt.Sprintf("%s × %d", loc.Label.EN, qty), Amount: amount})
			subtotal += amount
		}
		q.Valid = picked
	} else {
		units := sel.Units
		if units <= 0 {
			units = 1
		}
		amount := pkg.Price * money.Cents(units)
		q.Items = append(q.Items, Line{Label: fmt.Sprintf("%s × %d", pkg.Name.EN, units), Amount: amount})
		subtotal += amount

		if pkg.HasVentCount && sel.VentMode == "known" && sel.VentCount > 0 {
			amount := catalog.VentUnitPrice * money.Cents(sel.VentCount)
			q.Items = append(q.Items, Line{Label: fmt.Sprintf("Vents × %d", sel.VentCount), Amount: amount})
			subtotal += amount
		}
	}

	subtotal += extrasTotal(sel, &q)

	if fee := catalog.UnitLocationFee(sel.UnitLocation); fee > 0 {
		q.Items = append(q.Items, Line{Label: "Unit Location Fee", Amount: fee})
		subtotal += fee
	}

	q.Items = append(q.Items, Line{Label: "Extended Coverage", Amount: catalog.ExtendedCoverage})
	subtotal += catalog.ExtendedCoverage

	if sel.Discount > 0 {
		q.Items = append(q.Items, Line{Label: "Coupon Discount", Amount: -sel.Discount})
		subtotal -= sel.Discount
	}
	if subtotal < 0 {
		subtotal = 0
	}
	q.Subtotal = subtotal

	total := subtotal
	for _, tl := range catalog.TaxLinesFor(sel.Province) {
		amount := tl.Rate.Apply(subtotal)
		q.TaxLines = append(q.TaxLines, Line{Label: tl.Label, Amount: amount})
		total += amount
	}
	q.Total = total

	return q, nil
}

func extrasTotal(sel Selection, q *Quote) money.Cents {
	ids := make([]string, 0, len(sel.Extras))
	for id := range sel.Extras {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sum money.Cents
	for _, id := range ids {
		qty := sel.Extras[id]
		if qty <= 0 {
			continue
		}
		extra, ok := catalog.ExtraByID(id)
		if !ok {
			continue
		}

		if len(extra.DryerLocations) > 0 {
			for _, loc := range extra.DryerLocations {
				lq := sel.DryerVentLocations[loc.ID]
				if lq <= 0 {
					continue
				}
				amount := loc.Price * money.Cents(lq)
				q.Items = append(q.Items, Line{Label: fmt.Sprintf("%s — %s × %d", extra.Name.EN, loc.Label.EN, lq), Amount: amount})
				sum += amount
			}
			continue
		}

		amount := extra.BundlePrice * money.Cents(qty)
		q.Items = append(q.Items, Line{Label: fmt.Sprintf("%s × %d", extra.Name.EN, qty), Amount: amount})
		sum += amount
	}
	return sum
}
