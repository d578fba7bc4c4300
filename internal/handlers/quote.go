package handlers

import (
	"log/slog"
	"net/http"

	"cleanair-backend/internal/catalog"
	"cleanair-backend/internal/httpx"
	"cleanair-backend/internal/pricing"
	"cleanair-backend/internal/transport"
)

// SelectionRequest is the wire form of a pricing selection. The coupon
// travels as a code and is resolved server-side.
type SelectionRequest struct {
	CategoryID            string         `json:"categoryId" validate:"required"`
	PackageID             string         `json:"packageId" validate:"required"`
	Units                 int            `json:"units" validate:"gte=0,lte=20"`
	VentMode              string         `json:"ventMode" validate:"omitempty,oneof=arrival known"`
	VentCount             int            `json:"ventCount" validate:"gte=0,lte=500"`
	PackageDryerLocations map[string]int `json:"packageDryerLocations"`
	Extras                map[string]int `json:"extras"`
	DryerVentLocations    map[string]int `json:"dryerVentLocations"`
	UnitLocation          string         `json:"unitLocation"`
	Province              string         `json:"province" validate:"omitempty,province"`
	CouponCode            string         `json:"couponCode"`
}

func (req SelectionRequest) toSelection() pricing.Selection {
	return pricing.Selection{
		CategoryID:            req.CategoryID,
		PackageID:             req.PackageID,
		Units:                 req.Units,
		VentMode:              req.VentMode,
		VentCount:             req.VentCount,
		PackageDryerLocations: req.PackageDryerLocations,
		Extras:                req.Extras,
		DryerVentLocations:    req.DryerVentLocations,
		UnitLocation:          req.UnitLocation,
		Province:              req.Province,
		Discount:              catalog.CouponDiscount(req.CouponCode),
	}
}

func quotePayload(q pricing.Quote) map[string]interface{} {
	return map[string]interface{}{
		"quote": q,
		"formatted": map[string]string{
			"subtotal": dollars(q.Subtotal),
			"total":    dollars(q.Total),
		},
	}
}

func (s *Server) PostQuote(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req SelectionRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("quote: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		log.Warn("quote: validation error")
		details := httpx.ValidationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	q, err := pricing.Compute(req.toSelection())
	if err != nil {
		log.Warn("quote: unknown package",
			slog.String("category_id", req.CategoryID),
			slog.String("package_id", req.PackageID),
		)
		transport.WriteError(w, http.StatusBadRequest, "unknown package", nil)
		return
	}

	log.Info("quote: ok", slog.String("package_id", req.PackageID), slog.Int64("total", int64(q.Total)))
	transport.WriteJSON(w, http.StatusOK, quotePayload(q))
}
