package handlers

import (
	"net/http"

	"cleanair-backend/internal/catalog"
	"cleanair-backend/internal/transport"
)

func (s *Server) GetCatalogServices(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": catalog.Categories,
	})
}

func (s *Server) GetCatalogExtras(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"extras":           catalog.Extras,
		"extendedCoverage": catalog.ExtendedCoverage,
	})
}

func (s *Server) GetCatalogOptions(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"provinces":           catalog.Provinces,
		"provinceTaxes":       catalog.ProvinceTaxes,
		"unitLocations":       catalog.UnitLocations,
		"languagePreferences": catalog.LanguagePreferences,
		"specialRequests":     catalog.SpecialRequests,
	})
}
