package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"restaurant-finder-service/internal/api/dto"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/geo"
	"restaurant-finder-service/internal/ports"
	"restaurant-finder-service/internal/services"
	"strings"
)

// RestaurantHandler exposes the nearby search and single restaurant lookup.
type RestaurantHandler struct {
	Repo     ports.RestaurantRepository
	Geocoder ports.Geocoder

	// DefaultLimit applies when the request has no limit; 0 returns everything.
	DefaultLimit int
}

// Search ranks restaurants around lat/lon or a geocoded address.
func (h *RestaurantHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	params, limit, err := parseSearch(r, h.DefaultLimit)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, dto.ApiResponse{
			Restaurants: []dto.RestaurantResponse{},
			Error:       err.Error(),
		})
		return
	}

	res, err := services.SearchNearby(r.Context(), params, limit, h.Repo, h.Geocoder)
	if err != nil {
		logInternal(r, err, "Search nearby failed")
		writeJSON(w, r, http.StatusInternalServerError, dto.ApiResponse{
			Restaurants: []dto.RestaurantResponse{},
			Error:       "Failed to fetch restaurants",
		})
		return
	}

	out := dto.ApiResponse{
		Restaurants: make([]dto.RestaurantResponse, 0, len(res.Restaurants)),
		Message:     res.Message,
		Origin: &dto.OriginResponse{
			Latitude:  res.Origin.Latitude,
			Longitude: res.Origin.Longitude,
			Source:    string(res.Source),
		},
	}
	for _, rr := range res.Restaurants {
		out.Restaurants = append(out.Restaurants, dto.RestaurantResponse{
			Restaurant: rr.Restaurant,
			DistanceKm: rr.DistanceKm,
			Distance:   rr.Distance,
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}

// GeoJSON runs the same search as Search and returns a FeatureCollection.
func (h *RestaurantHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	params, limit, err := parseSearch(r, h.DefaultLimit)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := services.SearchNearby(r.Context(), params, limit, h.Repo, h.Geocoder)
	if err != nil {
		logInternal(r, err, "Search nearby failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSONType(w, r, http.StatusOK, "application/geo+json", geo.RankedFeatureCollection(res.Restaurants))
}

// Get returns one restaurant by id.
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	rest, err := h.Repo.GetRestaurant(r.Context(), id)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "restaurant not found")
		return
	}
	if err != nil {
		logInternal(r, err, "Get restaurant failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, rest)
}

func parseSearch(r *http.Request, defaultLimit int) (domain.SearchParams, int, error) {
	lat, err := parseFloatParam(r, "lat")
	if err != nil {
		return domain.SearchParams{}, 0, err
	}
	lon, err := parseFloatParam(r, "lon")
	if err != nil {
		return domain.SearchParams{}, 0, err
	}
	if lat != nil && (*lat < -90 || *lat > 90) {
		return domain.SearchParams{}, 0, fmt.Errorf("lat must be between -90 and 90")
	}
	if lon != nil && (*lon < -180 || *lon > 180) {
		return domain.SearchParams{}, 0, fmt.Errorf("lon must be between -180 and 180")
	}

	limit, err := parseIntParam(r, "limit", defaultLimit)
	if err != nil {
		return domain.SearchParams{}, 0, err
	}

	return domain.SearchParams{
		Latitude:  lat,
		Longitude: lon,
		Address:   strings.TrimSpace(r.URL.Query().Get("address")),
	}, limit, nil
}
