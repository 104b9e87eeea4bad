package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hotelmock/internal/config"
	"hotelmock/internal/domain"
	"hotelmock/internal/metrics"
	"hotelmock/internal/models"
	"hotelmock/internal/service"
	"hotelmock/internal/store"

	"github.com/rs/zerolog"
)

// HTTPServer exposes the hotel availability mock API.
type HTTPServer struct {
	cfg    *config.Config
	svc    domain.HotelService
	cache  domain.SearchCache
	store  *store.Store
	logger *zerolog.Logger
	server *http.Server
}

// NewHTTPServer wires the routes. searchCache may be nil, in which case
// every availability request is evaluated from scratch.
func NewHTTPServer(cfg *config.Config, svc domain.HotelService, searchCache domain.SearchCache, st *store.Store, logger *zerolog.Logger) *HTTPServer {
	mux := http.NewServeMux()
	srv := &HTTPServer{cfg: cfg, svc: svc, cache: searchCache, store: st, logger: logger}

	mux.HandleFunc("/hotels", srv.handleHotels)
	mux.HandleFunc("/rooms", srv.handleRooms)
	mux.HandleFunc("/availability", srv.handleAvailability)
	mux.HandleFunc("/bookings", srv.handleBookings)
	mux.HandleFunc("/healthz", srv.handleHealth)

	limiter := newRateLimiter(cfg.RateLimit)
	handler := loggingMiddleware(logger, limiter.Wrap(mux))

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return srv
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) handleHotels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, s.svc.Hotels())
}

func (s *HTTPServer) handleRooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	filter := models.RoomFilter{
		RoomType: strings.TrimSpace(q.Get("room_type")),
		BedType:  strings.TrimSpace(q.Get("bed_type")),
	}

	if raw := strings.TrimSpace(q.Get("hotel_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid hotel_id")
			return
		}
		filter.HotelID = id
	}

	writeJSON(w, http.StatusOK, s.svc.Rooms(filter))
}

func (s *HTTPServer) handleAvailability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	params, err := parseSearchParams(r)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	ctx := r.Context()
	cacheKey := r.URL.Query().Encode()

	if s.cache != nil {
		cached, cacheErr := s.cache.Get(ctx, cacheKey)
		if cacheErr != nil {
			s.logger.Warn().Err(cacheErr).Msg("search cache lookup failed")
		}
		if cached != nil {
			metrics.IncCache("hit")
			writeJSON(w, http.StatusOK, cached)
			return
		}
		metrics.IncCache("miss")
	}

	start := time.Now()
	resp, err := s.svc.Search(ctx, params)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	metrics.ObserveSearch(time.Since(start))

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, cacheKey, resp); cacheErr != nil {
			s.logger.Warn().Err(cacheErr).Msg("search cache store failed")
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.BookingRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.GuestName) == "" {
		writeError(w, http.StatusBadRequest, "guest_name is required")
		return
	}

	booking, err := s.svc.CreateBooking(r.Context(), req)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	hotels, rooms, entries := s.store.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":               "ok",
		"hotels":               hotels,
		"rooms":                rooms,
		"availability_entries": entries,
	})
}

// parseSearchParams validates the availability query. Dates are
// mandatory; everything else narrows the candidate set when present.
func parseSearchParams(r *http.Request) (models.SearchParams, error) {
	q := r.URL.Query()

	checkIn, checkOut, err := service.ParseRange(
		strings.TrimSpace(q.Get("check_in_date")),
		strings.TrimSpace(q.Get("check_out_date")),
	)
	if err != nil {
		return models.SearchParams{}, err
	}

	params := models.SearchParams{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: strings.TrimSpace(q.Get("room_type")),
		BedType:  strings.TrimSpace(q.Get("bed_type")),
	}

	if raw := strings.TrimSpace(q.Get("hotel_id")); raw != "" {
		id, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return models.SearchParams{}, errBadParam("hotel_id")
		}
		params.HotelID = id
	}

	if raw := strings.TrimSpace(q.Get("number_of_adults")); raw != "" {
		n, parseErr := strconv.Atoi(raw)
		if parseErr != nil || n < 1 {
			return models.SearchParams{}, errBadParam("number_of_adults")
		}
		params.Adults = n
	}

	if raw := strings.TrimSpace(q.Get("number_of_children")); raw != "" {
		n, parseErr := strconv.Atoi(raw)
		if parseErr != nil || n < 0 {
			return models.SearchParams{}, errBadParam("number_of_children")
		}
		params.Children = n
	}

	if raw := strings.TrimSpace(q.Get("min_price")); raw != "" {
		v, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return models.SearchParams{}, errBadParam("min_price")
		}
		params.MinPrice = &v
	}

	if raw := strings.TrimSpace(q.Get("max_price")); raw != "" {
		v, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return models.SearchParams{}, errBadParam("max_price")
		}
		params.MaxPrice = &v
	}

	return params, nil
}

type badParamError struct {
	name string
}

func errBadParam(name string) error {
	return &badParamError{name: name}
}

func (e *badParamError) Error() string {
	return fmt.Sprintf("invalid %s", e.name)
}

func statusForError(err error) int {
	var badParam *badParamError
	switch {
	case errors.Is(err, service.ErrMalformedDate):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.As(err, &badParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
