package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"weatherdesk/weather-request-service/internal/service"
)

var validate = validator.New()

type RequestsHandler struct {
	requestService service.RequestService
	timeout        time.Duration
}

func NewRequestsHandler(requestService service.RequestService, timeout time.Duration) *RequestsHandler {
	return &RequestsHandler{
		requestService: requestService,
		timeout:        timeout,
	}
}

// Router wires the CRUD, export, search, and health endpoints.
func (h *RequestsHandler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/requests/weather/search", h.SearchByLocation).Methods(http.MethodGet)
	api.HandleFunc("/requests", h.CreateRequest).Methods(http.MethodPost)
	api.HandleFunc("/requests", h.ListRequests).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}/export", h.ExportRequest).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}", h.GetRequest).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}", h.UpdateRequest).Methods(http.MethodPut)
	api.HandleFunc("/requests/{id}", h.DeleteRequest).Methods(http.MethodDelete)

	return r
}

func (h *RequestsHandler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// pathID parses the {id} route variable. A malformed id is reported
// to the client and false is returned.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid id format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *RequestsHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var body CreateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validate.Struct(body); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	record, err := h.requestService.Create(ctx, service.CreateParams{
		Location:  body.Location,
		Unit:      body.Unit,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, record)
}

func (h *RequestsHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	records, err := h.requestService.List(ctx)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, records)
}

func (h *RequestsHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	record, err := h.requestService.Get(ctx, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, record)
}

func (h *RequestsHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body UpdateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validate.Struct(body); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	record, err := h.requestService.Update(ctx, id, service.UpdateParams{
		Location:  body.Location,
		Unit:      body.Unit,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, record)
}

func (h *RequestsHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.requestService.Delete(ctx, id); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, DeleteResponse{Success: true})
}

func (h *RequestsHandler) ExportRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, err := h.requestService.Export(ctx, id, r.URL.Query().Get("format"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	if result.Format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(result.CSV)
		return
	}

	respondWithJSON(w, http.StatusOK, result.Record)
}

// SearchByLocation is a read-through lookup: an exact location_name
// hit of any age is returned as-is, a miss triggers the creation
// workflow with default unit and date range.
func (h *RequestsHandler) SearchByLocation(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		respondWithError(w, http.StatusBadRequest, "location parameter is required")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	record, created, err := h.requestService.Search(ctx, location)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondWithJSON(w, status, record)
}

func (h *RequestsHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{OK: true})
}
