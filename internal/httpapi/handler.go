// Package httpapi exposes the item repository over REST. The handler is
// transport translation only: it validates request shape, delegates to the
// service, and maps outcomes to status codes.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ninalamo/itemsvc/internal/httputil"
	"github.com/ninalamo/itemsvc/internal/item"
	"github.com/ninalamo/itemsvc/internal/logging"
	"github.com/ninalamo/itemsvc/internal/metrics"
	"github.com/ninalamo/itemsvc/internal/service/items"
	"github.com/ninalamo/itemsvc/internal/storage"
)

// handler bundles the HTTP endpoints for the item service.
type handler struct {
	items *items.Service
	log   *logging.Logger
	m     *metrics.Metrics
}

// NewRouter returns a router exposing the item REST API plus liveness and
// metrics endpoints.
func NewRouter(svc *items.Service, log *logging.Logger, m *metrics.Metrics) *mux.Router {
	if log == nil {
		log = logging.NewDefault("httpapi")
	}
	h := &handler{items: svc, log: log, m: m}

	r := mux.NewRouter()
	r.HandleFunc("/items", h.createItem).Methods(http.MethodPost)
	r.HandleFunc("/items", h.listItems).Methods(http.MethodGet)
	r.HandleFunc("/items/{id}", h.getItem).Methods(http.MethodGet)
	r.HandleFunc("/items/{id}", h.updateItem).Methods(http.MethodPut)
	r.HandleFunc("/items/{id}", h.deleteItem).Methods(http.MethodDelete)
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	if m != nil {
		r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	}
	return r
}

// itemPayload is the write body for create and update. Done defaults to false
// when omitted; a missing description persists as absent.
type itemPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

func (p itemPayload) draft() item.Draft {
	d := item.Draft{Name: p.Name, Description: p.Description}
	if p.Done != nil {
		d.Done = *p.Done
	}
	return d
}

func (h *handler) createItem(w http.ResponseWriter, r *http.Request) {
	var payload itemPayload
	if !httputil.DecodeJSON(w, r, &payload) {
		return
	}
	if payload.Name == "" {
		httputil.BadRequest(w, "name is required")
		return
	}

	created, err := h.items.Create(r.Context(), payload.draft())
	if err != nil {
		h.writeServiceError(w, "create", err)
		return
	}
	h.record("create", nil)
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *handler) listItems(w http.ResponseWriter, r *http.Request) {
	skip, ok := queryInt(w, r, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", items.DefaultListLimit)
	if !ok {
		return
	}

	list, err := h.items.List(r.Context(), skip, limit)
	if err != nil {
		h.writeServiceError(w, "list", err)
		return
	}
	h.record("list", nil)
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	it, err := h.items.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "get", err)
		return
	}
	h.record("get", nil)
	httputil.WriteJSON(w, http.StatusOK, it)
}

func (h *handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var payload itemPayload
	if !httputil.DecodeJSON(w, r, &payload) {
		return
	}
	if payload.Name == "" {
		httputil.BadRequest(w, "name is required")
		return
	}

	updated, err := h.items.Update(r.Context(), id, payload.draft())
	if err != nil {
		h.writeServiceError(w, "update", err)
		return
	}
	h.record("update", nil)
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.items.Delete(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "delete", err)
		return
	}
	h.record("delete", nil)
	httputil.WriteJSON(w, http.StatusOK, deleted)
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeServiceError maps repository outcomes to responses: not-found is a
// domain result, store failures are surfaced as service unavailable, and
// everything else was rejected input.
func (h *handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	h.record(op, err)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httputil.NotFound(w, "item not found")
	case errors.Is(err, storage.ErrUnavailable):
		h.log.WithError(err).Errorf("item %s failed: store unavailable", op)
		httputil.Unavailable(w, "store unavailable")
	default:
		httputil.BadRequest(w, err.Error())
	}
}

func (h *handler) record(op string, err error) {
	if h.m != nil {
		h.m.RecordItemOperation(op, err)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		httputil.BadRequest(w, "id must be an integer")
		return 0, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		httputil.BadRequest(w, name+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}
