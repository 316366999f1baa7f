package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/AnshRaj112/profile-api/internal/middleware"
	"github.com/AnshRaj112/profile-api/internal/services"
	"github.com/AnshRaj112/profile-api/pkg/utils"
)

// Handler serves the profile and picture endpoints. It is built once at
// startup and shared by every request.
type Handler struct {
	docs services.Documents
	log  *slog.Logger
}

func New(docs services.Documents, log *slog.Logger) *Handler {
	return &Handler{docs: docs, log: log}
}

// writeError maps a service error onto its HTTP status. Internal details
// are logged and never sent to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, services.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found")
	case errors.Is(err, services.ErrDecode):
		h.log.WarnContext(r.Context(), "malformed image record",
			"request_id", middleware.RequestID(r.Context()), "path", r.URL.Path)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Can Not Decode Image Data")
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			"request_id", middleware.RequestID(r.Context()), "path", r.URL.Path, "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// pathParam returns a URL parameter with percent-encoding removed. chi
// matches on RawPath whenever it is set (the client's escaping differs from
// Go's), and only then is the value still escaped. ok is false for a
// malformed escape.
func pathParam(r *http.Request, name string) (string, bool) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, true
	}
	v, err := url.PathUnescape(v)
	if err != nil {
		return "", false
	}
	return v, true
}

// decode unmarshals a stored document into its response model. Every
// bson-tagged field of the model must be present and non-null.
func decode[T any](doc bson.Raw) (T, error) {
	var v T
	if field := missingField(reflect.TypeOf((*T)(nil)).Elem(), doc); field != "" {
		return v, &services.InternalError{Op: "decode document", Err: fmt.Errorf("missing field %q", field)}
	}
	if err := bson.Unmarshal(doc, &v); err != nil {
		return v, &services.InternalError{Op: "decode document", Err: err}
	}
	return v, nil
}

func missingField(typ reflect.Type, doc bson.Raw) string {
	for i := 0; i < typ.NumField(); i++ {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("bson"), ",")
		if name == "" || name == "-" {
			continue
		}
		val, err := doc.LookupErr(name)
		if err != nil || val.Type == bsontype.Null {
			return name
		}
	}
	return ""
}

// Health reports that the process is serving.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// NotFound answers unknown routes with the JSON error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
