package handlers

import (
	"net/http"
	"strconv"

	"github.com/AnshRaj112/profile-api/internal/models"
	"github.com/AnshRaj112/profile-api/internal/services"
	"github.com/AnshRaj112/profile-api/pkg/utils"
)

// GetPictureRecord handles GET /api/v1/picture/record/{document}. The image
// payload is returned base64-encoded, exactly as stored.
func (h *Handler) GetPictureRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(r, "document")
	if !ok {
		h.writeError(w, r, services.ErrNotFound)
		return
	}
	doc, err := h.docs.Get(r.Context(), services.CollectionUserImages, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if _, _, err := services.ImageData(doc); err != nil {
		h.writeError(w, r, err)
		return
	}
	image, err := decode[models.Image](doc)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, image)
}

// GetPictureRaw handles GET /api/v1/picture/raw/{document}, returning the
// decoded bytes with an image/<type> content type.
func (h *Handler) GetPictureRaw(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(r, "document")
	if !ok {
		h.writeError(w, r, services.ErrNotFound)
		return
	}
	doc, err := h.docs.Get(r.Context(), services.CollectionUserImages, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data, contentType, err := services.DecodeImage(doc)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
