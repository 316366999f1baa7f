package handlers

import (
	"net/http"

	"github.com/AnshRaj112/profile-api/internal/models"
	"github.com/AnshRaj112/profile-api/internal/services"
	"github.com/AnshRaj112/profile-api/pkg/utils"
)

// GetProfileByID handles GET /api/v1/id/{document}.
func (h *Handler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(r, "document")
	if !ok {
		h.writeError(w, r, services.ErrNotFound)
		return
	}
	doc, err := h.docs.Get(r.Context(), services.CollectionUserData, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	profile, err := decode[models.Profile](doc)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, profile)
}

// GetProfilesByNickname handles GET /api/v1/nickname/{nickname}.
func (h *Handler) GetProfilesByNickname(w http.ResponseWriter, r *http.Request) {
	h.queryProfiles(w, r, "nickname", "nickname")
}

// GetProfilesByUsername handles GET /api/v1/username/{username}.
func (h *Handler) GetProfilesByUsername(w http.ResponseWriter, r *http.Request) {
	h.queryProfiles(w, r, "user_id", "username")
}

func (h *Handler) queryProfiles(w http.ResponseWriter, r *http.Request, field, param string) {
	value, ok := pathParam(r, param)
	if !ok {
		h.writeError(w, r, services.ErrNotFound)
		return
	}
	docs, err := h.docs.Query(r.Context(), services.CollectionUserData, field, value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	profiles := make([]models.Profile, 0, len(docs))
	for _, doc := range docs {
		profile, err := decode[models.Profile](doc)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		profiles = append(profiles, profile)
	}
	utils.WriteJSONResponse(w, http.StatusOK, profiles)
}
