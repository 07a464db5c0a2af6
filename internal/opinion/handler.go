// AngelaMos | 2026
// handler.go

package opinion

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/opinion-board/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/opinions", func(r chi.Router) {
		r.Get("/", h.ListOpinions)
		r.Post("/", h.CreateOpinion)
		r.Get("/user/{userID}", h.ListUserOpinions)
		r.Post("/{opinionID}/vote", h.Vote)
	})
}

// RegisterAdminRoutes registers opinion moderation endpoints behind
// adminOnly.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/opinions", func(r chi.Router) {
		r.Use(adminOnly)

		r.Get("/", h.ListOpinions)
		r.Put("/{opinionID}", h.UpdateOpinion)
		r.Delete("/{opinionID}", h.DeleteOpinion)
	})
}

func (h *Handler) ListOpinions(w http.ResponseWriter, r *http.Request) {
	opinions, err := h.service.ListOpinions(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, OpinionListResponse{Opinions: ToOpinionResponseList(opinions)})
}

func (h *Handler) ListUserOpinions(w http.ResponseWriter, r *http.Request) {
	userID, err := core.ParseID(r, "userID")
	if err != nil {
		core.JSONError(w, err)
		return
	}

	opinions, err := h.service.ListOpinionsByUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, OpinionListResponse{Opinions: ToOpinionResponseList(opinions)})
}

func (h *Handler) CreateOpinion(w http.ResponseWriter, r *http.Request) {
	var req CreateOpinionRequest
	if !h.decode(w, r, &req) {
		return
	}

	id, err := h.service.CreateOpinion(r.Context(), req.UserID, req.Username, req.Text)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, CreatedResponse{
		Message:   "opinion created successfully",
		OpinionID: id,
	})
}

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	opinionID, err := core.ParseID(r, "opinionID")
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req VoteRequest
	if !h.decode(w, r, &req) {
		return
	}

	tally, err := h.service.CastVote(r.Context(), opinionID, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, VoteResponse{Opinion: *tally})
}

func (h *Handler) UpdateOpinion(w http.ResponseWriter, r *http.Request) {
	opinionID, err := core.ParseID(r, "opinionID")
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req UpdateOpinionRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.UpdateOpinionText(r.Context(), opinionID, req.Text); err != nil {
		writeError(w, err)
		return
	}

	core.Message(w, http.StatusOK, "opinion updated successfully")
}

func (h *Handler) DeleteOpinion(w http.ResponseWriter, r *http.Request) {
	opinionID, err := core.ParseID(r, "opinionID")
	if err != nil {
		core.JSONError(w, err)
		return
	}

	if err := h.service.DeleteOpinion(r.Context(), opinionID); err != nil {
		writeError(w, err)
		return
	}

	core.Message(w, http.StatusOK, "opinion deleted successfully")
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		core.BadRequest(w, "invalid request body")
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return false
	}

	return true
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrNotFound) && !core.IsAppError(err) {
		core.NotFound(w, "opinion")
		return
	}
	core.JSONError(w, err)
}
