package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/inboxd/internal/api/request"
	"github.com/mcoot/inboxd/internal/api/response"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/services/player"
)

// PlayerHandler handles player account and session endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	p, err := h.playerService.Create(r.Context(), model.PlayerName(req.Name))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.playerService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerListFromNames(names, h.playerService.Online()))
}

// Get handles GET /api/v1/players/{name}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.playerService.Get(r.Context(), playerName(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Login handles POST /api/v1/players/{name}/session
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	p, err := h.playerService.Login(r.Context(), playerName(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Logout handles DELETE /api/v1/players/{name}/session
func (h *PlayerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.Logout(r.Context(), playerName(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// playerName extracts the {name} route variable
func playerName(r *http.Request) model.PlayerName {
	return model.PlayerName(mux.Vars(r)["name"])
}
