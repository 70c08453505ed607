package handler

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/mcoot/inboxd/internal/api/request"
	"github.com/mcoot/inboxd/internal/api/response"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/services/items"
)

// ItemHandler handles item catalog endpoints
type ItemHandler struct {
	itemService *items.Service
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *items.Service) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// List handles GET /api/v1/items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.itemService.ListItemTypes(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.ItemTypeList{Items: make([]response.ItemType, len(types))}
	for i, t := range types {
		resp.Items[i] = response.ItemTypeFromModel(t)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Create handles POST /api/v1/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateItemTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ID <= 0 || req.ID > math.MaxUint16 {
		WriteError(w, NewInvalidRequestError("id must be between 1 and 65535"))
		return
	}
	if req.MaxCount == 0 {
		req.MaxCount = 1
	}

	itemType := &model.ItemType{
		ID:       model.ItemTypeID(req.ID),
		Name:     req.Name,
		MaxCount: req.MaxCount,
	}
	if err := h.itemService.RegisterItemType(r.Context(), itemType); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ItemTypeFromModel(itemType))
}
