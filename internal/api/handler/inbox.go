package handler

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/mcoot/inboxd/internal/api/apierr"
	"github.com/mcoot/inboxd/internal/api/request"
	"github.com/mcoot/inboxd/internal/api/response"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/services/delivery"
)

// InboxHandler handles inbox reads and item deliveries
type InboxHandler struct {
	deliveryService *delivery.Service
}

// NewInboxHandler creates a new inbox handler
func NewInboxHandler(deliveryService *delivery.Service) *InboxHandler {
	return &InboxHandler{
		deliveryService: deliveryService,
	}
}

// Get handles GET /api/v1/players/{name}/inbox
func (h *InboxHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := playerName(r)

	items, err := h.deliveryService.Inbox(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Inbox{
		Player: string(name),
		Items:  response.ItemsFromModel(items),
	})
}

// Deliver handles POST /api/v1/players/{name}/inbox
func (h *InboxHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	var req request.DeliverItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ItemID == nil {
		WriteError(w, NewInvalidRequestError("item_id is required"))
		return
	}
	if *req.ItemID < 0 || *req.ItemID > math.MaxUint16 {
		WriteError(w, NewInvalidRequestError("item_id must be between 0 and 65535"))
		return
	}

	d, err := h.deliveryService.AddItemToPlayer(r.Context(), playerName(r), model.ItemTypeID(*req.ItemID))
	if err != nil {
		WriteError(w, err)
		return
	}
	if !d.Delivered() {
		WriteError(w, apierr.NewDeliveryError(d.Status))
		return
	}

	response.JSON(w, http.StatusCreated, response.DeliveryFromModel(d))
}
