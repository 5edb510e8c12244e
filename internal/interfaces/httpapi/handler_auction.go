package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/clonkbot/cricket-auction-hub/internal/usecase"
)

type placeBidRequest struct {
	Increment int64 `json:"increment" validate:"required,gt=0"`
}

type sellPlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   string `json:"team_id" validate:"required"`
}

type saleResultDTO struct {
	Player playerDTO `json:"player"`
	Team   teamDTO   `json:"team"`
}

func (h *Handler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlaceBid")
	defer span.End()

	playerID := r.PathValue("playerID")

	var req placeBidRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.auctionService.PlaceBid(ctx, playerID, req.Increment)
	if err != nil {
		h.logger.WarnContext(ctx, "place bid failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) SellPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SellPlayer")
	defer span.End()

	var req sellPlayerRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	soldPlayer, buyer, err := h.auctionService.SellPlayer(ctx, req.PlayerID, req.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "sell player failed",
			"player_id", req.PlayerID,
			"team_id", req.TeamID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saleResultDTO{
		Player: playerToDTO(soldPlayer),
		Team:   teamToDTO(buyer),
	})
}

func (h *Handler) AuctionSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AuctionSummary")
	defer span.End()

	summary, err := h.auctionService.Summary(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "auction summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionSummaryDTO{
		TotalPlayers: summary.TotalPlayers,
		Sold:         summary.Sold,
		Unsold:       summary.Unsold,
		TotalSpent:   summary.TotalSpent,
	})
}

func (h *Handler) ListAuctionEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAuctionEvents")
	defer span.End()

	events, err := h.auctionService.ListEvents(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list auction events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]auctionEventDTO, 0, len(events))
	for _, event := range events {
		items = append(items, auctionEventToDTO(event))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
