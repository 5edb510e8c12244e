package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/auction"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/match"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/player"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/standings"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/team"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/logging"
	"github.com/clonkbot/cricket-auction-hub/internal/usecase"
)

type Handler struct {
	auctionService  *usecase.AuctionService
	teamService     *usecase.TeamService
	matchService    *usecase.MatchService
	standingService *usecase.StandingService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	auctionService *usecase.AuctionService,
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	standingService *usecase.StandingService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		auctionService:  auctionService,
		teamService:     teamService,
		matchService:    matchService,
		standingService: standingService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	status := usecase.PlayerStatus(r.URL.Query().Get("status"))
	players, err := h.auctionService.ListPlayers(ctx, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "status", string(status), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	p, err := h.auctionService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	t, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	m, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows, err := h.standingService.Table(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type playerStatsDTO struct {
	Matches int     `json:"matches"`
	Runs    int     `json:"runs,omitempty"`
	Wickets int     `json:"wickets,omitempty"`
	Average float64 `json:"avg,omitempty"`
}

type playerDTO struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Country      string         `json:"country"`
	Role         string         `json:"role"`
	BasePrice    int64          `json:"base_price"`
	CurrentBid   int64          `json:"current_bid"`
	Sold         bool           `json:"sold"`
	SoldTo       string         `json:"sold_to,omitempty"`
	SoldToTeamID string         `json:"sold_to_team_id,omitempty"`
	Stats        playerStatsDTO `json:"stats"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:           p.ID,
		Name:         p.Name,
		Country:      p.Country,
		Role:         string(p.Role),
		BasePrice:    p.BasePrice,
		CurrentBid:   p.CurrentBid,
		Sold:         p.Sold(),
		SoldTo:       p.SoldTo,
		SoldToTeamID: p.SoldToTeamID,
		Stats: playerStatsDTO{
			Matches: p.Stats.Matches,
			Runs:    p.Stats.Runs,
			Wickets: p.Stats.Wickets,
			Average: p.Stats.Average,
		},
	}
}

type rosterPickDTO struct {
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Country    string    `json:"country"`
	Role       string    `json:"role"`
	Price      int64     `json:"price"`
	SoldAt     time.Time `json:"sold_at"`
}

type teamDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ShortName string          `json:"short_name"`
	Color     string          `json:"color"`
	Budget    int64           `json:"budget"`
	Spent     int64           `json:"spent"`
	Players   []rosterPickDTO `json:"players"`
}

func teamToDTO(t team.Team) teamDTO {
	picks := make([]rosterPickDTO, 0, len(t.Roster))
	for _, pick := range t.Roster {
		picks = append(picks, rosterPickDTO{
			PlayerID:   pick.PlayerID,
			PlayerName: pick.PlayerName,
			Country:    pick.Country,
			Role:       pick.Role,
			Price:      pick.Price,
			SoldAt:     pick.SoldAt,
		})
	}
	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.Short,
		Color:     t.Color,
		Budget:    t.Budget,
		Spent:     t.Spent(),
		Players:   picks,
	}
}

type scoreDTO struct {
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Balls   int    `json:"balls"`
	Overs   string `json:"overs"`
}

type matchDTO struct {
	ID           string     `json:"id"`
	HomeTeamID   string     `json:"home_team_id"`
	HomeTeam     string     `json:"home_team"`
	AwayTeamID   string     `json:"away_team_id"`
	AwayTeam     string     `json:"away_team"`
	HomeScore    scoreDTO   `json:"home_score"`
	AwayScore    scoreDTO   `json:"away_score"`
	Status       string     `json:"status"`
	Result       string     `json:"result,omitempty"`
	WinnerTeamID string     `json:"winner_team_id,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		HomeTeamID:   m.HomeTeamID,
		HomeTeam:     m.HomeTeam,
		AwayTeamID:   m.AwayTeamID,
		AwayTeam:     m.AwayTeam,
		HomeScore:    scoreToDTO(m.HomeScore),
		AwayScore:    scoreToDTO(m.AwayScore),
		Status:       m.Status,
		Result:       m.Result,
		WinnerTeamID: m.WinnerTeamID,
		CompletedAt:  m.CompletedAt,
	}
}

func scoreToDTO(s match.Score) scoreDTO {
	return scoreDTO{
		Runs:    s.Runs,
		Wickets: s.Wickets,
		Balls:   s.Balls,
		Overs:   s.Overs(),
	}
}

type standingRowDTO struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Short    string `json:"short_name"`
	Played   int    `json:"played"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Points   int    `json:"points"`
}

func standingRowToDTO(row standings.Row) standingRowDTO {
	return standingRowDTO{
		TeamID:   row.TeamID,
		TeamName: row.TeamName,
		Short:    row.Short,
		Played:   row.Played,
		Wins:     row.Wins,
		Losses:   row.Losses,
		Points:   row.Points,
	}
}

type auctionSummaryDTO struct {
	TotalPlayers int   `json:"total_players"`
	Sold         int   `json:"sold"`
	Unsold       int   `json:"unsold"`
	TotalSpent   int64 `json:"total_spent"`
}

type auctionEventDTO struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	PlayerID string    `json:"player_id"`
	TeamID   string    `json:"team_id,omitempty"`
	Amount   int64     `json:"amount"`
	At       time.Time `json:"at"`
}

func auctionEventToDTO(e auction.Event) auctionEventDTO {
	return auctionEventDTO{
		ID:       e.ID,
		Type:     string(e.Type),
		PlayerID: e.PlayerID,
		TeamID:   e.TeamID,
		Amount:   e.Amount,
		At:       e.At,
	}
}
