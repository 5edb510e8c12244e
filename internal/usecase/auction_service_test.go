package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/auction"
	"github.com/clonkbot/cricket-auction-hub/internal/infrastructure/repository/memory"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/id"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/logging"
)

func newAuctionFixture(budget int64) (*AuctionService, *memory.AuctionStore, *memory.EventLog) {
	store := memory.NewAuctionStore(memory.SeedPlayers(), memory.SeedTeams(budget))
	events := memory.NewEventLog()
	service := NewAuctionService(
		store.Players(), store.Teams(), store, events,
		logging.NewNop(), &id.Sequential{},
	)
	service.now = func() time.Time {
		return time.Date(2026, 4, 12, 19, 30, 0, 0, time.UTC)
	}
	return service, store, events
}

func TestAuctionService_PlaceBidRaisesStandingBid(t *testing.T) {
	t.Parallel()

	service, _, events := newAuctionFixture(1000)
	ctx := context.Background()

	first, err := service.PlaceBid(ctx, "p1", 25)
	if err != nil {
		t.Fatalf("first bid: %v", err)
	}
	if first.CurrentBid != 225 {
		t.Fatalf("expected bid 225, got %d", first.CurrentBid)
	}

	second, err := service.PlaceBid(ctx, "p1", 25)
	if err != nil {
		t.Fatalf("second bid: %v", err)
	}
	if second.CurrentBid != 250 {
		t.Fatalf("expected bid 250, got %d", second.CurrentBid)
	}

	recorded, err := events.List(ctx)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(recorded) != 2 {
		t.Fatalf("expected 2 events, got %d", len(recorded))
	}
	if recorded[0].Type != auction.EventTypeBid || recorded[0].Amount != 225 {
		t.Fatalf("unexpected first event: %+v", recorded[0])
	}
	if recorded[1].Amount != 250 || recorded[1].ID == recorded[0].ID {
		t.Fatalf("unexpected second event: %+v", recorded[1])
	}
}

func TestAuctionService_PlaceBid_Validation(t *testing.T) {
	t.Parallel()

	service, _, _ := newAuctionFixture(1000)
	ctx := context.Background()

	if _, err := service.PlaceBid(ctx, "p1", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero increment: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.PlaceBid(ctx, "p1", -10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative increment: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.PlaceBid(ctx, "", 25); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank id: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.PlaceBid(ctx, "p99", 25); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown player: expected ErrNotFound, got %v", err)
	}
}

func TestAuctionService_PlaceBid_SoldPlayerRejected(t *testing.T) {
	t.Parallel()

	service, _, _ := newAuctionFixture(1000)
	ctx := context.Background()

	if _, _, err := service.SellPlayer(ctx, "p1", "t1"); err != nil {
		t.Fatalf("sell: %v", err)
	}
	if _, err := service.PlaceBid(ctx, "p1", 25); !errors.Is(err, auction.ErrAlreadySold) {
		t.Fatalf("expected ErrAlreadySold, got %v", err)
	}
}

func TestAuctionService_SellPlayer_SettlesAtStandingBid(t *testing.T) {
	t.Parallel()

	service, _, events := newAuctionFixture(1000)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := service.PlaceBid(ctx, "p1", 25); err != nil {
			t.Fatalf("bid %d: %v", i, err)
		}
	}

	soldPlayer, buyer, err := service.SellPlayer(ctx, "p1", "t1")
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if !soldPlayer.Sold() || soldPlayer.SoldTo != "Royal Strikers" || soldPlayer.SoldToTeamID != "t1" {
		t.Fatalf("player not settled: %+v", soldPlayer)
	}
	if buyer.Budget != 750 {
		t.Fatalf("expected budget 750, got %d", buyer.Budget)
	}
	if len(buyer.Roster) != 1 || buyer.Roster[0].Price != 250 || buyer.Roster[0].PlayerName != "Virat Kohli" {
		t.Fatalf("unexpected roster: %+v", buyer.Roster)
	}

	recorded, _ := events.List(ctx)
	last := recorded[len(recorded)-1]
	if last.Type != auction.EventTypeSale || last.TeamID != "t1" || last.Amount != 250 {
		t.Fatalf("unexpected sale event: %+v", last)
	}
}

func TestAuctionService_SellPlayer_DoubleSaleRejected(t *testing.T) {
	t.Parallel()

	service, store, _ := newAuctionFixture(1000)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := service.PlaceBid(ctx, "p1", 25); err != nil {
			t.Fatalf("bid %d: %v", i, err)
		}
	}
	if _, _, err := service.SellPlayer(ctx, "p1", "t1"); err != nil {
		t.Fatalf("first sale: %v", err)
	}

	if _, _, err := service.SellPlayer(ctx, "p1", "t2"); !errors.Is(err, auction.ErrAlreadySold) {
		t.Fatalf("expected ErrAlreadySold, got %v", err)
	}

	buyer, _, _ := store.Teams().GetByID(ctx, "t1")
	if buyer.Budget != 750 || len(buyer.Roster) != 1 {
		t.Fatalf("first sale effects changed: budget=%d roster=%d", buyer.Budget, len(buyer.Roster))
	}
	loser, _, _ := store.Teams().GetByID(ctx, "t2")
	if loser.Budget != 1000 || len(loser.Roster) != 0 {
		t.Fatalf("rejected sale left effects: %+v", loser)
	}
}

func TestAuctionService_SellPlayer_InsufficientBudget(t *testing.T) {
	t.Parallel()

	service, store, _ := newAuctionFixture(40)
	ctx := context.Background()

	_, _, err := service.SellPlayer(ctx, "p1", "t1")
	if !errors.Is(err, auction.ErrInsufficientBudget) {
		t.Fatalf("expected ErrInsufficientBudget, got %v", err)
	}

	p, _, _ := store.Players().GetByID(ctx, "p1")
	if p.Sold() || p.CurrentBid != 200 {
		t.Fatalf("rejected sale mutated player: %+v", p)
	}
	buyer, _, _ := store.Teams().GetByID(ctx, "t1")
	if buyer.Budget != 40 || len(buyer.Roster) != 0 {
		t.Fatalf("rejected sale mutated team: %+v", buyer)
	}
}

func TestAuctionService_SellPlayer_UnknownReferences(t *testing.T) {
	t.Parallel()

	service, _, _ := newAuctionFixture(1000)
	ctx := context.Background()

	if _, _, err := service.SellPlayer(ctx, "p99", "t1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown player: expected ErrNotFound, got %v", err)
	}
	if _, _, err := service.SellPlayer(ctx, "p1", "t99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown team: expected ErrNotFound, got %v", err)
	}
	if _, _, err := service.SellPlayer(ctx, "", "t1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank ids: expected ErrInvalidInput, got %v", err)
	}
}

func TestAuctionService_ListPlayersFilter(t *testing.T) {
	t.Parallel()

	service, _, _ := newAuctionFixture(1000)
	ctx := context.Background()

	if _, _, err := service.SellPlayer(ctx, "p1", "t1"); err != nil {
		t.Fatalf("sell: %v", err)
	}

	all, err := service.ListPlayers(ctx, PlayerStatusAny)
	if err != nil || len(all) != 8 {
		t.Fatalf("all: got %d players, err %v", len(all), err)
	}
	sold, err := service.ListPlayers(ctx, PlayerStatusSold)
	if err != nil || len(sold) != 1 || sold[0].ID != "p1" {
		t.Fatalf("sold: got %+v, err %v", sold, err)
	}
	unsold, err := service.ListPlayers(ctx, PlayerStatusUnsold)
	if err != nil || len(unsold) != 7 {
		t.Fatalf("unsold: got %d players, err %v", len(unsold), err)
	}
	if _, err := service.ListPlayers(ctx, PlayerStatus("pending")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad status: expected ErrInvalidInput, got %v", err)
	}
}

func TestAuctionService_Summary(t *testing.T) {
	t.Parallel()

	service, _, _ := newAuctionFixture(1000)
	ctx := context.Background()

	summary, err := service.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalPlayers != 8 || summary.Sold != 0 || summary.Unsold != 8 {
		t.Fatalf("unexpected opening summary: %+v", summary)
	}

	if _, err := service.PlaceBid(ctx, "p2", 50); err != nil {
		t.Fatalf("bid: %v", err)
	}
	if _, _, err := service.SellPlayer(ctx, "p2", "t4"); err != nil {
		t.Fatalf("sell: %v", err)
	}

	summary, err = service.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Sold != 1 || summary.Unsold != 7 || summary.TotalSpent != 200 {
		t.Fatalf("unexpected summary after sale: %+v", summary)
	}
}
