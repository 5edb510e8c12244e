package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/auction"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/player"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/team"
)

func newSeededStore() *AuctionStore {
	return NewAuctionStore(SeedPlayers(), SeedTeams(1000))
}

func TestAuctionStore_ListKeepsSeedOrder(t *testing.T) {
	t.Parallel()

	store := newSeededStore()
	players, err := store.Players().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 8 {
		t.Fatalf("expected 8 players, got %d", len(players))
	}
	if players[0].ID != "p1" || players[7].ID != "p8" {
		t.Fatalf("seed order not preserved: first=%s last=%s", players[0].ID, players[7].ID)
	}

	teams, err := store.Teams().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 4 || teams[0].Short != "RST" || teams[3].Short != "OCT" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}

func TestAuctionStore_UpdateAppliesUnderLock(t *testing.T) {
	t.Parallel()

	store := newSeededStore()
	updated, found, err := store.Players().Update(context.Background(), "p1", func(p player.Player) (player.Player, error) {
		p.CurrentBid += 25
		return p, nil
	})
	if err != nil || !found {
		t.Fatalf("unexpected result: %v %v", found, err)
	}
	if updated.CurrentBid != 225 {
		t.Fatalf("expected bid 225, got %d", updated.CurrentBid)
	}

	stored, _, _ := store.Players().GetByID(context.Background(), "p1")
	if stored.CurrentBid != 225 {
		t.Fatalf("update not persisted: %d", stored.CurrentBid)
	}
}

func TestAuctionStore_UpdateMissingPlayer(t *testing.T) {
	t.Parallel()

	store := newSeededStore()
	_, found, err := store.Players().Update(context.Background(), "p99", func(p player.Player) (player.Player, error) {
		return p, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("missing player reported as found")
	}
}

func TestAuctionStore_UpdateErrorLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	store := newSeededStore()
	boom := errors.New("boom")
	_, _, err := store.Players().Update(context.Background(), "p1", func(p player.Player) (player.Player, error) {
		p.CurrentBid = 999
		return p, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}

	stored, _, _ := store.Players().GetByID(context.Background(), "p1")
	if stored.CurrentBid != 200 {
		t.Fatalf("failed update mutated state: %d", stored.CurrentBid)
	}
}

func TestAuctionStore_ApplySalePersistsBothSides(t *testing.T) {
	t.Parallel()

	store := newSeededStore()
	now := seedTime(t)
	_, _, err := store.ApplySale(context.Background(), "p1", "t1",
		func(p player.Player, buyer team.Team) (player.Player, team.Team, error) {
			return auction.Sell(p, buyer, now)
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, _, _ := store.Players().GetByID(context.Background(), "p1")
	if !p.Sold() || p.SoldToTeamID != "t1" || p.SoldTo != "Royal Strikers" {
		t.Fatalf("player not settled: %+v", p)
	}
	buyer, _, _ := store.Teams().GetByID(context.Background(), "t1")
	if buyer.Budget != 800 {
		t.Fatalf("expected budget 800, got %d", buyer.Budget)
	}
	if len(buyer.Roster) != 1 || buyer.Roster[0].PlayerID != "p1" || buyer.Roster[0].Price != 200 {
		t.Fatalf("unexpected roster: %+v", buyer.Roster)
	}
}

func TestAuctionStore_ConcurrentSalesOnlyOneWins(t *testing.T) {
	t.Parallel()

	store := newSeededStore()
	now := seedTime(t)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = store.ApplySale(context.Background(), "p1", "t1",
				func(p player.Player, buyer team.Team) (player.Player, team.Team, error) {
					return auction.Sell(p, buyer, now)
				})
		}(i)
	}
	wg.Wait()

	wins, rejects := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, auction.ErrAlreadySold):
			rejects++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || rejects != 3 {
		t.Fatalf("expected exactly one winning sale, got wins=%d rejects=%d", wins, rejects)
	}

	buyer, _, _ := store.Teams().GetByID(context.Background(), "t1")
	if buyer.Budget != 800 || len(buyer.Roster) != 1 {
		t.Fatalf("duplicate sale effects: budget=%d roster=%d", buyer.Budget, len(buyer.Roster))
	}
}

func TestAuctionStore_ReadsReturnClones(t *testing.T) {
	t.Parallel()

	store := newSeededStore()
	teams, _ := store.Teams().List(context.Background())
	teams[0].Budget = 0
	teams[0].Roster = append(teams[0].Roster, team.Pick{PlayerID: "p1"})

	fresh, _, _ := store.Teams().GetByID(context.Background(), "t1")
	if fresh.Budget != 1000 || len(fresh.Roster) != 0 {
		t.Fatalf("caller mutation leaked into store: %+v", fresh)
	}
}
