package memory

import (
	"github.com/clonkbot/cricket-auction-hub/internal/domain/match"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/player"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/team"
)

// SeedPlayers returns the opening auction pool. Every player starts unsold
// with CurrentBid at base price.
func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID: "p1", Name: "Virat Kohli", Country: "India",
			Role: player.RoleBatsman, BasePrice: 200, CurrentBid: 200,
			Stats: player.Stats{Matches: 237, Runs: 7263, Average: 37.25},
		},
		{
			ID: "p2", Name: "Jasprit Bumrah", Country: "India",
			Role: player.RoleBowler, BasePrice: 150, CurrentBid: 150,
			Stats: player.Stats{Matches: 120, Wickets: 145, Average: 23.5},
		},
		{
			ID: "p3", Name: "Ben Stokes", Country: "England",
			Role: player.RoleAllRounder, BasePrice: 180, CurrentBid: 180,
			Stats: player.Stats{Matches: 104, Runs: 2924, Wickets: 74},
		},
		{
			ID: "p4", Name: "Jos Buttler", Country: "England",
			Role: player.RoleWicketKeeper, BasePrice: 160, CurrentBid: 160,
			Stats: player.Stats{Matches: 89, Runs: 2838, Average: 41.14},
		},
		{
			ID: "p5", Name: "Pat Cummins", Country: "Australia",
			Role: player.RoleBowler, BasePrice: 140, CurrentBid: 140,
			Stats: player.Stats{Matches: 76, Wickets: 98, Average: 28.3},
		},
		{
			ID: "p6", Name: "Rashid Khan", Country: "Afghanistan",
			Role: player.RoleBowler, BasePrice: 120, CurrentBid: 120,
			Stats: player.Stats{Matches: 92, Wickets: 112, Average: 21.8},
		},
		{
			ID: "p7", Name: "Suryakumar Yadav", Country: "India",
			Role: player.RoleBatsman, BasePrice: 130, CurrentBid: 130,
			Stats: player.Stats{Matches: 65, Runs: 2141, Average: 44.6},
		},
		{
			ID: "p8", Name: "Mitchell Starc", Country: "Australia",
			Role: player.RoleBowler, BasePrice: 150, CurrentBid: 150,
			Stats: player.Stats{Matches: 68, Wickets: 89, Average: 26.1},
		},
	}
}

// SeedTeams returns the four franchises, each starting with the given budget
// and an empty roster.
func SeedTeams(budget int64) []team.Team {
	return []team.Team{
		{ID: "t1", Name: "Royal Strikers", Short: "RST", Color: "#E91E63", Budget: budget},
		{ID: "t2", Name: "Thunder Kings", Short: "THK", Color: "#9C27B0", Budget: budget},
		{ID: "t3", Name: "Phoenix Warriors", Short: "PHW", Color: "#FF5722", Budget: budget},
		{ID: "t4", Name: "Ocean Titans", Short: "OCT", Color: "#00BCD4", Budget: budget},
	}
}

// SeedMatches returns the opening fixture list: one live game, one upcoming
// and one already decided.
func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:         "m1",
			HomeTeamID: "t1", HomeTeam: "Royal Strikers",
			AwayTeamID: "t2", AwayTeam: "Thunder Kings",
			HomeScore: match.Score{Runs: 187, Wickets: 4, Balls: 120},
			AwayScore: match.Score{Runs: 156, Wickets: 8, Balls: 111},
			Status:    match.StatusLive,
		},
		{
			ID:         "m2",
			HomeTeamID: "t3", HomeTeam: "Phoenix Warriors",
			AwayTeamID: "t4", AwayTeam: "Ocean Titans",
			Status:     match.StatusUpcoming,
		},
		{
			ID:         "m3",
			HomeTeamID: "t1", HomeTeam: "Royal Strikers",
			AwayTeamID: "t3", AwayTeam: "Phoenix Warriors",
			HomeScore:    match.Score{Runs: 165, Wickets: 6, Balls: 120},
			AwayScore:    match.Score{Runs: 168, Wickets: 3, Balls: 112},
			Status:       match.StatusCompleted,
			Result:       "Phoenix Warriors won by 7 wickets",
			WinnerTeamID: "t3",
		},
	}
}
