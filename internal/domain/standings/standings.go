package standings

import (
	"sort"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/match"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/team"
)

const pointsPerWin = 2

// Row is one line of the tournament points table.
type Row struct {
	TeamID   string
	TeamName string
	Short    string
	Played   int
	Wins     int
	Losses   int
	Points   int
}

// Compute derives the points table from completed matches. It is pure: the
// same inputs always produce the same rows and nothing is mutated. Wins are
// attributed via Match.WinnerTeamID only. The sort is stable on points
// descending with no secondary tie-break, so equal-points teams keep their
// input order.
func Compute(teams []team.Team, matches []match.Match) []Row {
	rows := make([]Row, 0, len(teams))
	for _, t := range teams {
		row := Row{TeamID: t.ID, TeamName: t.Name, Short: t.Short}
		for _, m := range matches {
			if !m.Finished() || !m.Involves(t.ID) {
				continue
			}
			row.Played++
			if m.WinnerTeamID == t.ID {
				row.Wins++
			}
		}
		row.Losses = row.Played - row.Wins
		row.Points = row.Wins * pointsPerWin
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points > rows[j].Points
	})

	return rows
}
