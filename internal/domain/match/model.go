package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	StatusUpcoming  = "UPCOMING"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
)

// Side selects which innings of a match a score update applies to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

const ballsPerOver = 6
const maxWickets = 10

var (
	ErrNotUpcoming      = errors.New("match is not upcoming")
	ErrNotLive          = errors.New("match is not live")
	ErrCompleted        = errors.New("match already completed")
	ErrUnknownSide      = errors.New("unknown match side")
	ErrWinnerNotPlaying = errors.New("winner is not one of the playing teams")
)

// Score is one innings total. Balls counts scoring deliveries and wickets;
// the overs figure is derived from it with a six-ball rollover instead of
// being stored as a decimal.
type Score struct {
	Runs    int
	Wickets int
	Balls   int
}

// Overs renders the conventional O.B figure, e.g. 111 balls -> "18.3".
func (s Score) Overs() string {
	return fmt.Sprintf("%d.%d", s.Balls/ballsPerOver, s.Balls%ballsPerOver)
}

func (s Score) withBall(runs int, wicket bool) Score {
	next := s
	next.Runs += runs
	if wicket && next.Wickets < maxWickets {
		next.Wickets++
	}
	if wicket || runs > 0 {
		next.Balls++
	}
	return next
}

// Match is one fixture between two franchises. HomeTeam/AwayTeam are display
// names; the IDs are the authoritative references and WinnerTeamID is set
// explicitly on completion so standings never have to parse Result text.
type Match struct {
	ID           string
	HomeTeamID   string
	AwayTeamID   string
	HomeTeam     string
	AwayTeam     string
	HomeScore    Score
	AwayScore    Score
	Status       string
	Result       string
	WinnerTeamID string
	CompletedAt  *time.Time
}

func (m Match) Live() bool {
	return m.Status == StatusLive
}

func (m Match) Finished() bool {
	return m.Status == StatusCompleted
}

func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// WithBall applies one scoring event to the given side. The match must be
// live; runs must be non-negative (callers validate that before reaching the
// domain).
func (m Match) WithBall(side Side, runs int, wicket bool) (Match, error) {
	if m.Finished() {
		return Match{}, ErrCompleted
	}
	if !m.Live() {
		return Match{}, ErrNotLive
	}

	next := m
	switch side {
	case SideHome:
		next.HomeScore = m.HomeScore.withBall(runs, wicket)
	case SideAway:
		next.AwayScore = m.AwayScore.withBall(runs, wicket)
	default:
		return Match{}, fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}

	return next, nil
}

// Started transitions an upcoming match to live.
func (m Match) Started() (Match, error) {
	if m.Finished() {
		return Match{}, ErrCompleted
	}
	if m.Status != StatusUpcoming {
		return Match{}, ErrNotUpcoming
	}

	next := m
	next.Status = StatusLive
	return next, nil
}

// Completed finishes a live match exactly once. Completed is terminal: the
// match never transitions again.
func (m Match) Completed(winnerTeamID, result string, at time.Time) (Match, error) {
	if m.Finished() {
		return Match{}, ErrCompleted
	}
	if !m.Live() {
		return Match{}, ErrNotLive
	}
	if !m.Involves(winnerTeamID) {
		return Match{}, fmt.Errorf("%w: team=%s", ErrWinnerNotPlaying, winnerTeamID)
	}

	next := m
	next.Status = StatusCompleted
	next.WinnerTeamID = winnerTeamID
	next.Result = strings.TrimSpace(result)
	completedAt := at.UTC()
	next.CompletedAt = &completedAt
	return next, nil
}
