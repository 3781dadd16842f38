package components

import (
	"sort"

	cfg "github.com/automoto/shapegame/config"
	"github.com/yohamta/donburi"
)

// PlayerScore is one player's running total
type PlayerScore struct {
	PlayerID int
	Points   int
}

// MatchData stores the game mode and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Mode   cfg.GameMode
	Scores map[int]int
}

var Match = donburi.NewComponentType[MatchData]()

// Add credits points to a player, creating the entry if needed
func (m *MatchData) Add(playerID, points int) {
	if m.Scores == nil {
		m.Scores = make(map[int]int)
	}
	m.Scores[playerID] += points
}

// Clear drops every score
func (m *MatchData) Clear() {
	m.Scores = make(map[int]int)
}

// Sorted returns the scores ordered by player id
func (m *MatchData) Sorted() []PlayerScore {
	out := make([]PlayerScore, 0, len(m.Scores))
	for id, pts := range m.Scores {
		out = append(out, PlayerScore{PlayerID: id, Points: pts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// GetLeader returns the player id with the most points (-1 for tie, -2 for no scores)
func (m *MatchData) GetLeader() int {
	if len(m.Scores) == 0 {
		return -2
	}
	leader, best, tied := -2, 0, false
	for _, s := range m.Sorted() {
		switch {
		case leader == -2 || s.Points > best:
			leader, best, tied = s.PlayerID, s.Points, false
		case s.Points == best:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return leader
}
