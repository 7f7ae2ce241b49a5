package server

import (
	"cmp"
	"slices"
)

// ScoreEntry is one row of the live scoreboard.
type ScoreEntry struct {
	Username string
	Score    int
	clientID int // Used for deterministic tie-break when scores are equal
}

// Snapshot is an immutable view of the hub for rendering.
type Snapshot struct {
	Players   int
	TopScores []ScoreEntry // Highest current scores of connected players
}

// topScores fills dst with the n best current scores, highest first.
// Ties go to the player who connected first.
func topScores(dst []ScoreEntry, clients map[int]*ClientHandle, n int) []ScoreEntry {
	dst = dst[:0]
	for _, h := range clients {
		dst = append(dst, ScoreEntry{Username: h.Username, Score: h.Score, clientID: h.ID})
	}
	slices.SortFunc(dst, func(a, b ScoreEntry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.clientID, b.clientID)
	})
	if len(dst) > n {
		dst = dst[:n]
	}
	return dst
}
