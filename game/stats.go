package game

import (
	"sort"
	"time"
)

// GameRecord is one finished run.
type GameRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int
}

// Duration returns the run length in seconds.
func (r GameRecord) Duration() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds()
}

// SessionStats keeps the runs of the current process in memory.
type SessionStats struct {
	Games []GameRecord
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		Games: make([]GameRecord, 0),
	}
}

// AddGame appends a finished run.
func (s *SessionStats) AddGame(score int, startTime, endTime time.Time) {
	s.Games = append(s.Games, GameRecord{
		StartTime: startTime,
		EndTime:   endTime,
		Score:     score,
	})
}

func (s *SessionStats) GetGamesPlayed() int {
	return len(s.Games)
}

// GetMaxScore returns the best score of the session, 0 before the first game over.
func (s *SessionStats) GetMaxScore() int {
	maxScore := 0
	for _, game := range s.Games {
		if game.Score > maxScore {
			maxScore = game.Score
		}
	}
	return maxScore
}

func (s *SessionStats) GetAverageScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}

	total := 0
	for _, game := range s.Games {
		total += game.Score
	}
	return float64(total) / float64(len(s.Games))
}

// GetMedianScore returns the median score of the finished runs.
func (s *SessionStats) GetMedianScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}

	scores := make([]int, len(s.Games))
	for i, game := range s.Games {
		scores[i] = game.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetAverageDuration returns the mean run length in seconds.
func (s *SessionStats) GetAverageDuration() float64 {
	if len(s.Games) == 0 {
		return 0
	}

	var total float64
	for _, game := range s.Games {
		total += game.Duration()
	}
	return total / float64(len(s.Games))
}
