package game

import (
	"testing"
	"time"
)

func TestSessionStatsEmpty(t *testing.T) {
	s := NewSessionStats()

	if s.GetGamesPlayed() != 0 || s.GetMaxScore() != 0 {
		t.Errorf("empty stats: %d games, best %d", s.GetGamesPlayed(), s.GetMaxScore())
	}
	if s.GetAverageScore() != 0 || s.GetMedianScore() != 0 || s.GetAverageDuration() != 0 {
		t.Error("empty stats should average to zero")
	}
}

func TestSessionStatsAggregates(t *testing.T) {
	s := NewSessionStats()
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	s.AddGame(3, start, start.Add(10*time.Second))
	s.AddGame(9, start, start.Add(30*time.Second))
	s.AddGame(0, start, start.Add(2*time.Second))
	s.AddGame(4, start, start.Add(6*time.Second))

	if got := s.GetGamesPlayed(); got != 4 {
		t.Errorf("GetGamesPlayed = %d, want 4", got)
	}
	if got := s.GetMaxScore(); got != 9 {
		t.Errorf("GetMaxScore = %d, want 9", got)
	}
	if got := s.GetAverageScore(); got != 4 {
		t.Errorf("GetAverageScore = %v, want 4", got)
	}
	if got := s.GetMedianScore(); got != 3.5 {
		t.Errorf("GetMedianScore = %v, want 3.5", got)
	}
	if got := s.GetAverageDuration(); got != 12 {
		t.Errorf("GetAverageDuration = %v, want 12", got)
	}
}

func TestSessionStatsOddMedian(t *testing.T) {
	s := NewSessionStats()
	now := time.Now()
	for _, score := range []int{5, 1, 8} {
		s.AddGame(score, now, now)
	}

	if got := s.GetMedianScore(); got != 5 {
		t.Errorf("GetMedianScore = %v, want 5", got)
	}
}
