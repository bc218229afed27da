package main

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// Result contains metrics for a single request
type Result struct {
	User         int
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// Stats contains aggregated test statistics
type Stats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	UserStats          map[int]int
	ScenarioStats      map[string]int
}

// NewStats creates empty statistics
func NewStats() *Stats {
	return &Stats{
		ErrorCounts:   make(map[string]int),
		UserStats:     make(map[int]int),
		ScenarioStats: make(map[string]int),
	}
}

// Add records one result
func (s *Stats) Add(r Result) {
	s.TotalRequests++
	s.UserStats[r.User]++
	s.ScenarioStats[r.Scenario]++
	if r.ResponseTime > 0 {
		s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	}
	if r.Success {
		s.SuccessfulRequests++
		return
	}
	s.FailedRequests++
	if r.Error != nil {
		s.ErrorCounts[r.Error.Error()]++
	}
}

// Percentile returns the p-th percentile response time, p in [0, 100]
func (s *Stats) Percentile(p int) time.Duration {
	if len(s.ResponseTimes) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(s.ResponseTimes))
	copy(sorted, s.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Average returns the mean response time
func (s *Stats) Average() time.Duration {
	if len(s.ResponseTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.ResponseTimes {
		total += d
	}
	return total / time.Duration(len(s.ResponseTimes))
}

// TPS returns successful requests per second
func (s *Stats) TPS() float64 {
	if s.TotalTime <= 0 {
		return 0
	}
	return float64(s.SuccessfulRequests) / s.TotalTime.Seconds()
}

// Print writes the report
func (s *Stats) Print(w io.Writer, minTPS float64) {
	percent := func(n, total int) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) / float64(total) * 100
	}

	fmt.Fprintln(w, "\n================= TEST RESULTS =================")
	fmt.Fprintf(w, "Total Requests:      %d\n", s.TotalRequests)
	fmt.Fprintf(w, "Successful Requests: %d (%.1f%%)\n", s.SuccessfulRequests, percent(s.SuccessfulRequests, s.TotalRequests))
	fmt.Fprintf(w, "Failed Requests:     %d (%.1f%%)\n", s.FailedRequests, percent(s.FailedRequests, s.TotalRequests))
	fmt.Fprintf(w, "Total Test Time:     %.2f seconds\n", s.TotalTime.Seconds())
	fmt.Fprintf(w, "TPS:                 %.2f\n", s.TPS())

	fmt.Fprintln(w, "\n----------------- RESPONSE TIMES -----------------")
	fmt.Fprintf(w, "Average Response:    %v\n", s.Average())
	fmt.Fprintf(w, "P50 Response:        %v\n", s.Percentile(50))
	fmt.Fprintf(w, "P90 Response:        %v\n", s.Percentile(90))
	fmt.Fprintf(w, "P99 Response:        %v\n", s.Percentile(99))

	fmt.Fprintln(w, "\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range s.ScenarioStats {
		fmt.Fprintf(w, "%-15s: %d requests (%.1f%%)\n", scenario, count, percent(count, s.TotalRequests))
	}

	fmt.Fprintln(w, "\n----------------- USER DISTRIBUTION -----------------")
	for user, count := range s.UserStats {
		fmt.Fprintf(w, "User %d:    %d requests (%.1f%%)\n", user, count, percent(count, s.TotalRequests))
	}

	if s.FailedRequests > 0 {
		fmt.Fprintln(w, "\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range s.ErrorCounts {
			fmt.Fprintf(w, "%-40s: %d (%.1f%%)\n", msg, count, percent(count, s.TotalRequests))
		}
	}

	fmt.Fprintln(w, "\n================= CONCLUSION =================")
	if s.TPS() >= minTPS {
		fmt.Fprintf(w, "Reached %.2f TPS (target %.0f)\n", s.TPS(), minTPS)
	} else {
		fmt.Fprintf(w, "Below target: %.2f TPS (target %.0f)\n", s.TPS(), minTPS)
	}
}
