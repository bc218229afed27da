package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// Scenario is one kind of request sent by the workers
type Scenario struct {
	Name   string
	Method string
	Path   string
	Body   string
}

// scenarios are read-heavy on purpose: every balance read reconciles the caller
var scenarios = []Scenario{
	{Name: "balance", Method: http.MethodGet, Path: "/api/balance"},
	{Name: "balance", Method: http.MethodGet, Path: "/api/balance"},
	{Name: "challenges", Method: http.MethodGet, Path: "/api/challenges"},
	{Name: "transactions", Method: http.MethodGet, Path: "/api/transactions"},
	{Name: "invoice", Method: http.MethodPost, Path: "/api/invoice", Body: `{"sats":1000}`},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	tokensStr := flag.String("t", "", "Comma-separated access tokens to distribute load across")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	minTPS := flag.Float64("tps", 30, "Throughput the run is expected to reach")
	flag.Parse()

	tokens := splitTokens(*tokensStr)
	if len(tokens) == 0 {
		fmt.Fprintln(os.Stderr, "at least one access token is required (-t)")
		os.Exit(2)
	}

	fmt.Printf("Load test: %d requests, %d workers, %d users, %dms delay against %s\n",
		*totalRequests, *concurrency, len(tokens), *delayMs, *baseURL)

	stats := NewStats()
	jobs := make(chan int, *totalRequests)
	results := make(chan Result, *totalRequests)

	var wg sync.WaitGroup
	startTime := time.Now()
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(strings.TrimRight(*baseURL, "/"), *delayMs, tokens, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Add(result)
	}
	stats.TotalTime = time.Since(startTime)

	stats.Print(os.Stdout, *minTPS)
}

func worker(baseURL string, delayMs int, tokens []string, jobs <-chan int, results chan<- Result) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		user := rand.Intn(len(tokens))
		scenario := scenarios[rand.Intn(len(scenarios))]
		result := Result{User: user, Scenario: scenario.Name}

		var body *bytes.Reader
		if scenario.Body != "" {
			body = bytes.NewReader([]byte(scenario.Body))
		} else {
			body = bytes.NewReader(nil)
		}
		req, err := http.NewRequest(scenario.Method, baseURL+scenario.Path, body)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+tokens[user])

		start := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(start)

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func splitTokens(s string) []string {
	var tokens []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
