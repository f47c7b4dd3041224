package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// Scenario is one request shape sent to the API
type Scenario struct {
	Name    string
	Path    string
	Payload map[string]any
}

// Result contains metrics for a single request
type Result struct {
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
	LocaleStats        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

var scenarios = []Scenario{
	{"write seconds", "/v1/write", map[string]any{"value": "1.5", "from": "hour", "to": "minute"}},
	{"write verbose", "/v1/write", map[string]any{"value": "2", "from": "day", "settings": map[string]any{"verbose": true}}},
	{"write scientific", "/v1/write", map[string]any{"value": "1954", "from": "year", "to": "galacticYear", "settings": map[string]any{"numericNotation": "scientific"}}},
	{"write roman", "/v1/write", map[string]any{"value": "1954.25", "settings": map[string]any{"numericNotation": "roman-fractions"}}},
	{"countdown common", "/v1/countdown", map[string]any{"value": "1000", "from": "day"}},
	{"countdown units", "/v1/countdown", map[string]any{"value": "5400", "from": "second", "units": []string{"hour", "minute"}}},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	localesFlag := flag.String("l", "en-us,pt-br,de", "Comma-separated list of locales to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var locales []string
	for _, l := range strings.Split(*localesFlag, ",") {
		if l = strings.TrimSpace(l); l != "" {
			locales = append(locales, l)
		}
	}
	if len(locales) == 0 {
		locales = []string{"en-us"}
	}

	fmt.Printf("Load testing API across %d locales: %v\n", len(locales), locales)
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &Stats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		LocaleStats:   make(map[string]int),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan Result, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, locales, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-done
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func worker(baseURL string, delayMs int, locales []string, jobs <-chan int, results chan<- Result, stats *Stats) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		loc := locales[rand.Intn(len(locales))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.LocaleStats[loc]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		payload := make(map[string]any, len(scenario.Payload)+1)
		for k, v := range scenario.Payload {
			payload[k] = v
		}
		payload["locale"] = loc

		jsonData, err := json.Marshal(payload)
		if err != nil {
			results <- Result{Scenario: scenario.Name, Error: err}
			continue
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+scenario.Path, bytes.NewBuffer(jsonData))
		if err != nil {
			results <- Result{Scenario: scenario.Name, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		startTime := time.Now()
		resp, err := client.Do(req)
		result := Result{Scenario: scenario.Name, ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("%s: HTTP status code %d", scenario.Path, resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printDistribution(title string, counts map[string]int) {
	fmt.Printf("\n----------------- %s -----------------\n", title)
	total := 0
	keys := make([]string, 0, len(counts))
	for k, count := range counts {
		total += count
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if counts[k] > 0 {
			fmt.Printf("%-20s: %d requests (%.1f%%)\n", k, counts[k], float64(counts[k])/float64(total)*100)
		}
	}
}

func printResults(stats *Stats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/second\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	printDistribution("LOCALE DISTRIBUTION", stats.LocaleStats)
	printDistribution("SCENARIO DISTRIBUTION", stats.ScenarioStats)

	if stats.FailedRequests > 0 {
		printDistribution("ERROR DISTRIBUTION", stats.ErrorCounts)
	}
	fmt.Println("================================================")
}
