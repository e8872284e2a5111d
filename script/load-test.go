package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// InitiateRequest is the payload for starting a redemption
type InitiateRequest struct {
	VendorID             string `json:"vendorId"`
	BeneficiaryLookupKey string `json:"beneficiaryLookupKey"`
	Amount               string `json:"amount"`
	CategoryID           string `json:"categoryId"`
	Notes                string `json:"notes"`
}

// InitiateResponse is the API answer after the OTP challenge is issued
type InitiateResponse struct {
	PendingTransactionID string `json:"pendingTransactionId"`
	OtpDelivered         bool   `json:"otpDelivered"`
}

// result captures one request's outcome
type result struct {
	success    bool
	statusCode int
	latency    time.Duration
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	vendorID := flag.String("vendor", "", "vendor id to initiate as")
	categoryID := flag.String("category", "", "category id for the purchases")
	beneficiary := flag.String("beneficiary", "+15550001111", "beneficiary lookup key")
	requests := flag.Int("n", 200, "total requests")
	concurrency := flag.Int("c", 10, "concurrent workers")
	flag.Parse()

	if *vendorID == "" || *categoryID == "" {
		fmt.Println("both -vendor and -category are required")
		return
	}

	jobs := make(chan int)
	results := make(chan result, *requests)
	client := &http.Client{Timeout: 30 * time.Second}

	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				results <- initiateOnce(client, *baseURL, *vendorID, *categoryID, *beneficiary)
			}
		}()
	}

	start := time.Now()
	for i := 0; i < *requests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(results)
	elapsed := time.Since(start)

	report(results, *requests, elapsed)
}

func initiateOnce(client *http.Client, baseURL, vendorID, categoryID, beneficiary string) result {
	amount := fmt.Sprintf("%d.%02d", 1+rand.Intn(50), rand.Intn(100))
	payload, _ := json.Marshal(InitiateRequest{
		VendorID:             vendorID,
		BeneficiaryLookupKey: beneficiary,
		Amount:               amount,
		CategoryID:           categoryID,
		Notes:                "load test",
	})

	start := time.Now()
	resp, err := client.Post(baseURL+"/settlements/initiate", "application/json", bytes.NewReader(payload))
	latency := time.Since(start)
	if err != nil {
		return result{latency: latency}
	}
	defer func() { _ = resp.Body.Close() }()

	var body InitiateResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return result{
		success:    resp.StatusCode == http.StatusAccepted && body.PendingTransactionID != "",
		statusCode: resp.StatusCode,
		latency:    latency,
	}
}

func report(results chan result, total int, elapsed time.Duration) {
	var succeeded int
	statusCounts := make(map[int]int)
	latencies := make([]time.Duration, 0, total)

	for r := range results {
		if r.success {
			succeeded++
		}
		statusCounts[r.statusCode]++
		latencies = append(latencies, r.latency)
	}

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	percentile := func(p float64) time.Duration {
		if len(latencies) == 0 {
			return 0
		}
		idx := int(float64(len(latencies)-1) * p)
		return latencies[idx]
	}

	fmt.Printf("requests:  %d in %s (%.1f req/s)\n", total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
	fmt.Printf("succeeded: %d, failed: %d\n", succeeded, total-succeeded)
	fmt.Printf("latency:   p50=%s p95=%s p99=%s max=%s\n",
		percentile(0.50), percentile(0.95), percentile(0.99), percentile(1.0))
	fmt.Println("status codes:")
	for code, count := range statusCounts {
		fmt.Printf("  %d: %d\n", code, count)
	}
}
