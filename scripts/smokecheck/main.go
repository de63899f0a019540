// Command smokecheck probes a running instance of the student records API and
// reports per-endpoint status and latency. It exits non-zero when any critical
// endpoint fails, so it can gate deployments.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type target struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Status   int    `json:"status"`
	Critical bool   `json:"critical"`
}

type targetsFile struct {
	Targets []target `json:"targets"`
}

type result struct {
	Target   target
	Status   int
	Duration time.Duration
	JSONBody bool
	Err      error
}

func defaultTargets() []target {
	return []target{
		{Method: http.MethodGet, Path: "/health", Status: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/ready", Status: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/api/students", Status: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/api/courses", Status: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/api/enrollments", Status: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/api/grades", Status: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/api/departments", Status: http.StatusOK, Critical: false},
		{Method: http.MethodGet, Path: "/api/programs", Status: http.StatusOK, Critical: false},
		{Method: http.MethodGet, Path: "/api/instructors", Status: http.StatusOK, Critical: false},
		{Method: http.MethodGet, Path: "/api/dashboard", Status: http.StatusOK, Critical: false},
		{Method: http.MethodGet, Path: "/api/exports/students?format=csv", Status: http.StatusOK, Critical: false},
	}
}

func main() {
	var (
		base        string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&targetsPath, "targets", "", "optional JSON targets file overriding the built-in set")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets := defaultTargets()
	if targetsPath != "" {
		loaded, err := loadTargets(targetsPath)
		if err != nil {
			log.Fatalf("failed to load targets: %v", err)
		}
		targets = loaded
	}

	client := &http.Client{Timeout: timeout}
	var results []result
	failed := 0

	for _, t := range targets {
		res := probe(client, base, t)
		if !passed(res) && t.Critical {
			failed++
		}
		results = append(results, res)
	}

	printReport(results)
	fmt.Printf("Critical failures: %d\n", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return file.Targets, nil
}

func probe(client *http.Client, base string, tgt target) result {
	res := result{Target: tgt}

	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := strings.TrimRight(base, "/") + path

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Err = fmt.Errorf("read body: %w", err)
		return res
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var v interface{}
		res.JSONBody = json.Unmarshal(body, &v) == nil
	}
	return res
}

func passed(res result) bool {
	if res.Err != nil {
		return false
	}
	want := res.Target.Status
	if want == 0 {
		want = http.StatusOK
	}
	return res.Status == want
}

func printReport(results []result) {
	fmt.Println("Smoke Check Report")
	fmt.Println("==================")
	for _, res := range results {
		status := "OK"
		if !passed(res) {
			status = "FAIL"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		if res.Err != nil {
			fmt.Printf("  Error: %v\n", res.Err)
			continue
		}
		fmt.Printf("  Status: %d (%s) | JSON: %t | Critical: %t\n", res.Status, res.Duration, res.JSONBody, res.Target.Critical)
	}
}
