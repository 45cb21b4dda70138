// Command smoketest drives a running resumegraph server through upload, search and clear.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := os.Getenv("RESUMEGRAPH_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	client := &http.Client{Timeout: 2 * time.Minute}

	fmt.Println("Starting smoke test...")

	fmt.Println("1. Health check...")
	if !expectOK(client, mustRequest(http.MethodGet, baseURL+"/healthz", nil, "")) {
		fail("health check")
	}

	fmt.Println("2. Uploading resumes...")
	body, contentType := resumeUpload(map[string]string{
		"alice.txt": "Alice Smith\nSoftware engineer. Skills: Python, SQL, Kubernetes.\nBSc Computer Science.",
		"bob.txt":   "Bob Jones\nData analyst. Skills: Python, Excel.\nCertified Tableau Specialist.",
	})
	if !expectOK(client, mustRequest(http.MethodPost, baseURL+"/resumes", body, contentType)) {
		fail("upload resumes")
	}
	fmt.Println("PASSED: upload resumes")

	fmt.Println("3. Searching for python...")
	search, _ := json.Marshal(map[string]interface{}{"skills": []string{"python"}, "summarize": false})
	if !expectOK(client, mustRequest(http.MethodPost, baseURL+"/search", bytes.NewReader(search), "application/json")) {
		fail("search")
	}
	fmt.Println("PASSED: search")

	fmt.Println("4. Stats...")
	if !expectOK(client, mustRequest(http.MethodGet, baseURL+"/stats", nil, "")) {
		fail("stats")
	}

	if os.Getenv("SMOKETEST_CLEAR") != "" {
		fmt.Println("5. Clearing graph...")
		if !expectOK(client, mustRequest(http.MethodDelete, baseURL+"/graph", nil, "")) {
			fail("clear")
		}
	}
	fmt.Println("Smoke test passed")
}

func resumeUpload(files map[string]string) (io.Reader, string) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for name, text := range files {
		part, err := mw.CreateFormFile("files", name)
		if err != nil {
			fail(err.Error())
		}
		_, _ = part.Write([]byte(text))
	}
	_ = mw.Close()
	return buf, mw.FormDataContentType()
}

func mustRequest(method, url string, body io.Reader, contentType string) *http.Request {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		fail(err.Error())
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func expectOK(client *http.Client, req *http.Request) bool {
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}
	fmt.Printf("Response: %s\n", string(respBody))
	return true
}

func fail(step string) {
	fmt.Printf("FAILED: %s\n", step)
	os.Exit(1)
}
