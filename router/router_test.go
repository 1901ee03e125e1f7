// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quickly-tally API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestTallyRoutes(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	t.Run("json", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/tallies", models.CreateTallyRequest{
			Candidates: []string{"a", "b"},
			Ballots:    testutil.Repeat([]int{2, 1}, 3),
		}, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.TallyResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Winners) != 1 || resp.Winners[0] != "b" {
			t.Errorf("Expected winner [b], got %v", resp.Winners)
		}
	})

	t.Run("file", func(t *testing.T) {
		req := testutil.MakeTextRequest("POST", "/tallies/file", "2\na\nb\n1 2\n")
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
	})
}

func TestBodyLimitApplied(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.MaxBodyBytes = 16
	mux := NewRouter(cfg)

	req := testutil.MakeTextRequest("POST", "/tallies/file", "2\nalice\nbob\n1 2\n2 1\n1 2\n")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusRequestEntityTooLarge)
}

func TestHugeCandidateCountRejected(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	req := testutil.MakeTextRequest("POST", "/tallies/file", "10000000000000\na\n")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	// Test that unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},         // Only GET is defined
		{"PUT", "/tallies/file"},    // Only POST is defined
		{"DELETE", "/tallies/file"}, // Only POST is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}
