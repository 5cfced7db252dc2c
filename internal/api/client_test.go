package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListUsers_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Errorf("Expected path /users, got %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.Write([]byte(`{
			"status": "success",
			"users": [
				{"id": 1, "name": "Alice", "status": {"status": "entry", "last_timestamp": "2024-01-15 09:00:12"}},
				{"id": 2, "name": "Bob", "status": {"status": "unknown", "last_timestamp": null}}
			]
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	if users[0].ID != 1 || users[0].Name != "Alice" {
		t.Errorf("Expected user 1 Alice first, got %d %s", users[0].ID, users[0].Name)
	}
	if users[0].Status.Status != "entry" {
		t.Errorf("Expected status entry, got %s", users[0].Status.Status)
	}
	if users[0].Status.LastUpdate() != "2024-01-15 09:00:12" {
		t.Errorf("Expected timestamp, got %s", users[0].Status.LastUpdate())
	}
	if users[1].Status.LastUpdate() != NoTimestamp {
		t.Errorf("Expected %s for null timestamp, got %s", NoTimestamp, users[1].Status.LastUpdate())
	}
}

func TestListUsers_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "users": []}`))
	}))
	defer srv.Close()

	users, err := New(srv.URL).ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("Expected no users, got %d", len(users))
	}
}

func TestListUsers_FailureEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "database unavailable"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListUsers(context.Background())
	if err == nil {
		t.Fatal("Expected an error for a non-success envelope")
	}
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("Expected *ServerError, got %T: %v", err, err)
	}
	if srvErr.Message != "database unavailable" {
		t.Errorf("Expected server message, got %q", srvErr.Message)
	}
}

func TestListUsers_MissingStatusIsFailure(t *testing.T) {
	// An envelope with no status field at all must not count as success.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users": [{"id": 1, "name": "Alice", "status": {"status": "entry"}}]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListUsers(context.Background())
	if err == nil {
		t.Fatal("Expected an error when status is absent")
	}
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("Expected *ServerError, got %T", err)
	}
	if srvErr.Message != genericFailure {
		t.Errorf("Expected fallback message %q, got %q", genericFailure, srvErr.Message)
	}
}

func TestListUsers_HTTPStatusCodeIgnored(t *testing.T) {
	// The backend signals failure through the envelope only; a 500 with a
	// success envelope is still a success.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status": "success", "users": [{"id": 7, "name": "Carol", "status": {"status": "exit"}}]}`))
	}))
	defer srv.Close()

	users, err := New(srv.URL).ListUsers(context.Background())
	if err != nil {
		t.Fatalf("Expected success despite HTTP 500, got %v", err)
	}
	if len(users) != 1 || users[0].Name != "Carol" {
		t.Errorf("Expected single user Carol, got %v", users)
	}
}

func TestListUsers_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connect to a dead server

	_, err := New(srv.URL).ListUsers(context.Background())
	if err == nil {
		t.Fatal("Expected a transport error")
	}
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		t.Errorf("Transport errors must not be *ServerError, got %v", err)
	}
}

func TestRegister_Success(t *testing.T) {
	var got registerRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/register" {
			t.Errorf("Expected path /register, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Write([]byte(`{"status": "success", "message": "Employee registered successfully"}`))
	}))
	defer srv.Close()

	if err := New(srv.URL).Register(context.Background(), "Alice Smith", "42"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got.Name != "Alice Smith" || got.EmployeeID != "42" {
		t.Errorf("Unexpected payload: %+v", got)
	}
}

func TestRegister_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "employee ID already exists"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Register(context.Background(), "Alice", "42")
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("Expected *ServerError, got %T: %v", err, err)
	}
	if srvErr.Message != "employee ID already exists" {
		t.Errorf("Expected server message, got %q", srvErr.Message)
	}
}

func TestDeleteAllUsers(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.URL.Path != "/users/delete-all" {
			t.Errorf("Expected path /users/delete-all, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		w.Write([]byte(`{"status": "success", "message": "All users deleted"}`))
	}))
	defer srv.Close()

	if err := New(srv.URL).DeleteAllUsers(context.Background()); err != nil {
		t.Fatalf("DeleteAllUsers failed: %v", err)
	}
	if !called {
		t.Error("Expected the delete endpoint to be called")
	}
}

func TestEmployeeStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/status/42" {
			t.Errorf("Expected path /status/42, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"status": "success", "data": {"status": "exit", "last_timestamp": null}}`))
	}))
	defer srv.Close()

	rec, err := New(srv.URL).EmployeeStatus(context.Background(), "42")
	if err != nil {
		t.Fatalf("EmployeeStatus failed: %v", err)
	}
	if rec.Status != "exit" {
		t.Errorf("Expected status exit, got %s", rec.Status)
	}
	if rec.LastUpdate() != NoTimestamp {
		t.Errorf("Expected %s, got %s", NoTimestamp, rec.LastUpdate())
	}
}

func TestEmployeeStatus_UnknownEmployee(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "no such employee"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).EmployeeStatus(context.Background(), "999")
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("Expected *ServerError, got %T: %v", err, err)
	}
	if srvErr.Message != "no such employee" {
		t.Errorf("Expected server message, got %q", srvErr.Message)
	}
}

func TestDailyReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reports/daily/42" {
			t.Errorf("Expected path /reports/daily/42, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2024-01-15" {
			t.Errorf("Expected date query 2024-01-15, got %s", got)
		}
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"date": "2024-01-15",
				"formatted_time": "7h 30m",
				"total_hours": 7.5,
				"total_minutes": 450,
				"details": [
					{"entry": "09:00:12", "exit": "12:15:03", "duration": "3:14:51"},
					{"entry": "13:00:44", "exit": "17:16:00", "duration": "4:15:16"}
				]
			}
		}`))
	}))
	defer srv.Close()

	report, err := New(srv.URL).DailyReport(context.Background(), "42", "2024-01-15")
	if err != nil {
		t.Fatalf("DailyReport failed: %v", err)
	}
	if report.Date != "2024-01-15" {
		t.Errorf("Expected date 2024-01-15, got %s", report.Date)
	}
	if report.TotalHours != 7.5 {
		t.Errorf("Expected 7.5 total hours, got %v", report.TotalHours)
	}
	if len(report.Details) != 2 {
		t.Fatalf("Expected 2 time blocks, got %d", len(report.Details))
	}
	if report.Details[0].Entry != "09:00:12" || report.Details[1].Duration != "4:15:16" {
		t.Errorf("Time blocks out of order or malformed: %+v", report.Details)
	}
}

func TestWeeklyReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reports/weekly/42" {
			t.Errorf("Expected path /reports/weekly/42, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("start_date") != "2024-01-08" || q.Get("end_date") != "2024-01-14" {
			t.Errorf("Unexpected date range query: %v", q)
		}
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"total_time": "38h 12m",
				"daily_breakdown": [
					{"date": "2024-01-08", "formatted_time": "8h 02m"},
					{"date": "2024-01-09", "formatted_time": "7h 55m"}
				]
			}
		}`))
	}))
	defer srv.Close()

	report, err := New(srv.URL).WeeklyReport(context.Background(), "42", "2024-01-08", "2024-01-14")
	if err != nil {
		t.Fatalf("WeeklyReport failed: %v", err)
	}
	if report.TotalTime != "38h 12m" {
		t.Errorf("Expected total time 38h 12m, got %s", report.TotalTime)
	}
	if len(report.DailyBreakdown) != 2 || report.DailyBreakdown[0].Date != "2024-01-08" {
		t.Errorf("Unexpected breakdown: %+v", report.DailyBreakdown)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client := New("http://localhost:5010/")
	if client.BaseURL() != "http://localhost:5010" {
		t.Errorf("Expected trailing slash trimmed, got %s", client.BaseURL())
	}
	if client.FeedURL() != "http://localhost:5010/video_feed" {
		t.Errorf("Unexpected feed URL: %s", client.FeedURL())
	}
}

func TestDecodeEnvelope_MalformedJSON(t *testing.T) {
	_, err := decodeEnvelope([]byte(`{not json`))
	if err == nil {
		t.Fatal("Expected a decode error")
	}
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		t.Errorf("Decode errors must not be *ServerError, got %v", err)
	}
}
