package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmarket/ecode"
)

func TestSuccess_WithData(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]any{"id": 1})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["id"] != float64(1) {
		t.Fatalf("expected id=1, got %v", body["id"])
	}
}

func TestSuccess_MessageOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, "done")

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "done" {
		t.Fatalf("expected message 'done', got %v", body["message"])
	}
}

func TestWithStatusCode_Created(t *testing.T) {
	rec := httptest.NewRecorder()
	WithStatusCode(rec, http.StatusCreated, map[string]any{"id": 7})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestFail_Conflict(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, Conflict("car already exists"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var body Exception
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Code != ecode.Conflict {
		t.Fatalf("expected code %d, got %d", ecode.Conflict, body.Code)
	}
	if body.Message != "car already exists" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestFail_NilDefaultsToServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestFail_DefaultMessageFromCode(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, &Exception{Status: http.StatusNotFound, Code: ecode.NotFound})

	var body Exception
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != ecode.Text(ecode.NotFound) {
		t.Fatalf("expected default message, got %q", body.Message)
	}
}
