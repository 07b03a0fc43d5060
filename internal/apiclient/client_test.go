package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridironhq/startsit/internal/model"
)

func testInputs() model.FormInputs {
	return model.FormInputs{PlayerOrTeam: "Saquon", Week: "15", Year: "2025"}
}

func TestAnalyze_SendsContractBody(t *testing.T) {
	t.Parallel()

	var got model.AnalyzeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q, want application/json", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("unmarshal request: %v", err)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	if _, err := client.Analyze(context.Background(), testInputs()); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Year and week stay strings on the wire.
	if got.PlayerOrTeamInput != "Saquon" || got.Year != "2025" || got.Week != "15" {
		t.Errorf("request body = %+v, want string year/week echoed", got)
	}
}

func TestAnalyze_DecodesRecords(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"player_name":"Saquon Barkley","team":"PHI","position":"RB","reco_score":88.1,"reco_conclusion":"🔥 MUST START","input_year":2025,"input_week":15,"volume":22,"yards":110,"receptions":3,"td":1}]`))
	}))
	defer srv.Close()

	records, err := New(srv.URL).Analyze(context.Background(), testInputs())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.PlayerName != "Saquon Barkley" || rec.RecoScore != 88.1 || rec.Touchdowns != 1 {
		t.Errorf("record = %+v", rec)
	}
}

func TestAnalyze_ErrorBodyMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Analyze(context.Background(), testInputs())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if statusErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", statusErr.Status)
	}
	if statusErr.Message != "not found" {
		t.Errorf("message = %q, want %q", statusErr.Message, "not found")
	}
}

func TestAnalyze_UnparseableErrorBodyFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Analyze(context.Background(), testInputs())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if want := http.StatusText(http.StatusInternalServerError); statusErr.Message != want {
		t.Errorf("message = %q, want %q", statusErr.Message, want)
	}
}

func TestAnalyze_NonArraySuccessBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"player_name":"solo object, not an array"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Analyze(context.Background(), testInputs())
	if !errors.Is(err, ErrUnexpectedFormat) {
		t.Fatalf("err = %v, want ErrUnexpectedFormat", err)
	}
}

func TestAnalyze_EmptyArray(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	records, err := New(srv.URL).Analyze(context.Background(), testInputs())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
}

func TestAnalyze_ContextCancel(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(srv.URL).Analyze(ctx, testInputs()); err == nil {
		t.Fatal("Analyze with canceled context succeeded, want error")
	}
}
