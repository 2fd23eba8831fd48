package articles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nfl-stats-dashboard/internal/providers"
)

func TestListSendsFiltersAndDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/articles" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("published_only") != "true" || q.Get("limit") != "2" || q.Get("offset") != "4" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(listEnvelope{
			Total: 9,
			Data: []Article{
				{ID: "a1", Title: "Week 5 Recap"},
				{ID: "a2", Title: "Injury Report"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "", nil)
	items, total, err := client.List(context.Background(), ListOptions{PublishedOnly: true, Limit: 2, Offset: 4})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 9 || len(items) != 2 {
		t.Fatalf("unexpected envelope: total=%d items=%d", total, len(items))
	}
	if items[0].Title != "Week 5 Recap" {
		t.Fatalf("unexpected first article: %+v", items[0])
	}
}

func TestGetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", nil).Get(context.Background(), "missing")
	if !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateSendsBodyAndBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/articles" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected content type: %q", got)
		}
		var body Article
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Title != "Draft Notes" || !body.Published {
			t.Fatalf("unexpected body: %+v", body)
		}
		body.ID = "a7"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(itemEnvelope{Data: body})
	}))
	defer srv.Close()

	created, err := NewClient(srv.URL, "secret", nil).Create(context.Background(), Article{
		Title:     "Draft Notes",
		Content:   "...",
		Published: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "a7" {
		t.Fatalf("expected the server-assigned ID, got %q", created.ID)
	}
}

func TestUpdateUsesPutWithEscapedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/articles/a 1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(itemEnvelope{Data: Article{ID: "a 1", Title: "Updated"}})
	}))
	defer srv.Close()

	updated, err := NewClient(srv.URL, "", nil).Update(context.Background(), "a 1", Article{Title: "Updated"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Updated" {
		t.Fatalf("unexpected article: %+v", updated)
	}
}

func TestDelete(t *testing.T) {
	var deleted bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/articles/a1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		deleted = true
		json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
	}))
	defer srv.Close()

	if err := NewClient(srv.URL, "", nil).Delete(context.Background(), "a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatalf("delete never reached the server")
	}
}

func TestServerErrorIncludesBodySnippet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL, "", nil).List(context.Background(), ListOptions{})
	if err == nil {
		t.Fatalf("expected an error on 500")
	}
	if got := err.Error(); !strings.Contains(got, "500") || !strings.Contains(got, "database unavailable") {
		t.Fatalf("error should carry status and body snippet: %v", err)
	}
}
