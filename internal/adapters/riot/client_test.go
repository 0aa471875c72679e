package riot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/champion-vibes/backend/internal/core/domain"
)

func newTestServer(t *testing.T, detailStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/versions.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["15.12.1","15.11.1"]`))
	})
	mux.HandleFunc("/cdn/15.12.1/data/en_US/champion.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{
			"Jinx":{"id":"Jinx","name":"Jinx","title":"the Loose Cannon","tags":["Marksman"]},
			"Ahri":{"id":"Ahri","name":"Ahri","title":"the Nine-Tailed Fox","tags":["Mage","Assassin"]}
		}}`))
	})
	mux.HandleFunc("/cdn/15.12.1/data/en_US/champion/Jinx.json", func(w http.ResponseWriter, r *http.Request) {
		if detailStatus != http.StatusOK {
			w.WriteHeader(detailStatus)
			return
		}
		w.Write([]byte(`{"data":{"Jinx":{
			"id":"Jinx","key":"222","name":"Jinx","title":"the Loose Cannon",
			"tags":["Marksman"],"lore":"A manic criminal from Zaun.",
			"stats":{"attackdamage":59},
			"spells":[{},{},{},{}]
		}}}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return httptest.NewServer(mux)
}

func TestClient_GetCharacter(t *testing.T) {
	srv := newTestServer(t, http.StatusOK)
	defer srv.Close()

	c := NewClient(srv.URL)
	rec, err := c.GetCharacter(context.Background(), "jinx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Name != "Jinx" || rec.Key != "222" {
		t.Errorf("record = %+v", rec)
	}
	if rec.AttackDamage != 59 {
		t.Errorf("attack damage = %v, want 59", rec.AttackDamage)
	}
	if rec.SpellCount != 4 {
		t.Errorf("spell count = %d, want 4", rec.SpellCount)
	}
	if rec.ImageURL == "" || rec.SplashURL == "" {
		t.Errorf("expected image urls, got %+v", rec)
	}
}

func TestClient_GetCharacter_NotFound(t *testing.T) {
	srv := newTestServer(t, http.StatusOK)
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetCharacter(context.Background(), "nosuchchamp")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_ListCharacters(t *testing.T) {
	srv := newTestServer(t, http.StatusOK)
	defer srv.Close()

	c := NewClient(srv.URL)
	champions, err := c.ListCharacters(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(champions) != 2 {
		t.Fatalf("got %d champions, want 2", len(champions))
	}
	// Sorted by name.
	if champions[0].Name != "Ahri" || champions[1].Name != "Jinx" {
		t.Errorf("roster order = %v", champions)
	}
}

func TestClient_ListCharacters_FallbackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	champions, err := c.ListCharacters(context.Background())
	if err != nil {
		t.Fatalf("fallback path should not error, got %v", err)
	}
	if len(champions) == 0 {
		t.Fatal("expected the built-in fallback roster")
	}
}

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jinx", "Jinx"},
		{"JINX", "Jinx"},
		{"khazix", "Khazix"},
		{"missfortune", "MissFortune"},
		{"leesin", "LeeSin"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := canonicalID(tc.in); got != tc.want {
			t.Errorf("canonicalID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
