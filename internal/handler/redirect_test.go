package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bornBrian/ViralCart/internal/analytics"
	"github.com/bornBrian/ViralCart/internal/model"
	"github.com/bornBrian/ViralCart/internal/service"
)

type signalingClickStore struct {
	recorded chan string
}

func (s *signalingClickStore) AppendClick(_ context.Context, productID, country string) error {
	s.recorded <- productID + ":" + country
	return nil
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	store := &fakeProductStore{products: []*model.Product{
		{ID: "p1", Title: "Lamp", AffiliateURL: "https://example.com/lamp?tag=viralcart-20"},
	}}
	clicks := &signalingClickStore{recorded: make(chan string, 1)}
	svc := service.NewProductService(store, nil, "", nil)
	recorder := analytics.NewRecorder(clicks, discardLogger(), nil)
	h := NewRedirectHandler(svc, recorder, "CF-IPCountry", discardLogger())

	router := chi.NewRouter()
	router.Get("/go/{id}", h.Redirect)

	req := httptest.NewRequest(http.MethodGet, "/go/p1", nil)
	req.Header.Set("CF-IPCountry", "us")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != "https://example.com/lamp?tag=viralcart-20" {
		t.Errorf("Location = %q, want affiliate URL", got)
	}

	select {
	case click := <-clicks.recorded:
		if click != "p1:US" {
			t.Errorf("recorded click = %q, want p1:US", click)
		}
	case <-time.After(time.Second):
		t.Fatal("click was not recorded")
	}
}

func TestRedirectUnknownProduct(t *testing.T) {
	t.Parallel()

	svc := service.NewProductService(&fakeProductStore{}, nil, "", nil)
	recorder := analytics.NewRecorder(&signalingClickStore{recorded: make(chan string, 1)}, discardLogger(), nil)
	h := NewRedirectHandler(svc, recorder, "", discardLogger())

	router := chi.NewRouter()
	router.Get("/go/{id}", h.Redirect)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/go/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
