package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed clashdata
var clashdata embed.FS

// Tag and token the fake server answers for. Anything else gets the same
// error responses the real API gives.
const (
	FakeClanTag    = "#2PPCWL"
	FakeClashToken = "test-token"
)

type FakeClashServer struct {
	s *httptest.Server
}

func NewFakeClashServer() *FakeClashServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/clans/{clanTag}/members", clanMembersHandler)
	})

	return &FakeClashServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeClashServer) Close() {
	f.s.Close()
}

func (f *FakeClashServer) URL() string {
	return f.s.URL
}

func clanMembersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != fmt.Sprintf("Bearer %s", FakeClashToken) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"reason":"accessDenied"}`))
		return
	}

	if chi.URLParam(r, "clanTag") != FakeClanTag {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"reason":"notFound"}`))
		return
	}

	serveFile(w, "members.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := clashdata.ReadFile(fmt.Sprintf("clashdata/%s", name))
	if err != nil {
		log.Printf("error reading clashdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
