package dataset

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("1,2\n3,6\n"))
	}))
	defer srv.Close()

	prev := Client
	Client = http.DefaultClient
	defer func() { Client = prev }()

	pts, err := HTTPSource{URL: srv.URL}.Load()
	if err != nil {
		t.Fatal(err)
	}
	pointsEq(t, Points{{1, 2}, {3, 6}}, pts)
}

func TestHTTPSource_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	prev := Client
	Client = http.DefaultClient
	defer func() { Client = prev }()

	if _, err := (HTTPSource{URL: srv.URL}).Load(); err == nil {
		t.Errorf("expected error on 404")
	}
}
