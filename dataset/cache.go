package dataset

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

var cacher *diskcache.Cache

func init() {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		log.Printf("dataset: cache disabled: os.UserCacheDir: %s", err)
		return
	}
	cacheDir = filepath.Join(cacheDir, "regression")
	err = os.MkdirAll(cacheDir, 0755)
	if err != nil {
		log.Printf("dataset: cache disabled: %s", err)
		return
	}
	cacher = diskcache.New(cacheDir)
	Client = CacheClient(time.Hour * 24)
}

// CacheClient returns an http client backed by the disk cache, serving
// hits younger than maxAge without revalidation. Zero maxAge disables
// caching.
func CacheClient(maxAge time.Duration) *http.Client {
	if cacher == nil || maxAge == 0 {
		return http.DefaultClient
	}
	return &http.Client{
		Transport: Transport{
			t:      httpcache.NewTransport(cacher),
			maxAge: fmt.Sprintf("%.0f", maxAge.Seconds()),
		},
	}
}

type Transport struct {
	t      http.RoundTripper
	maxAge string
}

func (t Transport) RoundTrip(rq *http.Request) (*http.Response, error) {
	rq.Header.Set("Cache-Control", "max-age="+t.maxAge)
	return t.t.RoundTrip(rq)
}
