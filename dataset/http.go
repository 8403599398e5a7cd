package dataset

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
)

// Client serves HTTPSource fetches. init in cache.go wraps it with the
// disk cache when one is available.
var Client = http.DefaultClient

// HTTPSource fetches a body over HTTP and tokenizes it like a file.
type HTTPSource struct {
	URL string
}

func (s HTTPSource) String() string {
	return s.URL
}

func (s HTTPSource) Load() (Points, error) {
	if Debug {
		log.Printf("GET %s", s.URL)
	}
	resp, err := Client.Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("couldn't retrieve http data: %w", err)
	}
	defer resp.Body.Close()
	if Debug {
		buf, err := httputil.DumpResponse(resp, false)
		if err == nil {
			log.Println(string(buf))
		}
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%s: %s", s.URL, resp.Status)
	}
	return ParseReader(resp.Body)
}
