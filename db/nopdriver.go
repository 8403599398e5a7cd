package db

import "fmt"

// NopDriver stands in when no store is configured, saves succeed
// without persisting and loads fail.
type NopDriver struct{}

func (NopDriver) Save(v Digester) (string, error) {
	id, _, err := v.Digest()
	return id, err
}

func (n NopDriver) SaveScorer(v Scorer, zkey string) (string, error) {
	return n.Save(v)
}

func (NopDriver) LoadJSON(id string, v interface{}) error {
	return fmt.Errorf("LoadJSON unimplemented on NopDriver")
}

func (NopDriver) Top(zkey string, n int) ([]string, error) {
	return nil, fmt.Errorf("Top unimplemented on NopDriver")
}

func (NopDriver) Rank(zkey, id string) (int, error) {
	return -1, fmt.Errorf("Rank unimplemented on NopDriver")
}
