package db

type Digester interface {
	Digest() (id string, data []byte, err error)
}

type Scorer interface {
	Digester

	// Score ranks the entry among its peers, higher is better.
	Score() float64
}
