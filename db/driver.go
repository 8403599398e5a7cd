package db

type Driver interface {
	// Save stores v under its digest id and returns the id.
	Save(v Digester) (id string, err error)

	// SaveScorer stores v, then ranks its id by score in the sorted set
	// at zkey.
	SaveScorer(v Scorer, zkey string) (id string, err error)

	LoadJSON(id string, v interface{}) error

	// Top returns the n best-scored ids at zkey, best first.
	Top(zkey string, n int) (ids []string, err error)

	// Rank returns the 1-based position of id within zkey, best first.
	Rank(zkey, id string) (int, error)
}
