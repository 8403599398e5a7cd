package db

import (
	"encoding/json"

	"github.com/mediocregopher/radix.v2/pool"
)

type RedisDriver struct {
	Pool *pool.Pool
}

func (d *RedisDriver) LoadJSON(id string, v interface{}) error {
	resp := d.Pool.Cmd("GET", id)
	if resp.Err != nil {
		return resp.Err
	}
	b, err := resp.Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func (d *RedisDriver) Save(v Digester) (string, error) {
	id, data, err := v.Digest()
	if err != nil {
		return id, err
	}
	return id, d.Pool.Cmd("SET", id, data).Err
}

func (d *RedisDriver) SaveScorer(v Scorer, zkey string) (string, error) {
	id, err := d.Save(v)
	if err != nil {
		return id, err
	}
	return id, d.Pool.Cmd("ZADD", zkey, v.Score(), id).Err
}

func (d *RedisDriver) Top(zkey string, n int) ([]string, error) {
	resp := d.Pool.Cmd("ZREVRANGE", zkey, 0, n-1)
	if resp.Err != nil {
		return nil, resp.Err
	}
	elems, err := resp.Array()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(elems))
	for _, v := range elems {
		id, err := v.Str()
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (d *RedisDriver) Rank(zkey, id string) (int, error) {
	resp := d.Pool.Cmd("ZREVRANK", zkey, id)
	if resp.Err != nil {
		return -1, resp.Err
	}
	rank, err := resp.Int()
	if err != nil {
		return -1, err
	}
	return rank + 1, nil
}
