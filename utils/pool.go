package utils

import "github.com/panjf2000/ants/v2"

const size = 10000

// Pool .
var Pool *ants.Pool

func init() { //nolint
	var err error
	if Pool, err = ants.NewPool(size, ants.WithNonblocking(true)); err != nil {
		panic(err)
	}
}
