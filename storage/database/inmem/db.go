package inmemdb

import (
	"sync"

	"github.com/trezcool/eneo/core/location"
)

type (
	DB struct {
		location *locationTable
	}

	locationTable struct {
		mutex sync.RWMutex
		rows  []location.Row
	}
)

func Open() *DB {
	return &DB{
		location: &locationTable{},
	}
}
