package models

import (
	"time"
)

type Store struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Region   Region    `json:"region"`
	Province Province  `json:"province"`
	City     City      `json:"city"`
	Address  string    `json:"address"`
	OpenDate time.Time `json:"openDate"`
}

// StoreIndex maps a store id to its record.
type StoreIndex map[string]*Store

func IndexStores(stores []Store) StoreIndex {
	idx := make(StoreIndex, len(stores))
	for i := range stores {
		idx[stores[i].ID] = &stores[i]
	}
	return idx
}
