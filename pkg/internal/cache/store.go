package cache

import (
	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/store"
	ristrettoStore "github.com/eko/gocache/store/ristretto/v4"
)

var (
	S store.StoreInterface
	// R is the client behind S, Wait on it makes fresh writes visible to readers.
	R *ristretto.Cache
)

func NewStore() error {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 28,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	R = client
	S = ristrettoStore.NewRistretto(client)

	return nil
}

// Flush blocks until every buffered write reached the store.
func Flush() {
	if R != nil {
		R.Wait()
	}
}
