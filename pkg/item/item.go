package item

import (
	"github.com/dchest/siphash"
	"go.uber.org/atomic"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

type Item struct {
	Name        string
	AccessCount *atomic.Int64
}

func New(name string) *Item {
	return &Item{
		Name:        name,
		AccessCount: atomic.NewInt64(0),
	}
}

// ID returns a stable identity hash of the item name.
func (it *Item) ID() uint64 {
	return siphash.Hash(sipHashKey1, sipHashKey2, []byte(it.Name))
}
