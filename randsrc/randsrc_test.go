package randsrc

import (
	randv1 "math/rand"
	randv2 "math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestV2IntnStaysInRange(t *testing.T) {
	v := NewV2(randv2.New(randv2.NewPCG(1, 2)))
	for i := 0; i < 1000; i++ {
		n := v.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}

func TestLockedSourceDelegatesToWrappedSource(t *testing.T) {
	l := NewLockedSource(randv1.New(randv1.NewSource(1)))
	for i := 0; i < 100; i++ {
		n := l.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
}

func TestLockedSourceSerializesConcurrentCallers(t *testing.T) {
	l := NewLockedSource(randv1.New(randv1.NewSource(1)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Intn(10)
			}
		}()
	}
	assert.NotPanics(t, wg.Wait)
}
