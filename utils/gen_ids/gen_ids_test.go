package gen_ids

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetIdOrderId(t *testing.T) {
	InitGenIDservice()

	id := GetIdOrderId()
	assert.True(t, strings.HasPrefix(id, "PG"))
	assert.Contains(t, id, "-")

	seen := sync.Map{}
	wg := sync.WaitGroup{}
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next := GetIdOrderId()
			_, loaded := seen.LoadOrStore(next, true)
			assert.False(t, loaded, "order id issued twice: %s", next)
		}()
	}
	wg.Wait()
}
