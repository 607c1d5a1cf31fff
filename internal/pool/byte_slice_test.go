package pool_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/lestrrat-go/tagsoup/internal/pool"
	"github.com/lestrrat-go/tagsoup/s11n"
	"github.com/stretchr/testify/require"
)

func TestGetCapacity(t *testing.T) {
	p := pool.ByteSlice()

	b := p.GetCapacity(16)
	require.Empty(t, b)
	require.GreaterOrEqual(t, cap(b), 16)
	p.Put(append(b, "<p>"...))

	require.Empty(t, p.Get(), "slices come back empty whatever was put")

	big := p.GetCapacity(1 << 16)
	require.Empty(t, big)
	require.GreaterOrEqual(t, cap(big), 1<<16, "a request larger than what is pooled gets a new slice")
}

func TestPutNil(t *testing.T) {
	p := pool.ByteSlice()
	require.NotPanics(t, func() { p.Put(nil) })
	require.Empty(t, p.Get())
}

// The serializer escapes through pooled scratch space; concurrent
// writers must never see each other's bytes.
func TestConcurrentEscaping(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := strings.Repeat(fmt.Sprintf("<%d&>", i), 50)
			want := strings.Repeat(fmt.Sprintf("&lt;%d&amp;&gt;", i), 50)
			for range 20 {
				if got := string(s11n.EscapeText([]byte(in))); got != want {
					t.Errorf("goroutine %d: got %q", i, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
