package imposter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStubRequiresResponses(t *testing.T) {
	_, err := NewStub(StubConfig{
		Predicates: []Predicate{{Kind: KindEquals, Fields: &Fields{Path: "/x"}}},
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "responses", verr.Field)
}

func TestNewStubCatchAll(t *testing.T) {
	s, err := NewStub(StubConfig{
		Responses: []Response{{StatusCode: 200, Body: "always"}},
	})
	require.NoError(t, err)
	assert.Empty(t, s.Predicates, "no predicates means match everything")
}

func TestStubRotation(t *testing.T) {
	s, err := NewStub(StubConfig{
		Responses: []Response{
			{StatusCode: 200, Body: "A"},
			{StatusCode: 200, Body: "B"},
			{StatusCode: 200, Body: "C"},
		},
	})
	require.NoError(t, err)

	var got []string
	for i := 0; i < 7; i++ {
		got = append(got, s.NextResponse().Body)
	}
	assert.Equal(t, []string{"A", "B", "C", "A", "B", "C", "A"}, got)
	assert.Equal(t, uint64(7), s.Matches())
}

func TestStubSingleResponseRepeats(t *testing.T) {
	s, err := NewStub(StubConfig{
		Responses: []Response{{StatusCode: 418, Body: "teapot"}},
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, "teapot", s.NextResponse().Body)
	}
}

func TestStubConcurrentRotation(t *testing.T) {
	s, err := NewStub(StubConfig{
		Responses: []Response{
			{StatusCode: 200, Body: "A"},
			{StatusCode: 200, Body: "B"},
		},
	})
	require.NoError(t, err)

	const workers = 8
	const perWorker = 100

	var mu sync.Mutex
	counts := map[string]int{}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				body := s.NextResponse().Body
				mu.Lock()
				counts[body]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	total := workers * perWorker
	assert.Equal(t, uint64(total), s.Matches())
	assert.Equal(t, total/2, counts["A"], "rotation must distribute responses evenly")
	assert.Equal(t, total/2, counts["B"])
}

func TestStubConfigIsolation(t *testing.T) {
	cfg := StubConfig{
		Predicates: []Predicate{{Kind: KindEquals, Fields: &Fields{Path: "/x"}}},
		Responses:  []Response{{StatusCode: 200, Body: "A"}},
	}
	s, err := NewStub(cfg)
	require.NoError(t, err)

	cfg.Responses[0].Body = "mutated"
	assert.Equal(t, "A", s.NextResponse().Body, "stub must not alias the caller's slices")
}
