package httpapi

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const concurrentRequests = 20

// seedRecipe registers and logs in username and creates one recipe.
func seedRecipe(t testing.TB, api *apiClient, username string) (token string, recipeID any) {
	code, _ := api.do(http.MethodPost, "/users", map[string]string{
		"username": username, "password": "pw123456", "email": username + "@x.com",
	})
	require.Equal(t, http.StatusCreated, code)
	api.login(username, "pw123456")

	code, recipe := api.do(http.MethodPost, "/recipes", map[string]any{"title": "Soup"})
	require.Equal(t, http.StatusCreated, code)
	return api.token, recipe["id"]
}

// fire sends the same request concurrently and counts responses per status.
func fire(api *apiClient, method, path, token string, body any) map[int]int64 {
	var (
		wg     sync.WaitGroup
		counts [600]int64
	)
	for i := 0; i < concurrentRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := api.serve(method, path, token, body)
			atomic.AddInt64(&counts[w.Code], 1)
		}()
	}
	wg.Wait()

	out := make(map[int]int64)
	for code, n := range counts {
		if n > 0 {
			out[code] = n
		}
	}
	return out
}

func TestConcurrentFavoriteAddsOneRow(t *testing.T) {
	api := newTestAPI(t)
	token, id := seedRecipe(t, api, "alice")

	counts := fire(api, http.MethodPost, "/favorites", token, map[string]any{"recipe_id": id})

	assert.Equal(t, map[int]int64{
		http.StatusCreated:    1,
		http.StatusBadRequest: concurrentRequests - 1,
	}, counts)

	code, _ := api.do(http.MethodGet, fmt.Sprintf("/favorites/%v", id), nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestConcurrentRatingCreateOneRow(t *testing.T) {
	api := newTestAPI(t)
	token, id := seedRecipe(t, api, "alice")
	path := fmt.Sprintf("/recipes/%v/ratings", id)

	counts := fire(api, http.MethodPost, path, token, map[string]int{"value": 2})

	assert.Equal(t, int64(1), counts[http.StatusCreated])
	assert.Equal(t, int64(concurrentRequests-1), counts[http.StatusBadRequest])

	_, body := api.do(http.MethodGet, path+"/average", nil)
	assert.EqualValues(t, 1, body["total_ratings"])
}

func TestConcurrentReads(t *testing.T) {
	api := newTestAPI(t)
	_, id := seedRecipe(t, api, "alice")

	counts := fire(api, http.MethodGet, fmt.Sprintf("/recipes/%v/ratings/average", id), "", nil)

	assert.Equal(t, map[int]int64{http.StatusOK: concurrentRequests}, counts)
}

func BenchmarkAverageRating(b *testing.B) {
	api := newTestAPI(b)
	token, id := seedRecipe(b, api, "alice")
	path := fmt.Sprintf("/recipes/%v/ratings", id)
	require.Equal(b, http.StatusCreated, api.serve(http.MethodPost, path, token, map[string]int{"value": 3}).Code)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if w := api.serve(http.MethodGet, path+"/average", "", nil); w.Code != http.StatusOK {
			b.Fatalf("average: status %d", w.Code)
		}
	}
}
