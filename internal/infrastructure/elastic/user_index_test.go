package elastic_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	"github.com/oksasatya/go-shop-cart/internal/infrastructure/elastic"
	"github.com/oksasatya/go-shop-cart/pkg/helpers"
)

type recorded struct {
	method, path string
	body         map[string]any
}

// stubES answers like an Elasticsearch 8 node; the client refuses servers without the product header.
func stubES(t *testing.T, status int, reply string) (*elastic.UserIndex, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec := recorded{method: r.Method, path: r.URL.Path}
		_ = json.Unmarshal(b, &rec.body)
		calls = append(calls, rec)

		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	es, err := helpers.NewESClient([]string{srv.URL}, "", "")
	require.NoError(t, err)
	return elastic.NewUserIndex(es, "users"), &calls
}

func TestUserIndex_IndexUser(t *testing.T) {
	idx, calls := stubES(t, http.StatusCreated, `{"result":"created"}`)

	u := &entity.User{
		ID:        "user-1",
		Email:     "jane@example.com",
		Password:  "$2a$10$secret",
		FullName:  "Jane Doe",
		Address:   entity.Address{Country: "NL", State: "NH"},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, idx.IndexUser(context.Background(), u))

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPut, call.method)
	assert.Equal(t, "/users/_doc/user-1", call.path)
	assert.Equal(t, "jane@example.com", call.body["email"])
	assert.Equal(t, "Jane Doe", call.body["fullName"])
	assert.NotContains(t, call.body, "password")
}

func TestUserIndex_IndexUserErrorStatus(t *testing.T) {
	idx, _ := stubES(t, http.StatusBadRequest, `{"error":"mapper_parsing_exception"}`)

	err := idx.IndexUser(context.Background(), &entity.User{ID: "user-1"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "400"))
}

func TestUserIndex_SearchUsers(t *testing.T) {
	reply := `{"hits":{"hits":[
		{"_id":"user-1","_source":{"id":"user-1","email":"jane@example.com","fullName":"Jane Doe"}},
		{"_id":"user-2","_source":{"id":"user-2","email":"janet@example.com","fullName":"Janet"}}
	]}}`
	idx, calls := stubES(t, http.StatusOK, reply)

	docs, err := idx.SearchUsers(context.Background(), "jan", 5)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "user-1", docs[0].ID)
	assert.Equal(t, "Janet", docs[1].FullName)

	require.Len(t, *calls, 1)
	assert.Equal(t, "/users/_search", (*calls)[0].path)
	assert.EqualValues(t, 5, (*calls)[0].body["size"])
}
