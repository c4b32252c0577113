//go:build integration

package e2e

// End-to-end integration tests against real Postgres + Redis via
// testcontainers. Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/config"
	"github.com/NightFoX54/ERP-Proje/internal/infra"
	"github.com/NightFoX54/ERP-Proje/internal/router"
	"github.com/NightFoX54/ERP-Proje/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("erp_test"),
		tcPostgres.WithUsername("erp"),
		tcPostgres.WithPassword("erp"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("e2e-password"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO accounts (id, username, password_hash, role, active, created_at, updated_at)
		VALUES (gen_random_uuid(), 'admin-e2e', ?, 'admin', true, NOW(), NOW())
		ON CONFLICT DO NOTHING`, string(hash)).Error)

	r, workerHandlers := router.New(cfg, db, rdb)

	workerCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)
	worker.StartPool(workerCtx, rdb, workerHandlers, cfg.WorkerPoolSize)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin-e2e", "password": "e2e-password"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

// Full order cycle: catalog setup → stock intake → order → fulfill → PDF.
func TestE2E_FullOrderCycle(t *testing.T) {
	env := setupTestEnv(t)

	branchResp := do(t, env.server, "POST", "/v1/branches",
		jsonBody(t, map[string]any{"name": "Central", "stock_enabled": true}), env.token)
	require.Equal(t, http.StatusCreated, branchResp.StatusCode)
	var branch struct {
		ID string `json:"id"`
	}
	decodeJSON(t, branchResp, &branch)

	typeResp := do(t, env.server, "POST", "/v1/catalog/types",
		jsonBody(t, map[string]any{"name": "Dolu"}), env.token)
	require.Equal(t, http.StatusCreated, typeResp.StatusCode)
	var ptype struct {
		ID string `json:"id"`
	}
	decodeJSON(t, typeResp, &ptype)

	catResp := do(t, env.server, "POST", "/v1/catalog/categories",
		jsonBody(t, map[string]any{
			"name":            "Round bar S235",
			"product_type_id": ptype.ID,
			"branch_id":       branch.ID,
		}), env.token)
	require.Equal(t, http.StatusCreated, catResp.StatusCode)
	var category struct {
		ID string `json:"id"`
	}
	decodeJSON(t, catResp, &category)

	itemResp := do(t, env.server, "POST", "/v1/stock/items",
		jsonBody(t, map[string]any{
			"product_category_id": category.ID,
			"diameter":            20,
			"length":              6000.0,
			"weight":              50.0,
			"purchase_price":      500.0,
		}), env.token)
	require.Equal(t, http.StatusCreated, itemResp.StatusCode)
	var item struct {
		ID      string  `json:"id"`
		KgPrice float64 `json:"kg_price"`
	}
	decodeJSON(t, itemResp, &item)
	assert.Equal(t, 10.0, item.KgPrice)

	orderResp := do(t, env.server, "POST", "/v1/orders",
		jsonBody(t, map[string]any{
			"customer_name":      "Acme Metals",
			"given_branch_id":    branch.ID,
			"delivery_branch_id": branch.ID,
			"order_date":         time.Now().Format(time.RFC3339),
			"delivery_date":      time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		}), env.token)
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)
	var order struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeJSON(t, orderResp, &order)
	assert.Equal(t, "Created", order.Status)

	fulfillResp := do(t, env.server, "POST", fmt.Sprintf("/v1/orders/%s/fulfill", order.ID),
		jsonBody(t, map[string]any{
			"cutting_info": []map[string]any{{
				"stock_item_id":    item.ID,
				"quantity":         2,
				"cut_length":       1000,
				"total_cut_weight": 24.0,
				"kg_price":         10.0,
			}},
		}), env.token)
	require.Equal(t, http.StatusOK, fulfillResp.StatusCode)
	var fulfilled struct {
		Status             string  `json:"status"`
		TotalPrice         float64 `json:"total_price"`
		TotalWastageLength float64 `json:"total_wastage_length"`
	}
	decodeJSON(t, fulfillResp, &fulfilled)
	assert.Equal(t, "Ready", fulfilled.Status)
	assert.Equal(t, 240.0, fulfilled.TotalPrice)
	assert.Equal(t, 6.0, fulfilled.TotalWastageLength)

	stockResp := do(t, env.server, "GET", "/v1/stock/items/"+item.ID, nil, env.token)
	require.Equal(t, http.StatusOK, stockResp.StatusCode)
	var stored struct {
		Length float64 `json:"length"`
	}
	decodeJSON(t, stockResp, &stored)
	assert.Equal(t, 6000-2006.0, stored.Length)

	pdfResp := do(t, env.server, "GET", fmt.Sprintf("/v1/orders/%s/delivery-note", order.ID), nil, env.token)
	require.Equal(t, http.StatusOK, pdfResp.StatusCode)
	pdfResp.Body.Close()
}

// Status can be forced in any direction; unknown values are rejected.
func TestE2E_OrderStatus(t *testing.T) {
	env := setupTestEnv(t)

	branchResp := do(t, env.server, "POST", "/v1/branches",
		jsonBody(t, map[string]any{"name": "Central"}), env.token)
	require.Equal(t, http.StatusCreated, branchResp.StatusCode)
	var branch struct {
		ID string `json:"id"`
	}
	decodeJSON(t, branchResp, &branch)

	orderResp := do(t, env.server, "POST", "/v1/orders",
		jsonBody(t, map[string]any{
			"customer_name":      "Acme Metals",
			"given_branch_id":    branch.ID,
			"delivery_branch_id": branch.ID,
		}), env.token)
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)
	var order struct {
		ID string `json:"id"`
	}
	decodeJSON(t, orderResp, &order)

	badResp := do(t, env.server, "PUT", fmt.Sprintf("/v1/orders/%s/status", order.ID),
		jsonBody(t, map[string]any{"status": "Shipped"}), env.token)
	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)
	badResp.Body.Close()

	okResp := do(t, env.server, "PUT", fmt.Sprintf("/v1/orders/%s/status", order.ID),
		jsonBody(t, map[string]any{"status": "Cancelled"}), env.token)
	require.Equal(t, http.StatusOK, okResp.StatusCode)
	var updated struct {
		Status string `json:"status"`
	}
	decodeJSON(t, okResp, &updated)
	assert.Equal(t, "Cancelled", updated.Status)
}
