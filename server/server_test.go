package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcost/server"
)

const sampleGrid = "3,4,1,2,8,6\n6,1,8,2,7,4\n5,9,3,9,9,5\n8,4,1,3,2,6\n3,7,2,8,6,4"

func newTestServer(t *testing.T, cfg server.Config) (*httptest.Server, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s, err := server.New(cfg, log)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return ts, hook
}

func post(t *testing.T, url, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(url, "text/plain", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(data)
}

//----------------------------------------------------------------------------//
// POST /solve
//----------------------------------------------------------------------------//

// TestHandleSolve_Text returns the three-line report.
func TestHandleSolve_Text(t *testing.T) {
	ts, hook := newTestServer(t, server.DefaultConfig())

	resp, body := post(t, ts.URL+server.URISolve, sampleGrid)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Yes\n16\n[1 2 3 4 4 5]\n", body)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "solved", entry.Message)
	assert.Equal(t, 5, entry.Data["rows"])
	assert.Equal(t, 6, entry.Data["cols"])
	assert.Equal(t, 16, entry.Data["total"])
}

// TestHandleSolve_JSON honors ?format=json and the Accept header.
func TestHandleSolve_JSON(t *testing.T) {
	ts, _ := newTestServer(t, server.DefaultConfig())

	resp, body := post(t, ts.URL+server.URISolve+"?format=json", "19,10,19,10,19\n21,23,20,19,12\n20,12,20,11,10")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"total_cost":48,"complete":false,"path":[1,1,1]}`, body)

	req, err := http.NewRequest(http.MethodPost, ts.URL+server.URISolve, strings.NewReader("1,1\n1,1"))
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&doc))
	assert.Equal(t, true, doc["success"])
}

// TestHandleSolve_QueryOverrides applies threshold and truncate per request.
func TestHandleSolve_QueryOverrides(t *testing.T) {
	ts, _ := newTestServer(t, server.DefaultConfig())
	over := "19,10,19,10,19\n21,23,20,19,12\n20,12,20,11,10"

	_, body := post(t, ts.URL+server.URISolve+"?truncate=false", over)
	assert.Equal(t, "No\n68\n[1 1 1 1 3]\n", body)

	_, body = post(t, ts.URL+server.URISolve+"?threshold=100", over)
	assert.Equal(t, "Yes\n68\n[1 1 1 1 3]\n", body)

	resp, _ := post(t, ts.URL+server.URISolve+"?threshold=ten", over)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(t, ts.URL+server.URISolve+"?format=xml", over)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestHandleSolve_BadInput maps parse and shape errors to 400.
func TestHandleSolve_BadInput(t *testing.T) {
	ts, hook := newTestServer(t, server.DefaultConfig())

	for _, in := range []string{"", "1,x", "1,2\n3", "1,\"2"} {
		resp, body := post(t, ts.URL+server.URISolve, in)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "input %q", in)
		assert.NotEmpty(t, body)
	}
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "solve rejected", entry.Message)

	resp, body := post(t, ts.URL+server.URISolve+"?format=json", "1,x")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, `"error"`)
}

// TestHandleSolve_TooLarge rejects bodies over MaxBodyBytes.
func TestHandleSolve_TooLarge(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.MaxBodyBytes = 16
	ts, _ := newTestServer(t, cfg)

	resp, _ := post(t, ts.URL+server.URISolve, strings.Repeat("1,", 20)+"1")
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

//----------------------------------------------------------------------------//
// GET /ws
//----------------------------------------------------------------------------//

// TestHandleSession solves several grids over one websocket.
func TestHandleSession(t *testing.T) {
	ts, _ := newTestServer(t, server.DefaultConfig())
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + server.URISession

	con, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer con.Close()

	type reply struct {
		Result *struct {
			Success   bool  `json:"success"`
			TotalCost int   `json:"total_cost"`
			Path      []int `json:"path"`
		} `json:"result"`
		Error string `json:"error"`
	}

	require.NoError(t, con.WriteMessage(websocket.TextMessage, []byte(sampleGrid)))
	var r reply
	require.NoError(t, con.ReadJSON(&r))
	require.NotNil(t, r.Result)
	assert.True(t, r.Result.Success)
	assert.Equal(t, 16, r.Result.TotalCost)
	assert.Equal(t, []int{1, 2, 3, 4, 4, 5}, r.Result.Path)

	require.NoError(t, con.WriteMessage(websocket.TextMessage, []byte("1,2\n3")))
	r = reply{}
	require.NoError(t, con.ReadJSON(&r))
	assert.Nil(t, r.Result)
	assert.Contains(t, r.Error, "rectangular")

	require.NoError(t, con.WriteMessage(websocket.BinaryMessage, []byte{1, 2}))
	r = reply{}
	require.NoError(t, con.ReadJSON(&r))
	assert.Equal(t, "expected a text message", r.Error)

	require.NoError(t, con.WriteMessage(websocket.TextMessage, []byte("5\n8\n5\n3\n5")))
	r = reply{}
	require.NoError(t, con.ReadJSON(&r))
	require.NotNil(t, r.Result)
	assert.Equal(t, 3, r.Result.TotalCost)
}

//----------------------------------------------------------------------------//
// Metrics, health, config
//----------------------------------------------------------------------------//

// TestMetrics counts outcomes per transport.
func TestMetrics(t *testing.T) {
	ts, _ := newTestServer(t, server.DefaultConfig())
	post(t, ts.URL+server.URISolve, sampleGrid)
	post(t, ts.URL+server.URISolve, "19,10,19,10,19\n21,23,20,19,12\n20,12,20,11,10")
	post(t, ts.URL+server.URISolve, "bad")

	resp, err := http.Get(ts.URL + server.URIMetrics)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(data)

	assert.Contains(t, body, `pathcost_solve_total{outcome="success",transport="http"} 1`)
	assert.Contains(t, body, `pathcost_solve_total{outcome="failure",transport="http"} 1`)
	assert.Contains(t, body, `pathcost_solve_total{outcome="error",transport="http"} 1`)
	assert.Contains(t, body, "pathcost_grid_cells_count 2")
}

// TestHealth answers the liveness check and 404s unknown routes.
func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, server.DefaultConfig())

	resp, err := http.Get(ts.URL + server.URIHealth)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + server.URISolve)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestConfig covers validation and the PORT override.
func TestConfig(t *testing.T) {
	cfg := server.DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Workers = 0
	assert.ErrorIs(t, cfg.Validate(), server.ErrBadConfig)
	_, err := server.New(cfg, logrus.New())
	assert.ErrorIs(t, err, server.ErrBadConfig)

	cfg = server.DefaultConfig()
	cfg.MaxBodyBytes = 0
	assert.ErrorIs(t, cfg.Validate(), server.ErrBadConfig)
	assert.ErrorIs(t, cfg.Validate(), server.ErrBadMaxBody)

	t.Setenv("PORT", "9191")
	assert.Equal(t, ":9191", server.DefaultConfig().WithEnv().Addr)
}
