package server

import (
	"bytes"
	"chunky/logger"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)
	r := gin.New()
	Start(r, Config{ChunkCapacity: 2, FixedCapacity: 2, Shards: 4})
	return r
}

func do(t *testing.T, r *gin.Engine, method string, url string, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var mp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &mp)
	return w.Code, mp
}

func create(t *testing.T, r *gin.Engine, kind string) string {
	t.Helper()
	code, mp := do(t, r, http.MethodPost, "/api/list?kind="+kind, "")
	if code != http.StatusOK {
		t.Fatalf("create %s: %d", kind, code)
	}
	return mp["data"].(string)
}

func TestServer_ChunkedLifecycle(t *testing.T) {
	r := newEngine()
	id := create(t, r, Chunked)
	for _, v := range []string{"1", "2", "3", "4"} {
		if code, _ := do(t, r, http.MethodPost, "/api/add?id="+id+"&at=back", `{"value":`+v+`}`); code != http.StatusOK {
			t.Fatalf("add: %d", code)
		}
	}
	if code, _ := do(t, r, http.MethodPost, "/api/add?id="+id+"&at=2", `{"value":99}`); code != http.StatusOK {
		t.Fatalf("add index: %d", code)
	}
	_, mp := do(t, r, http.MethodGet, "/api/list?id="+id, "")
	data := mp["data"].(map[string]any)
	values := data["values"].([]any)
	expected := []float64{1, 2, 99, 3, 4}
	if len(values) != len(expected) {
		t.Fatalf("unexpected values %v", values)
	}
	for i, v := range expected {
		if values[i].(float64) != v {
			t.Fatalf("unexpected values %v", values)
		}
	}

	_, mp = do(t, r, http.MethodGet, "/api/chunks?id="+id, "")
	chunks := mp["data"].(map[string]any)["chunks"].([]any)
	for _, c := range chunks {
		if len(c.([]any)) > 2 {
			t.Errorf("chunk exceeds capacity: %v", c)
		}
	}

	code, mp := do(t, r, http.MethodPost, "/api/remove?id="+id+"&at=front", "")
	if code != http.StatusOK || mp["data"].(float64) != 1 {
		t.Errorf("remove front: %d %v", code, mp)
	}
	if code, _ = do(t, r, http.MethodPut, "/api/set?id="+id+"&at=0", `{"value":"x"}`); code != http.StatusOK {
		t.Errorf("set: %d", code)
	}
	_, mp = do(t, r, http.MethodGet, "/api/get?id="+id+"&at=0", "")
	if mp["data"] != "x" {
		t.Errorf("get: %v", mp)
	}
	if code, _ = do(t, r, http.MethodGet, "/api/get?id="+id+"&at=10", ""); code != http.StatusBadRequest {
		t.Errorf("out of range should be 400 but now is %d", code)
	}
	if code, _ = do(t, r, http.MethodDelete, "/api/list?id="+id, ""); code != http.StatusOK {
		t.Errorf("delete: %d", code)
	}
	if code, _ = do(t, r, http.MethodGet, "/api/list?id="+id, ""); code != http.StatusNotFound {
		t.Errorf("deleted list should be 404 but now is %d", code)
	}
}

func TestServer_Errors(t *testing.T) {
	r := newEngine()
	id := create(t, r, Fixed)
	if code, _ := do(t, r, http.MethodPost, "/api/remove?id="+id+"&at=back", ""); code != http.StatusConflict {
		t.Errorf("empty should be 409 but now is %d", code)
	}
	_, _ = do(t, r, http.MethodPost, "/api/add?id="+id, `{"value":1}`)
	_, _ = do(t, r, http.MethodPost, "/api/add?id="+id, `{"value":2}`)
	if code, _ := do(t, r, http.MethodPost, "/api/add?id="+id, `{"value":3}`); code != http.StatusInsufficientStorage {
		t.Errorf("full should be 507 but now is %d", code)
	}
	if code, _ := do(t, r, http.MethodPost, "/api/add?id="+id, `{}`); code != http.StatusBadRequest {
		t.Errorf("missing value should be 400 but now is %d", code)
	}
	if code, _ := do(t, r, http.MethodGet, "/api/chunks?id="+id, ""); code != http.StatusBadRequest {
		t.Errorf("chunks of fixed list should be 400 but now is %d", code)
	}
	if code, _ := do(t, r, http.MethodPost, "/api/list?kind=tree", ""); code != http.StatusBadRequest {
		t.Errorf("unknown kind should be 400 but now is %d", code)
	}
}

func TestServer_Lists(t *testing.T) {
	r := newEngine()
	create(t, r, Linked)
	create(t, r, Growable)
	_, mp := do(t, r, http.MethodGet, "/api/lists", "")
	if len(mp["data"].([]any)) != 2 {
		t.Errorf("unexpected lists %v", mp)
	}
}
