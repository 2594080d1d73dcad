package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tabelsky/todo-flask-netology/internal/config"
	"github.com/tabelsky/todo-flask-netology/internal/database"
	"github.com/tabelsky/todo-flask-netology/internal/router"
)

const testPassword = "Passw0rd"

// testAPI drives the full router over httptest, the way the service
// is exercised in production.
type testAPI struct {
	t      *testing.T
	router *gin.Engine
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// a single connection keeps every query on the same in-memory db
	sqlDB.SetMaxOpenConns(1)
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Security.BcryptCost = 4 // keep hashing fast in tests

	return &testAPI{t: t, router: router.SetupRouter(cfg, db)}
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) decode(w *httptest.ResponseRecorder, into any) {
	a.t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		a.t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func (a *testAPI) wantStatus(w *httptest.ResponseRecorder, status int) {
	a.t.Helper()
	if w.Code != status {
		a.t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
}

type errEnvelope struct {
	Status      string `json:"status"`
	Description any    `json:"description"`
}

// wantError asserts the error envelope and returns its description.
func (a *testAPI) wantError(w *httptest.ResponseRecorder, status int) any {
	a.t.Helper()
	a.wantStatus(w, status)
	var envelope errEnvelope
	a.decode(w, &envelope)
	if envelope.Status != "error" {
		a.t.Fatalf("envelope status = %q, want error (body %s)", envelope.Status, w.Body.String())
	}
	return envelope.Description
}

type idResp struct {
	ID uint `json:"id"`
}

type userResp struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Todos []uint `json:"todos"`
}

type todoResp struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Important  bool    `json:"important"`
	Done       bool    `json:"done"`
	StartTime  string  `json:"start_time"`
	FinishTime *string `json:"finish_time"`
	UserID     uint    `json:"user_id"`
}

func (a *testAPI) register(name, password string) uint {
	a.t.Helper()
	w := a.do(http.MethodPost, "/user", "", map[string]any{"name": name, "password": password})
	a.wantStatus(w, http.StatusOK)
	var resp idResp
	a.decode(w, &resp)
	return resp.ID
}

func (a *testAPI) login(name, password string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/login", "", map[string]any{"name": name, "password": password})
	a.wantStatus(w, http.StatusOK)
	var resp struct {
		Token string `json:"token"`
	}
	a.decode(w, &resp)
	if resp.Token == "" {
		a.t.Fatal("empty token")
	}
	return resp.Token
}

// auth registers a user and logs it in.
func (a *testAPI) auth(name string) string {
	a.t.Helper()
	a.register(name, testPassword)
	return a.login(name, testPassword)
}

func (a *testAPI) createTodo(token, name string, important bool) uint {
	a.t.Helper()
	w := a.do(http.MethodPost, "/todo", token, map[string]any{"name": name, "important": important})
	a.wantStatus(w, http.StatusOK)
	var resp idResp
	a.decode(w, &resp)
	return resp.ID
}

func (a *testAPI) getUser(token string) userResp {
	a.t.Helper()
	w := a.do(http.MethodGet, "/user", token, nil)
	a.wantStatus(w, http.StatusOK)
	var resp userResp
	a.decode(w, &resp)
	return resp
}

func (a *testAPI) getTodo(token string, id uint) todoResp {
	a.t.Helper()
	w := a.do(http.MethodGet, todoPath(id), token, nil)
	a.wantStatus(w, http.StatusOK)
	var resp todoResp
	a.decode(w, &resp)
	return resp
}

func todoPath(id uint) string {
	return "/todo/" + strconv.FormatUint(uint64(id), 10)
}
