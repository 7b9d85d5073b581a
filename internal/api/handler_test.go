package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobtrack/internal/model"
	"jobtrack/internal/repository"
)

var apiNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "jobtrack.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.JobApply{},
		&model.MyProfile{},
		&model.MyJobPreference{},
		&model.Document{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newJobHandler(t *testing.T) (*JobApplyHandler, repository.JobApplyRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewJobApplyRepository(db, model.FixedClock(apiNow))
	return NewJobApplyHandler(repo, model.FixedClock(apiNow)), repo
}

// testContext builds a gin context for a direct handler call, with the
// auth middleware's userID already injected.
func testContext(t *testing.T, method, target string, payload any, userID uint) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("userID", userID)
	return c, w
}

func setIDParam(c *gin.Context, id uint) {
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(uint64(id), 10)}}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// flushStatus finalizes a header-only reply. A handler that responds with
// c.Status and no body leaves the code pending until the engine flushes it,
// which never happens on a direct handler call.
func flushStatus(c *gin.Context) {
	c.Writer.WriteHeaderNow()
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d got %d body=%s", want, w.Code, w.Body.String())
	}
}
