package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sitecms/internal/config"
	"github.com/sitecms/internal/db"
	"github.com/sitecms/internal/render"
	"github.com/sitecms/internal/sanitize"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTemplates = fstest.MapFS{
	"index.html": {Data: []byte(
		`<title>{{if .settings}}{{.settings.Title}}{{else}}Site{{end}}</title>{{show_menu "main" "" .request}}{{range .services}}<p>{{.Title}}</p>{{end}}`)},
	"menu/menu-default.html": {Data: []byte(
		`{{if .menu}}<ul>{{range .menu_items}}<li{{if is_active .URL $.request.path}} class="active"{{end}}>{{.Title}}</li>{{end}}</ul>{{end}}`)},
	"tabs/tabs-default.html": {Data: []byte(
		`{{if .tab}}{{range .tabs}}<div>{{.Content}}</div>{{end}}{{end}}`)},
}

func setupTestDB(t *testing.T) (*API, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	api := NewAPI(gdb, sanitize.New(config.DefaultSanitizer()))
	tmpl, err := render.LoadTemplates(testTemplates, api.Fragments().FuncMap())
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	api.Fragments().SetTemplates(tmpl)

	return api, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func newJSONContext(method, target string, payload interface{}, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	return c, w
}

func idParam(id uint) gin.Param {
	return gin.Param{Key: "id", Value: fmt.Sprint(id)}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
}

