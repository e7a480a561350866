package handler

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/olegiv/vitrine-go/internal/app"
	"github.com/olegiv/vitrine-go/internal/model"
	"github.com/olegiv/vitrine-go/internal/transfer"
)

func TestAdmin_RequiresSession(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/admin/me", "/api/admin/team", "/api/admin/services", "/api/admin/export"} {
		if code, _ := s.do(http.MethodGet, path, nil); code != http.StatusUnauthorized {
			t.Errorf("GET %s: status = %d, want %d", path, code, http.StatusUnauthorized)
		}
	}
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	body := s.expect(http.MethodPost, "/api/admin/login", map[string]string{"pin": "0000"}, http.StatusUnauthorized)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}

	s.login("1234")
	body = s.expect(http.MethodGet, "/api/admin/me", nil, http.StatusOK)
	if id := object(t, body, "admin")["id"]; id != model.DefaultAdminID {
		t.Errorf("admin id = %v, want %s", id, model.DefaultAdminID)
	}
	if strings.Contains(raw(body), "pin") {
		t.Errorf("me response exposes the PIN: %s", raw(body))
	}

	s.expect(http.MethodPost, "/api/admin/logout", nil, http.StatusOK)
	s.expect(http.MethodGet, "/api/admin/me", nil, http.StatusUnauthorized)
}

func TestLogout_KeepsOtherLogin(t *testing.T) {
	s := newTestServer(t)
	if _, err := s.app.Identities.AddIdentity(t.Context(), "Ama", "", "5566", false); err != nil {
		t.Fatalf("AddIdentity: %v", err)
	}

	s.login("5566")
	// The owner logs in from another browser afterwards.
	if _, err := s.app.Identities.Authenticate(t.Context(), "1234"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	s.expect(http.MethodPost, "/api/admin/logout", nil, http.StatusOK)

	cur, ok, err := s.app.Identities.Current(t.Context())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !ok || cur.ID != model.DefaultAdminID {
		t.Errorf("current = %q, %v, want the owner's login kept", cur.ID, ok)
	}
}

func TestLogin_Lockout(t *testing.T) {
	s := newTestServer(t)

	// The login limiter allows a burst of five per IP.
	var last int
	for i := 0; i < 6; i++ {
		last, _ = s.do(http.MethodPost, "/api/admin/login", map[string]string{"pin": "9999"})
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("sixth attempt: status = %d, want %d", last, http.StatusTooManyRequests)
	}
}

func TestTeam(t *testing.T) {
	s := newTestServer(t)
	s.login("1234")

	body := s.expect(http.MethodPost, "/api/admin/team", map[string]any{"name": "Ama", "email": "ama@example.com", "pin": "5566"}, http.StatusCreated)
	amaID, _ := object(t, body, "admin")["id"].(string)

	s.expect(http.MethodPost, "/api/admin/team", map[string]any{"name": "Kofi", "pin": "12"}, http.StatusBadRequest)

	body = s.expect(http.MethodGet, "/api/admin/team", nil, http.StatusOK)
	if team, _ := body["team"].([]any); len(team) != 2 {
		t.Errorf("team = %v, want 2 members", body["team"])
	}

	// Self deletion and demoting the owner are refused.
	s.expect(http.MethodDelete, "/api/admin/team/"+model.DefaultAdminID, nil, http.StatusForbidden)
	s.expect(http.MethodPost, "/api/admin/team/"+model.DefaultAdminID+"/superadmin", nil, http.StatusForbidden)
	s.expect(http.MethodPost, "/api/admin/team/unknown/superadmin", nil, http.StatusNotFound)

	body = s.expect(http.MethodPost, "/api/admin/team/"+amaID+"/superadmin", nil, http.StatusOK)
	if object(t, body, "admin")["isSuperAdmin"] != true {
		t.Errorf("Ama not promoted: %v", body["admin"])
	}

	s.expect(http.MethodDelete, "/api/admin/team/"+amaID, nil, http.StatusOK)
}

func TestTeam_RequiresSuperAdmin(t *testing.T) {
	s := newTestServer(t)
	if _, err := s.app.Identities.AddIdentity(t.Context(), "Ama", "", "5566", false); err != nil {
		t.Fatalf("AddIdentity: %v", err)
	}

	s.login("5566")
	s.expect(http.MethodGet, "/api/admin/team", nil, http.StatusForbidden)
	s.expect(http.MethodGet, "/api/admin/me", nil, http.StatusOK)
}

func TestChangePIN(t *testing.T) {
	s := newTestServer(t)
	s.login("1234")

	tests := []struct {
		name string
		body map[string]string
		want int
	}{
		{"confirm mismatch", map[string]string{"oldPin": "1234", "newPin": "4321", "confirmPin": "4322"}, http.StatusBadRequest},
		{"invalid new pin", map[string]string{"oldPin": "1234", "newPin": "12a4", "confirmPin": "12a4"}, http.StatusBadRequest},
		{"wrong old pin", map[string]string{"oldPin": "0000", "newPin": "4321", "confirmPin": "4321"}, http.StatusUnauthorized},
		{"success", map[string]string{"oldPin": "1234", "newPin": "4321", "confirmPin": "4321"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, _ := s.do(http.MethodPut, "/api/admin/pin", tt.body); code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
		})
	}

	if _, err := s.app.Identities.Authenticate(t.Context(), "4321"); err != nil {
		t.Errorf("new PIN rejected: %v", err)
	}
}

func TestCollectionCRUD(t *testing.T) {
	s := newTestServer(t)
	s.login("1234")

	body := s.expect(http.MethodGet, "/api/admin/shop-items", nil, http.StatusOK)
	// Admins see secret codes.
	if !strings.Contains(raw(body), "CANVA228") {
		t.Error("admin listing hides the secret code")
	}

	s.expect(http.MethodPost, "/api/admin/services", map[string]string{"title": " "}, http.StatusBadRequest)

	body = s.expect(http.MethodPost, "/api/admin/services", map[string]string{"title": "Motion design", "description": "Animations"}, http.StatusCreated)
	id, _ := object(t, body, "item")["id"].(string)
	if id == "" {
		t.Fatal("created service has no id")
	}

	body = s.expect(http.MethodPut, "/api/admin/services/"+id, map[string]string{"title": "Motion", "description": "Animations"}, http.StatusOK)
	if title := object(t, body, "item")["title"]; title != "Motion" {
		t.Errorf("title = %v, want Motion", title)
	}

	s.expect(http.MethodPut, "/api/admin/services/missing", map[string]string{"title": "X"}, http.StatusNotFound)
	s.expect(http.MethodDelete, "/api/admin/services/"+id, nil, http.StatusOK)
}

func TestCodeChangeRevokesUnlock(t *testing.T) {
	s := newTestServer(t)

	body := s.expect(http.MethodPost, "/api/unlock/b1", map[string]string{"code": "CANVA228"}, http.StatusOK)
	if body["unlocked"] != true {
		t.Fatalf("seed code did not unlock: %v", body)
	}

	s.login("1234")
	items, err := s.app.Content.ShopItems.LoadOrSeed(t.Context())
	if err != nil {
		t.Fatalf("LoadOrSeed: %v", err)
	}
	b1 := items[0]
	b1.SecretCode = "NEWCODE"
	s.expect(http.MethodPut, "/api/admin/shop-items/b1", b1, http.StatusOK)

	unlocked, err := s.app.Tracker.IsUnlocked(t.Context(), "b1")
	if err != nil {
		t.Fatalf("IsUnlocked: %v", err)
	}
	if unlocked {
		t.Error("item still unlocked after its code changed")
	}
}

func TestDocs(t *testing.T) {
	s := newTestServer(t)
	s.login("1234")

	body := s.expect(http.MethodGet, "/api/admin/doc/about", nil, http.StatusOK)
	if len(object(t, body, "document")) == 0 {
		t.Error("empty about document")
	}

	s.expect(http.MethodPut, "/api/admin/doc/whatsapp-number", map[string]string{"value": "22890000000"}, http.StatusOK)
	body = s.expect(http.MethodGet, "/api/admin/doc/whatsapp-number", nil, http.StatusOK)
	if v := object(t, body, "document")["value"]; v != "22890000000" {
		t.Errorf("value = %v, want the saved number", v)
	}

	s.expect(http.MethodDelete, "/api/admin/doc/whatsapp-number", nil, http.StatusOK)
	body = s.expect(http.MethodGet, "/api/admin/doc/whatsapp-number", nil, http.StatusOK)
	if v := object(t, body, "document")["value"]; v == "22890000000" {
		t.Error("reset kept the saved number")
	}

	s.expect(http.MethodDelete, "/api/admin/doc/about", nil, http.StatusNotFound)
	s.expect(http.MethodGet, "/api/admin/doc/nope", nil, http.StatusNotFound)
}

func TestExportImport(t *testing.T) {
	s := newTestServer(t)
	s.login("1234")

	exported := raw(s.expect(http.MethodGet, "/api/admin/export", nil, http.StatusOK))

	s.expect(http.MethodPost, "/api/admin/import", "not json", http.StatusBadRequest)

	body := s.expect(http.MethodPost, "/api/admin/import", map[string]string{
		s.app.Keys.WhatsAppNumber(): "22891111111",
		"other.key":                 "ignored",
	}, http.StatusOK)
	num, err := s.app.Content.WhatsAppNumber.Load(t.Context())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if num != "22891111111" {
		t.Errorf("number = %q, want the imported one", num)
	}
	skipped, _ := object(t, body, "result")["skipped"].([]any)
	if len(skipped) != 1 || skipped[0] != "other.key" {
		t.Errorf("skipped = %v, want [other.key]", skipped)
	}

	s.expect(http.MethodPost, "/api/admin/import", exported, http.StatusOK)
}

func TestBackups_Disabled(t *testing.T) {
	s := newTestServer(t)
	s.login("1234")
	s.expect(http.MethodGet, "/api/admin/backups", nil, http.StatusNotFound)
}

func TestBackups_Enabled(t *testing.T) {
	dir := t.TempDir()
	s := newTestServerWith(t, func(a *app.App, cfg *RouterConfig) {
		cfg.Backup = transfer.NewBackup(a.Exporter, transfer.BackupConfig{Dir: dir, Prefix: a.Prefix(), Retain: 3}, nil, nil)
	})
	s.login("1234")

	body := s.expect(http.MethodPost, "/api/admin/backups", nil, http.StatusCreated)
	name, _ := body["backup"].(string)
	if !regexp.MustCompile(`^vitrine-backup-\d{8}T\d{6}Z\.json$`).MatchString(name) {
		t.Fatalf("backup name = %q", name)
	}

	body = s.expect(http.MethodGet, "/api/admin/backups", nil, http.StatusOK)
	if list, _ := body["backups"].([]any); len(list) != 1 || list[0] != name {
		t.Errorf("backups = %v, want [%s]", body["backups"], name)
	}

	body = s.expect(http.MethodGet, "/api/admin/backups/"+name, nil, http.StatusOK)
	if !strings.Contains(raw(body), s.app.Keys.SessionID()) {
		t.Error("backup download lacks the exported keys")
	}

	if err := os.WriteFile(filepath.Join(dir, name+".tmp"), []byte("{}"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	tests := []struct {
		name string
		want int
	}{
		{"vitrine-backup-20000101T000000Z.json", http.StatusNotFound},
		{"missing.json", http.StatusBadRequest},
		{name + ".tmp", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, _ := s.do(http.MethodGet, "/api/admin/backups/"+tt.name, nil); code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
		})
	}
}

func uploadMedia(t *testing.T, s *testServer, data []byte, target string) int {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "pic.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = fw.Write(data)
	if target != "" {
		if err := mw.WriteField("target", target); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.srv.URL+"/api/admin/media", &body)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	_ = resp.Body.Close()
	return resp.StatusCode
}

func TestMediaUpload(t *testing.T) {
	s := newTestServer(t)
	s.login("1234")

	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	if code := uploadMedia(t, s, pngBuf.Bytes(), "profile"); code != http.StatusOK {
		t.Fatalf("upload status = %d, want %d", code, http.StatusOK)
	}

	stored, err := s.app.Content.ProfileImage.Load(t.Context())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(stored, "data:image/png;base64,") {
		t.Errorf("profile image = %.40q, want a PNG data URL", stored)
	}
}

func TestMediaUpload_Rejected(t *testing.T) {
	s := newTestServer(t)
	s.login("1234")

	// A PNG signature with a broken body sniffs as an image but does not decode.
	corrupt := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

	tests := []struct {
		name string
		data []byte
	}{
		{"not an image", []byte("hello, world")},
		{"corrupt png", corrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := uploadMedia(t, s, tt.data, ""); code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", code, http.StatusBadRequest)
			}
		})
	}
}
