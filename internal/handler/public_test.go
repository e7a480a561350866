package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/olegiv/vitrine-go/internal/checkout"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	body := s.expect(http.MethodGet, "/health", nil, http.StatusOK)
	if body["status"] != "ok" || body["backend"] != "memory" {
		t.Errorf("health = %v", body)
	}
	if body["chat"] != true {
		t.Errorf("chat = %v, want true with a provider", body["chat"])
	}
}

func TestSite_HidesSecretCodes(t *testing.T) {
	s := newTestServer(t)
	body := s.expect(http.MethodGet, "/api/site", nil, http.StatusOK)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if strings.Contains(raw(body), "CANVA228") {
		t.Error("site response leaks the secret code")
	}
	if s.docs.Len() != 0 {
		t.Errorf("store holds %d documents after a read", s.docs.Len())
	}
}

func TestSite_CategoryFilters(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query         string
		wantPortfolio int
		wantShop      int
	}{
		{"", 3, 1},
		{"?portfolio=Graphisme", 1, 1},
		{"?shop=E-book", 3, 0},
		{"?portfolio=All&shop=Tout", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			site := object(t, s.expect(http.MethodGet, "/api/site"+tt.query, nil, http.StatusOK), "site")
			portfolio, _ := site["portfolio"].([]any)
			shop, _ := site["shopItems"].([]any)
			if len(portfolio) != tt.wantPortfolio || len(shop) != tt.wantShop {
				t.Errorf("portfolio, shop = %d, %d, want %d, %d", len(portfolio), len(shop), tt.wantPortfolio, tt.wantShop)
			}
		})
	}
}

func TestLegal(t *testing.T) {
	s := newTestServer(t)

	doc := object(t, s.expect(http.MethodGet, "/api/legal/privacy", nil, http.StatusOK), "document")
	if doc["title"] != "Politique de Confidentialité" {
		t.Errorf("title = %v", doc["title"])
	}
	if html, _ := doc["html"].(string); html == "" {
		t.Error("empty html")
	}

	s.expect(http.MethodGet, "/api/legal/whatsapp-number", nil, http.StatusNotFound)
}

func TestCheckout(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
		want int
	}{
		{"valid", map[string]string{"itemId": "b1", "lastName": "Kodjo", "firstName": "Ama", "phone": "90000000"}, http.StatusOK},
		{"missing phone", map[string]string{"itemId": "b1", "lastName": "Kodjo", "firstName": "Ama"}, http.StatusBadRequest},
		{"bad payment method", map[string]string{"itemId": "f1", "lastName": "K", "firstName": "A", "phone": "1", "paymentMethod": "Bitcoin"}, http.StatusBadRequest},
		{"unknown item", map[string]string{"itemId": "zz", "lastName": "K", "firstName": "A", "phone": "1"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := s.expect(http.MethodPost, "/api/checkout", tt.body, tt.want)
			if tt.want != http.StatusOK {
				return
			}
			if url, _ := body["url"].(string); !strings.HasPrefix(url, "https://wa.me/") {
				t.Errorf("url = %q", url)
			}
			if msg, _ := body["message"].(string); !strings.Contains(msg, "Pack de 100+ Templates Canva Pro") {
				t.Errorf("message = %q", msg)
			}
		})
	}
}

func TestCheckout_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	body := s.expect(http.MethodPost, "/api/checkout", "{oops", http.StatusBadRequest)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestShareProduct(t *testing.T) {
	s := newTestServer(t)

	body := s.expect(http.MethodGet, "/api/products/p1/share?url=https%3A%2F%2Fbasilekadjolo.com%2F", nil, http.StatusOK)
	links := object(t, body, "links")
	if len(links) != len(checkout.SharePlatforms) {
		t.Errorf("links = %v, want one per platform", links)
	}
	if fb, _ := links[checkout.ShareFacebook].(string); !strings.Contains(fb, "u=https%3A%2F%2Fbasilekadjolo.com%2F") {
		t.Errorf("facebook link = %q", fb)
	}

	s.expect(http.MethodGet, "/api/products/p1/share", nil, http.StatusBadRequest)
	s.expect(http.MethodGet, "/api/products/nope/share?url=https%3A%2F%2Fbasilekadjolo.com%2F", nil, http.StatusNotFound)
}

func TestUnlock(t *testing.T) {
	s := newTestServer(t)

	body := s.expect(http.MethodPost, "/api/unlock/b1", map[string]string{"code": "WRONG"}, http.StatusOK)
	if body["unlocked"] != false {
		t.Errorf("wrong code: unlocked = %v", body["unlocked"])
	}

	body = s.expect(http.MethodPost, "/api/unlock/b1", map[string]string{"code": "canva228"}, http.StatusOK)
	if body["unlocked"] != true || body["downloadLink"] != "https://drive.google.com" {
		t.Errorf("right code: %v", body)
	}

	s.expect(http.MethodPost, "/api/unlock/nope", map[string]string{"code": "X"}, http.StatusNotFound)
}

func TestGiftRequest_Validation(t *testing.T) {
	s := newTestServer(t)
	s.expect(http.MethodPost, "/api/gift/request", map[string]string{"firstName": "Ama"}, http.StatusBadRequest)
}

func TestSubmitReview(t *testing.T) {
	s := newTestServer(t)

	s.expect(http.MethodPost, "/api/testimonials", map[string]any{"name": "Kofi", "rating": 9, "content": "Top"}, http.StatusBadRequest)

	body := s.expect(http.MethodPost, "/api/testimonials", map[string]any{"name": "Kofi", "rating": 5, "content": "Top"}, http.StatusCreated)
	if name := object(t, body, "testimonial")["name"]; name != "Kofi" {
		t.Errorf("name = %v", name)
	}
	if url, _ := body["url"].(string); !strings.HasPrefix(url, "https://wa.me/") {
		t.Errorf("url = %q", url)
	}
}

func TestChat(t *testing.T) {
	s := newTestServer(t)

	body := s.expect(http.MethodPost, "/api/chat", map[string]any{
		"prompt":  "Je veux un logo",
		"history": []map[string]string{{"role": "user", "text": "Salut"}},
	}, http.StatusOK)
	if body["reply"] != "Bonjour !" {
		t.Errorf("reply = %v", body["reply"])
	}

	s.expect(http.MethodPost, "/api/chat", map[string]any{"prompt": " "}, http.StatusBadRequest)
}

func TestNotFound_JSON(t *testing.T) {
	s := newTestServer(t)
	body := s.expect(http.MethodGet, "/api/nothing-here", nil, http.StatusNotFound)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}
