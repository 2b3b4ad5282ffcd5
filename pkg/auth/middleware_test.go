package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func protectedApp(t *testing.T, issuer *TokenIssuer, users *UserStore) (app *fiber.App) {
	t.Helper()

	app = fiber.New()
	app.Get("/protected", Middleware(issuer, users), func(c *fiber.Ctx) (err error) {
		username, _ := c.Locals("username").(string)
		err = c.SendString("hello " + username)
		return err
	})

	return app
}

func TestMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "resumer", 30*time.Minute)
	path := writeUsersFile(t, []User{{Username: "admin", Password: "x"}})
	users := NewUserStore(path)
	app := protectedApp(t, issuer, users)

	token, err := issuer.Generate("admin")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	cases := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"bearer token", "Bearer " + token, http.StatusOK},
		{"bare token", token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, testErr := app.Test(req)
			if testErr != nil {
				t.Fatalf("Failed to run request: %v", testErr)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d", tc.expectedStatus, resp.StatusCode)
			}

			if tc.expectedStatus == http.StatusUnauthorized && resp.Header.Get("WWW-Authenticate") != "Bearer" {
				t.Error("Expected WWW-Authenticate header on 401 responses")
			}
		})
	}
}

func TestMiddlewareRevokedUser(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "resumer", 30*time.Minute)
	path := writeUsersFile(t, []User{{Username: "someone-else", Password: "x"}})
	users := NewUserStore(path)
	app := protectedApp(t, issuer, users)

	// Token is valid but the subject is no longer in the users file.
	token, err := issuer.Generate("admin")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to run request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for revoked user, got %d", resp.StatusCode)
	}
}
