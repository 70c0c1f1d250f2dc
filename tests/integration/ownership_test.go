package integration

import (
	"fmt"
	"net/http"
	"testing"

	"fintrack/internal/handlers"
	"fintrack/internal/models"
)

// Two users operating on the same server must be fully isolated: one user's
// resources never appear in the other's listings, and foreign ids behave
// exactly like missing ids for reads, replacements and deletes.
func TestOwnershipIsolation(t *testing.T) {
	router, _ := newTestServer(t)

	alice := registerUser(t, router)
	bob := registerUser(t, router)

	// Alice creates a category and a transaction.
	w := do(t, router, http.MethodPost, "/api/categories", alice, map[string]interface{}{
		"name": "Groceries",
	})
	wantStatus(t, w, http.StatusOK)
	var aliceCat handlers.CategoryResponse
	decode(t, w, &aliceCat)

	w = do(t, router, http.MethodPost, "/api/transactions", alice, map[string]interface{}{
		"amount": 42.5, "type": "expense", "category_id": aliceCat.ID,
	})
	wantStatus(t, w, http.StatusOK)
	var aliceTx handlers.TransactionResponse
	decode(t, w, &aliceTx)

	// Bob's listings are empty.
	w = do(t, router, http.MethodGet, "/api/categories", bob, nil)
	wantStatus(t, w, http.StatusOK)
	var bobCats []handlers.CategoryResponse
	decode(t, w, &bobCats)
	if len(bobCats) != 0 {
		t.Errorf("expected no categories for bob, got %d", len(bobCats))
	}

	// Bob's reads of Alice's ids are indistinguishable from missing ids.
	w = do(t, router, http.MethodGet, "/api/categories/1", bob, nil)
	wantStatus(t, w, http.StatusNotFound)

	w = do(t, router, http.MethodGet, "/api/transactions/1", bob, nil)
	wantStatus(t, w, http.StatusNotFound)

	// Bob cannot replace or delete Alice's transaction.
	w = do(t, router, http.MethodPut, "/api/transactions/1", bob, map[string]interface{}{
		"amount": 1, "type": "income",
	})
	wantStatus(t, w, http.StatusNotFound)

	w = do(t, router, http.MethodDelete, "/api/transactions/1", bob, nil)
	wantStatus(t, w, http.StatusNotFound)

	// Bob cannot attach his transactions to Alice's category.
	w = do(t, router, http.MethodPost, "/api/transactions", bob, map[string]interface{}{
		"amount": 1, "type": "expense", "category_id": aliceCat.ID,
	})
	wantStatus(t, w, http.StatusNotFound)

	// Alice's transaction is untouched by all of the above.
	w = do(t, router, http.MethodGet, "/api/transactions/1", alice, nil)
	wantStatus(t, w, http.StatusOK)
	var got handlers.TransactionResponse
	decode(t, w, &got)
	if got.Amount != 42.5 {
		t.Errorf("expected amount 42.5, got %v", got.Amount)
	}
}

func TestMutationsWriteAuditRows(t *testing.T) {
	router, db := newTestServer(t)
	token := registerUser(t, router)

	w := do(t, router, http.MethodPost, "/api/categories", token, map[string]interface{}{
		"name": "Audited",
	})
	wantStatus(t, w, http.StatusOK)
	var cat handlers.CategoryResponse
	decode(t, w, &cat)

	w = do(t, router, http.MethodDelete, fmt.Sprintf("/api/categories/%d", cat.ID), token, nil)
	wantStatus(t, w, http.StatusOK)

	var logs []models.AuditLog
	if err := db.Where("resource_type = ?", "category").Order("id ASC").Find(&logs).Error; err != nil {
		t.Fatalf("failed to query audit logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 audit rows, got %d", len(logs))
	}
	if logs[0].Action != "create" || logs[1].Action != "delete" {
		t.Errorf("unexpected audit actions: %s, %s", logs[0].Action, logs[1].Action)
	}
	if logs[0].ResourceID != cat.ID {
		t.Errorf("expected audit resource id %d, got %d", cat.ID, logs[0].ResourceID)
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	router, _ := newTestServer(t)

	paths := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/categories"},
		{http.MethodPost, "/api/transactions"},
		{http.MethodGet, "/api/budgets"},
		{http.MethodGet, "/api/auth/me"},
	}
	for _, p := range paths {
		w := do(t, router, p.method, p.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", p.method, p.path, w.Code)
		}
	}
}

// Collection paths are also reachable with a trailing slash: the router
// redirects to the canonical form (301 for GET, 307 preserving the method
// and body otherwise).
func TestTrailingSlashRedirect(t *testing.T) {
	router, _ := newTestServer(t)
	token := registerUser(t, router)

	w := do(t, router, http.MethodGet, "/api/categories/", token, nil)
	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301 for GET with trailing slash, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/api/categories" {
		t.Errorf("expected redirect to /api/categories, got %q", loc)
	}

	w = do(t, router, http.MethodPost, "/api/transactions/", token, map[string]interface{}{
		"amount": 1, "type": "expense",
	})
	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 for POST with trailing slash, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/api/transactions" {
		t.Errorf("expected redirect to /api/transactions, got %q", loc)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	w := do(t, router, http.MethodGet, "/api/health", "", nil)
	wantStatus(t, w, http.StatusOK)

	var resp map[string]string
	decode(t, w, &resp)
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}
