//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "shopping-api"
	ConsumerName = "shop-portal"

	StateCatalogBaseline = "catalog baseline"
	StateProductExists   = "product with id prod-catalog-101 exists"
	StateCheckoutSeeded  = "checkout products seeded"
)

const (
	ExistingProductID = "prod-catalog-101"
	SecondProductID   = "prod-catalog-202"
	MissingProductID  = "prod-missing-404"
)

const (
	exampleProductTitle = "Pact Mechanical Keyboard"
	exampleProductPrice = 79.99
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the shop portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleProductPayload provides stable test data for catalog interactions.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"title":       exampleProductTitle,
		"description": "tenkeyless, brown switches",
		"price":       exampleProductPrice,
	}
}

// ExampleCheckoutPayload provides stable test data for checkout interactions.
func ExampleCheckoutPayload() map[string]any {
	return map[string]any{
		"customer_name":    "Pact Shopper",
		"customer_email":   "pact.shopper@example.com",
		"customer_address": "42 Contract Lane",
		"items": []map[string]any{
			{"product_id": ExistingProductID, "quantity": 2},
			{"product_id": SecondProductID, "quantity": 1},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
