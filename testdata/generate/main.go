// Command generate produces testdata/transactions.json, a batch of sample
// transactions for demoing the dashboard, and can replay them against a
// running instance with -post.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/securebank/frauddesk/internal/domain"
)

var (
	merchants = []string{
		"fraud_Kirlin and Sons", "fraud_Sporer-Keebler", "fraud_Haley Group",
		"fraud_Johnston-Casper", "fraud_Daugherty LLC", "fraud_Romaguera Ltd",
		"fraud_Cormier LLC", "fraud_Schumm PLC",
	}
	categories = []string{
		"grocery_pos", "shopping_net", "shopping_pos", "gas_transport",
		"entertainment", "misc_net", "food_dining", "travel",
	}
	cities = []string{
		"Houston", "Phoenix", "Portland", "Aliso Viejo", "Tulsa",
		"Columbia", "Birmingham", "Naples",
	}
)

func main() {
	count := flag.Int("count", 40, "number of transactions to generate")
	postURL := flag.String("post", "", "optionally POST each transaction to this dashboard base URL")
	flag.Parse()

	rng := rand.New(rand.NewSource(42))

	txns := make([]domain.TransactionInput, 0, *count)
	for i := 0; i < *count; i++ {
		// Log-normal-ish amounts: mostly small, occasionally large enough
		// to trip the high-amount rules.
		amount := math.Round(math.Exp(rng.NormFloat64()*1.4+4.2)*100) / 100
		txns = append(txns, domain.TransactionInput{
			Amount:   amount,
			Merchant: merchants[rng.Intn(len(merchants))],
			Category: categories[rng.Intn(len(categories))],
			City:     cities[rng.Intn(len(cities))],
		})
	}

	outPath := filepath.Join(findTestdataDir(), "transactions.json")
	data, err := json.MarshalIndent(txns, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}
	fmt.Printf("Wrote %d transactions to %s\n", len(txns), outPath)

	if *postURL == "" {
		return
	}

	for i, txn := range txns {
		body, _ := json.Marshal(txn)
		resp, err := http.Post(*postURL+"/api/v1/analyze", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("post txn %d: %v", i, err)
		}
		resp.Body.Close()
		fmt.Printf("posted txn %d: HTTP %d\n", i, resp.StatusCode)
		// The dashboard allows one in-flight analysis at a time.
		time.Sleep(1500 * time.Millisecond)
	}
}

func findTestdataDir() string {
	// Look for the testdata directory relative to common run locations:
	// the repo root and this package's own directory.
	candidates := []string{
		"testdata",
		filepath.Join("..", "..", "testdata"),
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c
		}
	}
	// Fallback.
	return "testdata"
}
