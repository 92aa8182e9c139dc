package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/repo/spannerrepo"
)

func main() {
	database := flag.String("database", defaultDatabase(), "Spanner database (projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	limit := flag.Int("limit", contracts.MaxResults, "Number of products to show")
	flag.Parse()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, *database)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	products, err := spannerrepo.NewReadModel(client).ListTopViewed(ctx, *limit)
	if err != nil {
		log.Fatalf("Failed to list products: %v", err)
	}

	if len(products) == 0 {
		fmt.Println("No products found!")
		return
	}

	fmt.Println("Most viewed products:")
	for i, p := range products {
		fmt.Printf("%d. %s (id: %d, price: %.2f, views: %d)\n", i+1, p.Name, p.ProductID, p.Price, *p.ViewCount)
	}
	fmt.Printf("\nTotal: %d products\n", len(products))
}

func defaultDatabase() string {
	if db := os.Getenv("SPANNER_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/dev-instance/databases/product-catalog-db"
}
