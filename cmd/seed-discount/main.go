package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/config"
	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/internal/kvstore"
	"github.com/asshop/storefront/internal/store"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: go run cmd/seed-discount/main.go <code> <percentage|fixed> <value> [min-order-amount]")
		fmt.Println("Example: go run cmd/seed-discount/main.go SUMMER20 percentage 20 3000")
		os.Exit(1)
	}

	code := os.Args[1]
	discountType := domain.DiscountType(os.Args[2])
	value, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid value: %v\n", err)
		os.Exit(1)
	}

	var minOrder float64
	if len(os.Args) > 4 {
		minOrder, err = strconv.ParseFloat(os.Args[4], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid min-order-amount: %v\n", err)
			os.Exit(1)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Open the store file
	kv, err := kvstore.OpenBolt(cfg.Store.DataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store file: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	configStore := store.NewConfigStore(kv, logger)

	created, err := configStore.AddDiscountCode(domain.DiscountCode{
		Code:           code,
		Type:           discountType,
		Value:          value,
		IsActive:       true,
		MinOrderAmount: minOrder,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create discount code: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Discount code created!\n\n")
	fmt.Printf("ID: %s\n", created.ID)
	fmt.Printf("Code: %s\n", created.Code)
	fmt.Printf("Type: %s\n", created.Type)
	fmt.Printf("Value: %g\n", created.Value)
	if created.MinOrderAmount > 0 {
		fmt.Printf("Minimum order amount: %g\n", created.MinOrderAmount)
	}
}
