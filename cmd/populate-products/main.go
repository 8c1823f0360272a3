// Command populate-products creates the products of a YAML catalog on the Fynd
// platform, one request at a time.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd/fyndclient"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/cataloging"
	"github.com/vfg2006/smart-inventory-api/pkg/log"
)

const separator = "================================================="

func main() {
	catalogPath := flag.String("catalog", "cmd/populate-products/products.yaml", "path to the YAML product catalog")
	pause := flag.Duration("pause", cataloging.DefaultPause, "wait between create requests")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	if cfg.Fynd.CompanyID == "" || cfg.Fynd.AuthToken == "" {
		logrus.Fatal("FYND_COMPANY_ID and FYND_AUTH_TOKEN are required")
	}

	file, err := os.Open(*catalogPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open catalog")
	}
	products, err := cataloging.LoadCatalog(file)
	file.Close()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load catalog")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(separator)
	fmt.Println("  Populating Fynd Platform with Products")
	fmt.Println(separator)
	fmt.Printf("Company ID: %s\n", cfg.Fynd.CompanyID)
	fmt.Printf("Total Products: %d\n", len(products))
	fmt.Println(separator)

	service := cataloging.NewService(fynd.New(cfg, fyndclient.NewClient(cfg)))

	summary, err := service.PopulateProducts(ctx, products, *pause)
	if err != nil {
		logrus.WithError(err).Warn("population interrupted")
	}
	if summary == nil {
		os.Exit(1)
	}

	failed := make([]string, 0, len(summary.Failed))
	for code := range summary.Failed {
		failed = append(failed, code)
	}
	sort.Strings(failed)

	fmt.Println()
	fmt.Println(separator)
	fmt.Println("  Population Complete")
	fmt.Println(separator)
	fmt.Printf("Success: %d\n", len(summary.Succeeded))
	fmt.Printf("Failed: %d\n", len(summary.Failed))
	for _, code := range failed {
		fmt.Printf("  %s: %s\n", code, summary.Failed[code])
	}
	fmt.Printf("Total: %d\n", len(products))
	fmt.Println(separator)
	fmt.Printf("\nView products: https://platform.fynd.com/company/%s/products/list\n", strings.TrimSpace(cfg.Fynd.CompanyID))

	if len(summary.Failed) > 0 {
		os.Exit(1)
	}
}
