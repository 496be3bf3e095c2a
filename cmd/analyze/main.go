// Command analyze fetches statements for one or more tickers and prints
// their ratio analysis to stdout. Useful for spot checks without running
// the dashboard server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	appstatements "main/internal/application/service/statements"
	domainanalysis "main/internal/domain/entity/analysis"
	infracache "main/internal/infrastructure/cache"
	infraprovider "main/internal/infrastructure/provider"
)

const defaultCacheTTL = time.Hour

type analyzeConfig struct {
	APIKey  string
	BaseURL string
	Tickers []string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	opts := []infraprovider.ClientOption{infraprovider.WithLogger(logger)}
	if cfg.BaseURL != "" {
		opts = append(opts, infraprovider.WithBaseURL(cfg.BaseURL))
	}
	client := infraprovider.NewClient(cfg.APIKey, opts...)

	service, err := appstatements.NewService(client, infracache.New(defaultCacheTTL))
	if err != nil {
		logger.Fatalf("init statements service: %v", err)
	}

	for _, ticker := range cfg.Tickers {
		set, err := service.Fetch(ctx, ticker)
		if err != nil {
			logger.WithField("ticker", ticker).WithError(err).Error("fetch failed")
			continue
		}

		ratios := domainanalysis.Compute(set)
		if ratios == nil {
			logger.WithField("ticker", ticker).Warn("insufficient statement data, no ratios")
			continue
		}
		printReport(set.Profile.Name, ticker, ratios)
	}
}

func loadConfig() (*analyzeConfig, error) {
	apiKey := strings.TrimSpace(os.Getenv("PROVIDER_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("PROVIDER_API_KEY is required")
	}

	if len(os.Args) < 2 {
		return nil, errors.New("usage: analyze TICKER [TICKER...]")
	}
	tickers := make([]string, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		ticker := strings.ToUpper(strings.TrimSpace(arg))
		if ticker != "" {
			tickers = append(tickers, ticker)
		}
	}

	return &analyzeConfig{
		APIKey:  apiKey,
		BaseURL: strings.TrimSpace(os.Getenv("PROVIDER_BASE_URL")),
		Tickers: tickers,
	}, nil
}

func printReport(name, ticker string, r *domainanalysis.RatioSet) {
	fmt.Printf("\n%s (%s)\n", name, ticker)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%.2f%%\n", domainanalysis.RatioNetProfitMargin, r.NetProfitMargin)
	fmt.Fprintf(w, "%s\t%.2f%%\n", domainanalysis.RatioROA, r.ROA)
	fmt.Fprintf(w, "%s\t%.2f%%\n", domainanalysis.RatioROE, r.ROE)
	fmt.Fprintf(w, "%s\t%.2f%%\n", domainanalysis.RatioOperatingMargin, r.OperatingMargin)
	fmt.Fprintf(w, "%s\t%.2f\n", domainanalysis.RatioCurrentRatio, r.CurrentRatio)
	fmt.Fprintf(w, "%s\t%.2f\n", domainanalysis.RatioQuickRatio, r.QuickRatio)
	fmt.Fprintf(w, "%s\t%.2f\n", domainanalysis.RatioCashRatio, r.CashRatio)
	fmt.Fprintf(w, "%s\t%.2f\n", domainanalysis.RatioDebtToEquity, r.DebtToEquity)
	fmt.Fprintf(w, "%s\t%.2f\n", domainanalysis.RatioDebtToAssets, r.DebtToAssets)
	fmt.Fprintf(w, "%s\t%.2f\n", domainanalysis.RatioEquityMultiplier, r.EquityMultiplier)
	fmt.Fprintf(w, "%s\t%.2fx\n", domainanalysis.RatioAssetTurnover, r.AssetTurnover)
	w.Flush()

	liquidity := domainanalysis.AssessLiquidity(r.CurrentRatio)
	leverage := domainanalysis.AssessLeverage(r.DebtToEquity)
	fmt.Printf("Liquidity: %s\n", liquidity.Message)
	fmt.Printf("Leverage: %s\n", leverage.Message)

	if len(r.MissingInputs) > 0 {
		items := make([]string, len(r.MissingInputs))
		for i, item := range r.MissingInputs {
			items[i] = string(item)
		}
		fmt.Printf("Missing line items (neutral defaults applied): %s\n", strings.Join(items, ", "))
	}
}
