package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-billpay/app/entity"
	"github.com/vibast-solutions/ms-go-billpay/app/gateway"
	"github.com/vibast-solutions/ms-go-billpay/app/poller"
	"github.com/vibast-solutions/ms-go-billpay/app/reference"
	"github.com/vibast-solutions/ms-go-billpay/config"
)

var (
	payServiceCode  string
	payProviderCode string
	payBillNo       string
	payBillID       string
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Query a bill, initiate payment, and wait for the result",
	Long: "Query a bill through the payment gateway, initiate a payment for the selected " +
		"billing cycle, print the redirect URL, and poll the callback receiver until the " +
		"gateway reports an outcome.",
	Run: runPay,
}

func init() {
	payCmd.Flags().StringVar(&payServiceCode, "service", "", "service code (see 'billpay services')")
	payCmd.Flags().StringVar(&payProviderCode, "provider", "", "provider code for the service")
	payCmd.Flags().StringVar(&payBillNo, "bill", "", "bill number to query and pay")
	payCmd.Flags().StringVar(&payBillID, "bill-id", "", "billing cycle to pay when the bill has several")
	_ = payCmd.MarkFlagRequired("service")
	_ = payCmd.MarkFlagRequired("provider")
	_ = payCmd.MarkFlagRequired("bill")
	rootCmd.AddCommand(payCmd)
}

func runPay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	client := mustGatewayClient(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	detail, err := client.QueryBill(ctx, &gateway.QueryBillInput{
		ServiceCode:  payServiceCode,
		ProviderCode: payProviderCode,
		BillNo:       payBillNo,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Bill query failed")
	}

	fmt.Printf("Bill %s (%s, %s)\n", detail.BillNo, detail.BillName, detail.BillAddress)
	fmt.Printf("Provider: %s  Total: %d %s\n", detail.Provider.Name, detail.Amount, detail.Currency)

	cycle, err := selectBillCycle(detail, payBillID)
	if err != nil {
		printBillCycles(detail)
		logrus.WithError(err).Fatal("Billing cycle selection failed")
	}
	fmt.Printf("Paying cycle %s (%s): %d %s\n", cycle.BillID, cycle.Description, cycle.BillAmount, detail.Currency)

	// The reference is minted before the gateway sees the request; the
	// callback echoes it back, and the poll below keys on it.
	ref := reference.NewGenerator(cfg.Results.ReferenceLength).Generate()

	paymentURL, err := client.InitiatePayment(ctx, &gateway.InitiatePaymentInput{
		Reference: ref,
		BillNo:    detail.BillNo,
		BillID:    cycle.BillID,
		Amount:    cycle.BillAmount,
		InquiryID: detail.InquiryID,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Payment initiation failed")
	}

	fmt.Printf("\nComplete the payment in your browser:\n  %s\n\n", paymentURL)
	fmt.Printf("Reference: %s\nWaiting for the payment result...\n", ref)

	watchReferenceWithConfig(ctx, cfg, ref)
}

func mustGatewayClient(cfg *config.Config) *gateway.Client {
	if strings.TrimSpace(cfg.Gateway.BaseURL) == "" {
		logrus.Fatal("GATEWAY_BASE_URL is required")
	}
	return gateway.NewClient(gateway.Config{
		BaseURL:      cfg.Gateway.BaseURL,
		MerchantCode: cfg.Gateway.MerchantCode,
		UserID:       cfg.Gateway.UserID,
		HTTPTimeout:  cfg.Gateway.HTTPTimeout,
	})
}

func selectBillCycle(detail *entity.BillDetail, billID string) (*entity.BillCycle, error) {
	billID = strings.TrimSpace(billID)
	switch {
	case len(detail.BillCycles) == 0:
		return nil, fmt.Errorf("bill %s has no open billing cycles", detail.BillNo)
	case billID == "" && len(detail.BillCycles) == 1:
		return &detail.BillCycles[0], nil
	case billID == "":
		return nil, fmt.Errorf("bill %s has %d billing cycles, pass --bill-id", detail.BillNo, len(detail.BillCycles))
	}

	for i := range detail.BillCycles {
		if detail.BillCycles[i].BillID == billID {
			return &detail.BillCycles[i], nil
		}
	}
	return nil, fmt.Errorf("billing cycle %s not found on bill %s", billID, detail.BillNo)
}

func printBillCycles(detail *entity.BillDetail) {
	for _, cycle := range detail.BillCycles {
		fmt.Printf("  %s  %s .. %s  %d  %s\n", cycle.BillID, cycle.FromDate, cycle.ToDate, cycle.BillAmount, cycle.Description)
	}
}

func watchReferenceWithConfig(ctx context.Context, cfg *config.Config, ref string) {
	fetcher := poller.NewHTTPFetcher(cfg.Poll.BaseURL, cfg.Poll.HTTPTimeout)
	p := poller.New(fetcher, poller.Config{
		Interval:    cfg.Poll.Interval,
		MaxAttempts: cfg.Poll.MaxAttempts,
	})

	outcome, err := p.Run(ctx, ref)
	if err != nil {
		logrus.WithError(err).Info("Polling cancelled")
		return
	}

	switch outcome.Status {
	case poller.StatusSucceeded:
		fmt.Printf("Payment successful. Transaction ID: %s, Amount: %d\n",
			outcome.Result.TransactionID, outcome.Result.Amount)
	case poller.StatusDeclined:
		fmt.Printf("Payment declined: %s\n", outcome.Message)
	case poller.StatusExhausted:
		fmt.Printf("No result after %d attempts. %s\n", outcome.Attempts, outcome.Message)
	default:
		fmt.Printf("Polling failed: %s\n", outcome.Message)
		os.Exit(1)
	}
}
