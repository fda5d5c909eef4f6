package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var servicesServiceCode string

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List payable services, or the providers of one service",
	Run:   runServices,
}

func init() {
	servicesCmd.Flags().StringVar(&servicesServiceCode, "service", "", "list providers for this service code instead")
	rootCmd.AddCommand(servicesCmd)
}

func runServices(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	client := mustGatewayClient(cfg)
	ctx := context.Background()

	if code := strings.TrimSpace(servicesServiceCode); code != "" {
		providers, err := client.ListProviders(ctx, code)
		if err != nil {
			logrus.WithError(err).Fatal("Listing providers failed")
		}
		for _, provider := range providers {
			fmt.Printf("%s\t%s\n", provider.Code, provider.Name)
		}
		return
	}

	services, err := client.ListServices(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Listing services failed")
	}
	for _, service := range services {
		fmt.Printf("%s\t%s\n", service.Code, service.Name)
	}
}
