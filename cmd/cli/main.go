package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schedpay-cli",
		Short: "SchedPay CLI tool",
		Long:  `A command line interface for interacting with the SchedPay API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the SchedPay API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Payment commands
	paymentsCmd := &cobra.Command{
		Use:   "payments",
		Short: "Payment operations",
	}
	paymentsCmd.AddCommand(runPaymentsCmd())
	rootCmd.AddCommand(paymentsCmd)

	// Scheduled payment commands
	scheduledCmd := &cobra.Command{
		Use:   "scheduled-payments",
		Short: "Scheduled payment operations",
	}
	scheduledCmd.AddCommand(duePaymentsCmd())
	rootCmd.AddCommand(scheduledCmd)

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}
	ledgerCmd.AddCommand(consistencyCmd())
	rootCmd.AddCommand(ledgerCmd)

	return rootCmd
}

func runPaymentsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute all payments due on a date (defaults to today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date != "" {
				if _, err := time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
			}

			payload, _ := json.Marshal(map[string]string{"date": date})
			return apiPost("/api/v1/payments/run", payload)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Run payments as of this date (YYYY-MM-DD)")

	return cmd
}

func duePaymentsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List scheduled payments due on a date (defaults to today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/scheduled-payments/due"
			if date != "" {
				if _, err := time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
				path += "?date=" + date
			}

			return apiGet(path)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Select payments due on this date (YYYY-MM-DD)")

	return cmd
}

func consistencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/ledger/consistency")
		},
	}
}

func apiGet(path string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func apiPost(path string, payload []byte) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(decoded)

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to format output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
