package main

import (
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
	rootCmd := &cobra.Command{
		Use:   "kaalis-cli",
		Short: "Kaalis CLI tool",
		Long:  `A command line interface for interacting with the Kaalis ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Kaalis API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency()
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the full reconciliation report",
		Run: func(cmd *cobra.Command, args []string) {
			printReport()
		},
	}

	ledgerCmd.AddCommand(consistencyCmd, reportCmd)
	rootCmd.AddCommand(ledgerCmd)

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	balanceCmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showBalance(args[0])
		},
	}

	reconcileCmd := &cobra.Command{
		Use:   "reconcile <account-id>",
		Short: "Compare an account's cached balance against its entry log",
		Run: func(cmd *cobra.Command, args []string) {
			reconcileAccount(args[0])
		},
		Args: cobra.ExactArgs(1),
	}

	accountCmd.AddCommand(balanceCmd, reconcileCmd)
	rootCmd.AddCommand(accountCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string) (int, []byte) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	return resp.StatusCode, body
}

func checkConsistency() {
	status, body := get("/api/v1/ledger/consistency")
	if status != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if consistent, ok := result["consistent"].(bool); ok && consistent {
		fmt.Println("Consistency check PASSED")
		return
	}

	fmt.Println("Consistency check FAILED")
	if detail, ok := result["detail"].(string); ok {
		fmt.Printf("Detail: %s\n", detail)
	}
	os.Exit(1)
}

func printReport() {
	status, body := get("/api/v1/ledger/report")
	if status != http.StatusOK {
		fmt.Printf("Report request failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	fmt.Println(string(body))
}

func showBalance(accountID string) {
	status, body := get("/api/v1/accounts/" + accountID + "/balance")
	if status != http.StatusOK {
		fmt.Printf("Balance request failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Account: %s\nBalance: %v %v\n", result["account_number"], result["balance"], result["currency"])
}

func reconcileAccount(accountID string) {
	status, body := get("/api/v1/ledger/accounts/" + accountID + "/reconciliation")
	if status != http.StatusOK {
		fmt.Printf("Reconciliation request failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	fmt.Println(string(body))
}
