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
		Use:   "betctl",
		Short: "BetControl CLI tool",
		Long:  `A command line interface for interacting with the BetControl API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the BetControl API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Reporting operations",
	}

	excederamCmd := &cobra.Command{
		Use:   "excederam-limite [mes]",
		Short: "List users whose month spend exceeds their limit",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			reportExcederamLimite(args[0])
		},
	}

	reportCmd.AddCommand(excederamCmd)
	rootCmd.AddCommand(reportCmd)

	// Stats commands
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Bet statistics",
	}

	mediaCmd := &cobra.Command{
		Use:   "media",
		Short: "Show the average bet amount",
		Run: func(cmd *cobra.Command, args []string) {
			showMedia()
		},
	}

	acimaCmd := &cobra.Command{
		Use:   "acima-da-media",
		Short: "List bets above the average amount",
		Run: func(cmd *cobra.Command, args []string) {
			listAcimaDaMedia()
		},
	}

	statsCmd.AddCommand(mediaCmd)
	statsCmd.AddCommand(acimaCmd)
	rootCmd.AddCommand(statsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func fetch(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}

func reportExcederamLimite(mes string) {
	body := fetch("/api/v1/usuarios/excederam-limite/" + mes)

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if len(rows) == 0 {
		fmt.Printf("No users exceeded their limit in %s\n", mes)
		return
	}

	for _, row := range rows {
		fmt.Printf("%s <%s>: gasto %v / limite %v\n",
			row["nome"], row["email"], row["gasto"], row["limite"])
	}
}

func showMedia() {
	body := fetch("/api/v1/apostas/media")

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Media: %v\n", result["media"])
}

func listAcimaDaMedia() {
	body := fetch("/api/v1/apostas/acima-da-media")

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if len(rows) == 0 {
		fmt.Println("No bets above the average")
		return
	}

	for _, row := range rows {
		fmt.Printf("%s: valor %v (usuario %s)\n", row["id"], row["valor"], row["usuario_id"])
	}
}
