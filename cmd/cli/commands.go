package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var (
	playerName string
	outputFile string
)

func init() {
	playersCmd.Flags().StringVarP(&playerName, "player", "p", "", "Show a single player instead of the whole roster")
	iconCmd.Flags().StringVarP(&outputFile, "output", "o", "", "File to write the PNG to (defaults to <player>.png)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(dateRangeCmd)
	rootCmd.AddCommand(iconCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd.OutOrStdout(), "/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the tracked players and their history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if playerName != "" {
			return performGetRequest(cmd.OutOrStdout(), "/player/get?player="+url.QueryEscape(playerName))
		}
		return performGetRequest(cmd.OutOrStdout(), "/player/get_all")
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh rank and match history for the whole roster",
	Long: `Triggers a full refresh and waits for it to finish. The server answers
404 when a refresh is already running.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd.OutOrStdout(), "/player/add_rank_to_history")
	},
}

var dateRangeCmd = &cobra.Command{
	Use:   "date-range",
	Short: "Show every day covered by the roster's rank history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd.OutOrStdout(), "/player/get_date_range")
	},
}

var iconCmd = &cobra.Command{
	Use:   "icon <player>",
	Short: "Download a player's profile icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, body, err := get("/player/profile_icon?player=" + url.QueryEscape(args[0]))
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("server returned %d: %s", status, body)
		}
		target := outputFile
		if target == "" {
			target = args[0] + ".png"
		}
		if err := os.WriteFile(target, body, 0o644); err != nil {
			return fmt.Errorf("failed to write icon: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(body), target)
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd.OutOrStdout(), "/metrics")
	},
}

func performGetRequest(out io.Writer, endpoint string) error {
	fmt.Fprintf(out, "Making request to %s\n", host+endpoint)

	status, body, err := get(endpoint)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Status Code: %d\n", status)
	fmt.Fprintln(out, "Response Body:")
	fmt.Fprintln(out, string(body))

	return nil
}

func get(endpoint string) (int, []byte, error) {
	resp, err := http.Get(host + endpoint)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}
