package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imfiit/fitcoach/internal/config"
)

// --- profile ---

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage fitness profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create or replace a fitness profile",
	Long: `Create or replace a fitness profile.

Examples:
  fitcoach profile create --user alice --age 30 --weight 80 --height 180 --gender male
  fitcoach profile create --user bob --age 25 --weight 70 --height 175 --gender male \
      --goals weight_loss,endurance --activity active --restrictions vegetarian`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		age, _ := cmd.Flags().GetInt("age")
		weight, _ := cmd.Flags().GetFloat64("weight")
		height, _ := cmd.Flags().GetFloat64("height")
		gender, _ := cmd.Flags().GetString("gender")
		activity, _ := cmd.Flags().GetString("activity")
		level, _ := cmd.Flags().GetString("level")
		goalsStr, _ := cmd.Flags().GetString("goals")
		restrictionsStr, _ := cmd.Flags().GetString("restrictions")

		body := map[string]any{
			"user_id": user,
			"age":     age,
			"weight":  weight,
			"height":  height,
			"gender":  gender,
		}
		if activity != "" {
			body["activity_level"] = activity
		}
		if level != "" {
			body["fitness_level"] = level
		}
		if goalsStr != "" {
			body["goals"] = splitCSV(goalsStr)
		}
		if restrictionsStr != "" {
			body["dietary_restrictions"] = splitCSV(restrictionsStr)
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(context.Background(), "/profile", body)
		if err != nil {
			return err
		}

		var result struct {
			Profile struct {
				BMI      float64 `json:"bmi"`
				Category string  `json:"category"`
			} `json:"profile"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Profile created for %s (BMI %.2f, %s)", user, result.Profile.BMI, result.Profile.Category)
		return nil
	},
}

func init() {
	profileCreateCmd.Flags().String("user", "", "user identifier")
	profileCreateCmd.Flags().Int("age", 0, "age in years")
	profileCreateCmd.Flags().Float64("weight", 0, "weight in kilograms")
	profileCreateCmd.Flags().Float64("height", 0, "height in centimeters")
	profileCreateCmd.Flags().String("gender", "", "male or female")
	profileCreateCmd.Flags().String("activity", "", "activity level (sedentary, light, moderate, active, very_active)")
	profileCreateCmd.Flags().String("level", "", "fitness level (beginner, intermediate, advanced, elite)")
	profileCreateCmd.Flags().String("goals", "", "comma-separated goals (weight_loss, muscle_gain, ...)")
	profileCreateCmd.Flags().String("restrictions", "", "comma-separated dietary restrictions")
	profileCreateCmd.MarkFlagRequired("user")
	profileCreateCmd.MarkFlagRequired("age")
	profileCreateCmd.MarkFlagRequired("weight")
	profileCreateCmd.MarkFlagRequired("height")
	profileCreateCmd.MarkFlagRequired("gender")
	profileCmd.AddCommand(profileCreateCmd)
}

// --- chat ---

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send a message to the coach",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		message := strings.Join(args, " ")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(context.Background(), "/chat", map[string]any{
			"user_id": user,
			"message": message,
		})
		if err != nil {
			return err
		}

		var result struct {
			Text            string   `json:"response"`
			Intent          string   `json:"intent"`
			Confidence      float64  `json:"confidence"`
			Suggestions     []string `json:"suggestions"`
			RequiresProfile bool     `json:"requires_profile"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		if result.RequiresProfile {
			printWarning("No profile yet — create one with 'fitcoach profile create'")
		} else {
			printStep("intent: %s (%.2f)", result.Intent, result.Confidence)
		}
		fmt.Println(result.Text)
		for _, s := range result.Suggestions {
			fmt.Printf("  %s %s\n", colorize(colorCyan, "-"), s)
		}
		return nil
	},
}

func init() {
	chatCmd.Flags().String("user", "", "user identifier")
	chatCmd.MarkFlagRequired("user")
}

// --- assessment ---

var assessmentCmd = &cobra.Command{
	Use:   "assessment",
	Short: "Show the full fitness assessment as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(context.Background(), "/assessment/"+user)
		if err != nil {
			return err
		}

		var report any
		if err := decodeJSON(resp, &report); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	assessmentCmd.Flags().String("user", "", "user identifier")
	assessmentCmd.MarkFlagRequired("user")
}

// --- history ---

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show chat history",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(context.Background(), fmt.Sprintf("/history/%s?limit=%d", user, limit))
		if err != nil {
			return err
		}

		var result struct {
			Messages []struct {
				CreatedAt string `json:"created_at"`
				Body      string `json:"message"`
				Intent    string `json:"intent"`
			} `json:"messages"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		if len(result.Messages) == 0 {
			fmt.Println("No messages yet.")
			return nil
		}
		for _, m := range result.Messages {
			fmt.Printf("%s  %s  %s\n",
				m.CreatedAt,
				colorize(colorCyan, m.Intent),
				m.Body,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("user", "", "user identifier")
	historyCmd.Flags().Int("limit", 20, "maximum number of messages")
	historyCmd.MarkFlagRequired("user")
}

// --- train ---

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Retrain the intent classifier on the built-in corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(context.Background(), "/train", nil)
		if err != nil {
			return err
		}

		var result struct {
			Trained bool `json:"trained"`
			Samples int  `json:"samples"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Classifier trained on %d samples", result.Samples)
		return nil
	},
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			fmt.Printf("  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
