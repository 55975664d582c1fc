package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hiresight/talentd/internal/config"
	"github.com/hiresight/talentd/internal/logger"
	"github.com/hiresight/talentd/internal/matching"
	"github.com/hiresight/talentd/internal/observability"
	"github.com/hiresight/talentd/internal/rediscovery"
	"github.com/hiresight/talentd/internal/schemas"
	"github.com/hiresight/talentd/internal/types"
)

var (
	matchRequirementPath string
	matchCandidatesPath  string
	matchConfigPath      string
	matchJSONOutput      bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Run a one-shot matching pass from JSON files",
	Long: `Validate a requirement profile and a candidate pool against their JSON Schemas,
run the matching engine, and print the ranked results.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchRequirementPath, "requirement", "", "Path to requirement profile JSON (required)")
	matchCmd.Flags().StringVar(&matchCandidatesPath, "candidates", "", "Path to candidate pool JSON (required)")
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to JSON config file")
	matchCmd.Flags().BoolVar(&matchJSONOutput, "json", false, "Print raw JSON instead of formatted boxes")
	_ = matchCmd.MarkFlagRequired("requirement")
	_ = matchCmd.MarkFlagRequired("candidates")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if matchConfigPath != "" {
		loaded, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	log, err := logger.New(cfg.Verbose, cfg.JSONLog)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := validateInputFiles(); err != nil {
		return err
	}

	var requirement types.RequirementProfile
	if err := readJSONFile(matchRequirementPath, &requirement); err != nil {
		return err
	}
	var candidates []types.CandidateProfile
	if err := readJSONFile(matchCandidatesPath, &candidates); err != nil {
		return err
	}

	engineOpts := []matching.Option{matching.WithLogger(log)}
	if cfg.Workers > 0 {
		engineOpts = append(engineOpts, matching.WithWorkers(cfg.Workers))
	}
	if len(cfg.TrendingSkills) > 0 {
		engineOpts = append(engineOpts, matching.WithDetector(rediscovery.New(
			rediscovery.WithTrendingSkills(cfg.TrendingSkills),
			rediscovery.WithLogger(log),
		)))
	}

	results, err := matching.New(engineOpts...).ComputeMatches(context.Background(), &requirement, candidates)
	if err != nil {
		return fmt.Errorf("matching run failed: %w", err)
	}

	if matchJSONOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRequirement(&requirement)
	printer.PrintMatchResults(results)
	if cfg.Verbose && len(results) > 0 {
		printer.PrintExplanation(&results[0])
	}
	return nil
}

// validateInputFiles checks both inputs against their JSON Schemas before
// decoding. Skipped when the schema files cannot be located (installed binary
// running outside the repo).
func validateInputFiles() error {
	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "requirement_profile.schema.json")); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, matchRequirementPath); err != nil {
			return fmt.Errorf("requirement file rejected: %w", err)
		}
	}
	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "candidate_pool.schema.json")); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, matchCandidatesPath); err != nil {
			return fmt.Errorf("candidates file rejected: %w", err)
		}
	}
	return nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
