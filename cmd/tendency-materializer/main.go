package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/gridironlabs/tendency-engine/internal/ath"
	"github.com/gridironlabs/tendency-engine/internal/feed"
	"github.com/gridironlabs/tendency-engine/internal/store"
	"github.com/gridironlabs/tendency-engine/internal/tendencies"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("missing env", "key", k)
		os.Exit(1)
	}
	return v
}

// Computes the all-team offense/defense tendency tables for a season feed and
// materializes them to DynamoDB. Feed comes from ATHENA_TABLE when set,
// otherwise from the CSV at FEED_PATH.
func handler(ctx context.Context) error {
	mode := strings.ToLower(getenv("MODE", "all")) // offense | defense | all
	season := getenv("SEASON", "2025")
	outTable := mustenv("TABLE_NAME")

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	ddbc := ddb.NewFromConfig(cfg)

	var raw []feed.Play
	if athTable := os.Getenv("ATHENA_TABLE"); athTable != "" {
		runner := &ath.Runner{
			Client:    athena.NewFromConfig(cfg),
			Workgroup: getenv("ATHENA_WORKGROUP", "primary"),
			Database:  mustenv("ATHENA_DATABASE"),
			OutputS3:  mustenv("ATHENA_OUTPUT_S3"),
			Logger:    slog.Default(),
		}
		raw, err = runner.FetchPlays(ctx, athTable)
		if err != nil {
			return fmt.Errorf("athena feed: %w", err)
		}
	} else {
		raw, err = feed.Load(mustenv("FEED_PATH"))
		if err != nil {
			return fmt.Errorf("csv feed: %w", err)
		}
	}

	plays := feed.Derive(feed.Clean(raw))
	slog.Info("feed ready", "raw", len(raw), "plays", len(plays), "season", season)

	// Season-wide tables: no situational filters.
	var f tendencies.Filters

	if mode == "offense" || mode == "all" {
		rows := tendencies.AllTeamsOffense(plays, f)
		if err := store.PutOffenseTeamRows(ctx, ddbc, outTable, season, rows); err != nil {
			return err
		}
		slog.Info("materialized offense table", "teams", len(rows), "table", outTable)
	}

	if mode == "defense" || mode == "all" {
		rows := tendencies.AllTeamsDefense(plays, f)
		if err := store.PutDefenseTeamRows(ctx, ddbc, outTable, season, rows); err != nil {
			return err
		}
		slog.Info("materialized defense table", "teams", len(rows), "table", outTable)
	}

	return nil
}

func main() {
	lambda.Start(handler)
}
