package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/gridironlabs/tendency-engine/internal/tendencies"
)

type DynamoDBAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// PutOffenseTeamRows materializes the offensive league table.
// PK=SeasonSide ("<season>#OFF"), SK=Team.
func PutOffenseTeamRows(ctx context.Context, ddb DynamoDBAPI, tableName, season string, rows []tendencies.OffenseTeamRow) error {
	if len(rows) == 0 {
		return nil
	}
	const maxBatch = 25
	now := strconv.FormatInt(time.Now().Unix(), 10)

	for i := 0; i < len(rows); i += maxBatch {
		end := i + maxBatch
		if end > len(rows) {
			end = len(rows)
		}

		reqs := make([]types.WriteRequest, 0, end-i)
		for _, r := range rows[i:end] {
			if r.Team == "" {
				continue
			}
			item := map[string]types.AttributeValue{
				"SeasonSide": &types.AttributeValueMemberS{Value: season + "#OFF"}, // PK
				"Team":       &types.AttributeValueMemberS{Value: r.Team},          // SK
				"Season":     &types.AttributeValueMemberS{Value: season},
				"TotalPlays": &types.AttributeValueMemberN{Value: strconv.Itoa(r.TotalPlays)},
				"RunPct":     &types.AttributeValueMemberN{Value: fmtPct(r.RunPct)},
				"PAPct":      &types.AttributeValueMemberN{Value: fmtPct(r.PAPct)},
				"DBPct":      &types.AttributeValueMemberN{Value: fmtPct(r.DBPct)},
				"MotionPct":  &types.AttributeValueMemberN{Value: fmtPct(r.MotionPct)},
				"UpdatedAt":  &types.AttributeValueMemberN{Value: now},
			}
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(reqs) == 0 {
			continue
		}
		if err := batchWriteWithRetry(ctx, ddb, tableName, reqs); err != nil {
			return fmt.Errorf("batch write offense rows: %w", err)
		}
	}
	return nil
}

// PutDefenseTeamRows materializes the defensive league table.
// PK=SeasonSide ("<season>#DEF"), SK=Team.
func PutDefenseTeamRows(ctx context.Context, ddb DynamoDBAPI, tableName, season string, rows []tendencies.DefenseTeamRow) error {
	if len(rows) == 0 {
		return nil
	}
	const maxBatch = 25
	now := strconv.FormatInt(time.Now().Unix(), 10)

	for i := 0; i < len(rows); i += maxBatch {
		end := i + maxBatch
		if end > len(rows) {
			end = len(rows)
		}

		reqs := make([]types.WriteRequest, 0, end-i)
		for _, r := range rows[i:end] {
			if r.Team == "" {
				continue
			}
			item := map[string]types.AttributeValue{
				"SeasonSide":  &types.AttributeValueMemberS{Value: season + "#DEF"}, // PK
				"Team":        &types.AttributeValueMemberS{Value: r.Team},          // SK
				"Season":      &types.AttributeValueMemberS{Value: season},
				"TotalPlays":  &types.AttributeValueMemberN{Value: strconv.Itoa(r.TotalPlays)},
				"BlitzPct":    &types.AttributeValueMemberN{Value: fmtPct(r.BlitzPct)},
				"ManPct":      &types.AttributeValueMemberN{Value: fmtPct(r.ManPct)},
				"MOFOPct":     &types.AttributeValueMemberN{Value: fmtPct(r.MOFOPct)},
				"DisguisePct": &types.AttributeValueMemberN{Value: fmtPct(r.DisguisePct)},
				"UpdatedAt":   &types.AttributeValueMemberN{Value: now},
			}
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(reqs) == 0 {
			continue
		}
		if err := batchWriteWithRetry(ctx, ddb, tableName, reqs); err != nil {
			return fmt.Errorf("batch write defense rows: %w", err)
		}
	}
	return nil
}

func fmtPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func batchWriteWithRetry(ctx context.Context, ddb DynamoDBAPI, table string, reqs []types.WriteRequest) error {
	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{table: reqs},
	}
	const maxAttempts = 6
	backoff := 120 * time.Millisecond

	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := ddb.BatchWriteItem(ctx, input)
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems) == 0 {
			return nil
		}
		input.RequestItems = out.UnprocessedItems
		time.Sleep(backoff)
		if backoff < 2*time.Second {
			backoff += 120 * time.Millisecond
		}
	}
	return fmt.Errorf("unprocessed items remained after retries for table %s", table)
}
