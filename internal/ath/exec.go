package ath

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"

	"github.com/gridironlabs/tendency-engine/internal/feed"
)

// AthenaAPI is the slice of the Athena client the runner needs; tests swap in
// a fake.
type AthenaAPI interface {
	StartQueryExecution(ctx context.Context, params *athena.StartQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error)
	GetQueryExecution(ctx context.Context, params *athena.GetQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error)
	GetQueryResults(ctx context.Context, params *athena.GetQueryResultsInput, optFns ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error)
}

type Runner struct {
	Client    AthenaAPI
	Workgroup string
	Database  string
	OutputS3  string // s3://bucket/prefix/
	Logger    *slog.Logger
}

func (r *Runner) ExecAndWait(ctx context.Context, sql string) (*types.QueryExecution, error) {
	startOut, err := r.Client.StartQueryExecution(ctx, &athena.StartQueryExecutionInput{
		QueryString: &sql,
		QueryExecutionContext: &types.QueryExecutionContext{
			Database: &r.Database,
		},
		ResultConfiguration: &types.ResultConfiguration{
			OutputLocation: &r.OutputS3,
		},
		WorkGroup: &r.Workgroup,
	})
	if err != nil {
		return nil, fmt.Errorf("start query: %w", err)
	}
	qid := *startOut.QueryExecutionId
	if r.Logger != nil {
		r.Logger.Info("athena query started", "qid", qid)
	}

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-tick.C:
			ge, err := r.Client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
				QueryExecutionId: &qid,
			})
			if err != nil {
				return nil, fmt.Errorf("get query execution: %w", err)
			}
			switch ge.QueryExecution.Status.State {
			case types.QueryExecutionStateSucceeded:
				if r.Logger != nil && ge.QueryExecution.Statistics != nil {
					stats := ge.QueryExecution.Statistics
					var scannedMB float64
					if stats.DataScannedInBytes != nil {
						scannedMB = float64(*stats.DataScannedInBytes) / 1024.0 / 1024.0
					}
					r.Logger.Info("athena query succeeded", "qid", qid, "scanned_mb", scannedMB)
				}
				return ge.QueryExecution, nil
			case types.QueryExecutionStateFailed:
				msg := ""
				if ge.QueryExecution.Status.StateChangeReason != nil {
					msg = *ge.QueryExecution.Status.StateChangeReason
				}
				return nil, errors.New("athena failed: " + msg)
			case types.QueryExecutionStateCancelled:
				return nil, errors.New("athena cancelled")
			default:
				// still running
			}
		}
	}
}

// FetchPlays selects the feed columns from an Athena table holding the play
// feed and decodes the result set through the same row decoder as the CSV
// loader. Rows come back raw; callers chain feed.Clean and feed.Derive.
func (r *Runner) FetchPlays(ctx context.Context, table string) ([]feed.Play, error) {
	cols := make([]string, len(feed.RequiredColumns))
	for i, c := range feed.RequiredColumns {
		cols[i] = `"` + c + `"`
	}
	sql := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), table)

	exec, err := r.ExecAndWait(ctx, sql)
	if err != nil {
		return nil, err
	}

	var hdr []string
	var recs [][]string
	var next *string
	first := true
	for {
		gr, err := r.Client.GetQueryResults(ctx, &athena.GetQueryResultsInput{
			QueryExecutionId: exec.QueryExecutionId,
			NextToken:        next,
		})
		if err != nil {
			return nil, fmt.Errorf("get results: %w", err)
		}
		rows := gr.ResultSet.Rows
		if first {
			// Athena returns the header as the first row of the first page.
			if len(rows) == 0 {
				return nil, errors.New("empty result set")
			}
			hdr = rowStrings(rows[0])
			rows = rows[1:]
			first = false
		}
		for _, row := range rows {
			recs = append(recs, rowStrings(row))
		}
		if gr.NextToken == nil {
			break
		}
		next = gr.NextToken
	}
	return feed.ReadRows(hdr, recs)
}

func rowStrings(row types.Row) []string {
	out := make([]string, len(row.Data))
	for i, d := range row.Data {
		if d.VarCharValue != nil {
			out[i] = *d.VarCharValue
		}
	}
	return out
}
