package ath

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"

	"github.com/gridironlabs/tendency-engine/internal/feed"
)

// fake client implementing AthenaAPI; serves a fixed result set in pages
type fakeAthena struct {
	pages     [][]types.Row
	pageCalls int
	state     types.QueryExecutionState
}

func (f *fakeAthena) StartQueryExecution(ctx context.Context, in *athena.StartQueryExecutionInput, _ ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error) {
	return &athena.StartQueryExecutionOutput{QueryExecutionId: aws.String("qid-1")}, nil
}

func (f *fakeAthena) GetQueryExecution(ctx context.Context, in *athena.GetQueryExecutionInput, _ ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error) {
	return &athena.GetQueryExecutionOutput{
		QueryExecution: &types.QueryExecution{
			QueryExecutionId: in.QueryExecutionId,
			Status:           &types.QueryExecutionStatus{State: f.state},
		},
	}, nil
}

func (f *fakeAthena) GetQueryResults(ctx context.Context, in *athena.GetQueryResultsInput, _ ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error) {
	page := f.pages[f.pageCalls]
	f.pageCalls++
	out := &athena.GetQueryResultsOutput{
		ResultSet: &types.ResultSet{Rows: page},
	}
	if f.pageCalls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func row(vals ...string) types.Row {
	data := make([]types.Datum, len(vals))
	for i, v := range vals {
		data[i] = types.Datum{VarCharValue: aws.String(v)}
	}
	return types.Row{Data: data}
}

func TestFetchPlaysDecodesPages(t *testing.T) {
	hdr := row(feed.RequiredColumns...)
	// run play and pass play, short rows (trailing columns empty)
	p1 := row("R", "PHI", "DAL", "1", "1", "1", "10", "75", "14:21", "ZONE")
	p2 := row("P", "DAL", "PHI", "1", "2")

	f := &fakeAthena{
		pages: [][]types.Row{
			{hdr, p1},
			{p2},
		},
		state: types.QueryExecutionStateSucceeded,
	}
	r := &Runner{Client: f, Workgroup: "primary", Database: "nfl", OutputS3: "s3://out/"}

	plays, err := r.FetchPlays(context.Background(), "play_feed")
	if err != nil {
		t.Fatalf("FetchPlays: %v", err)
	}
	if len(plays) != 2 {
		t.Fatalf("got %d plays, want 2", len(plays))
	}
	if f.pageCalls != 2 {
		t.Errorf("pageCalls = %d, want 2 (paged via NextToken)", f.pageCalls)
	}
	if plays[0].OffTeam != "PHI" || plays[0].RunConcept != "ZONE" || plays[0].Distance != 10 {
		t.Errorf("first play decoded wrong: %+v", plays[0])
	}
	if plays[1].RunPass != "P" || plays[1].Quarter != 2 {
		t.Errorf("second play decoded wrong: %+v", plays[1])
	}
}

func TestExecAndWaitFailedQuery(t *testing.T) {
	f := &fakeAthena{state: types.QueryExecutionStateFailed}
	r := &Runner{Client: f, Workgroup: "primary", Database: "nfl", OutputS3: "s3://out/"}
	if _, err := r.ExecAndWait(context.Background(), "SELECT 1"); err == nil {
		t.Fatal("ExecAndWait succeeded on a failed query, want error")
	}
}
