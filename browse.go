package orbrowser

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Browser drives one query-and-present run: fetch the catalog, match
// the queries against it, render either a single full record or a
// comparison table.
type Browser struct {
	Client *Client
	Out    io.Writer
	Opts   RenderOptions
	Log    *zap.SugaredLogger
}

// Run executes the flow for the given queries. A single query that
// exactly matches a record id short-circuits to the detailed view;
// everything else goes through substring search with the per-query
// results unioned and deduplicated by id. Returns ErrNoQuery before
// touching the network, ErrNoMatch when nothing matched, or a fetch
// error as-is.
func (b *Browser) Run(ctx context.Context, queries []string) error {
	if len(queries) == 0 {
		return ErrNoQuery
	}
	log := b.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	records, err := b.Client.FetchModels(ctx)
	if err != nil {
		return err
	}

	if len(queries) == 1 {
		if rec, ok := Lookup(records, queries[0]); ok {
			log.Debugw("exact id match", "id", queries[0])
			return WriteDetail(b.Out, rec, b.Opts)
		}
	}

	matches := SearchAll(records, queries)
	log.Debugw("search finished", "queries", len(queries), "matches", len(matches))
	if len(matches) == 0 {
		return fmt.Errorf("%w matching %s", ErrNoMatch, quoteQueries(queries))
	}

	fmt.Fprintf(b.Out, "Found %d model(s) matching %s:\n\n", len(matches), quoteQueries(queries))
	return WriteTable(b.Out, matches, b.Opts)
}

func quoteQueries(queries []string) string {
	quoted := make([]string, len(queries))
	for i, q := range queries {
		quoted[i] = "'" + q + "'"
	}
	return strings.Join(quoted, ", ")
}
