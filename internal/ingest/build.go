package ingest

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/preview"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/sheet"
)

// FileInput is one uploaded file held in memory.
type FileInput struct {
	Name string
	Data []byte
}

// Result is the outcome of one build run: the joined, sorted record set,
// the securities encountered in master files, and per-file parse failures.
type Result struct {
	Records          []model.TradeRecord
	Securities       map[string]model.SecurityRecord
	FileErrors       []model.FileError
	MaxRatingColumns int
}

// parsedFile holds one file's parse output before merging. Parses share no
// state; each file is an independent unit of failure.
type parsedFile struct {
	name    string
	schema  sheet.Schema
	headers []string
	rows    [][]sheet.Cell
	err     error
}

// Build parses all files concurrently, then merges sequentially in input
// order: master files populate the securities lookup (last write wins),
// exchange files contribute trade records, and every record is joined
// against the lookup. A failed file never aborts its siblings; its error
// is reported in the result after all parses settle.
func Build(ctx context.Context, files []FileInput) (*Result, error) {
	parsed := make([]parsedFile, len(files))

	g, _ := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			parsed[i].name = f.Name
			headers, rows, err := sheet.ParseSheet(bytes.NewReader(f.Data), f.Name)
			if err != nil {
				parsed[i].err = err
				return nil
			}
			parsed[i].headers = headers
			parsed[i].rows = rows
			parsed[i].schema = sheet.DetectSchema(headers, f.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Securities: make(map[string]model.SecurityRecord),
	}

	// Masters first so trade extraction order cannot affect the join.
	for _, p := range parsed {
		if p.err == nil && p.schema == sheet.SchemaMaster {
			ExtractMaster(p.headers, p.rows, result.Securities)
		}
	}

	for _, p := range parsed {
		switch {
		case p.err != nil:
			result.FileErrors = append(result.FileErrors, model.FileError{File: p.name, Error: p.err.Error()})
		case p.schema == sheet.SchemaNSE:
			result.Records = append(result.Records, ExtractNSE(p.headers, p.rows)...)
		case p.schema == sheet.SchemaBSE:
			result.Records = append(result.Records, ExtractBSE(p.headers, p.rows)...)
		case p.schema == sheet.SchemaMaster:
			// already folded into the lookup
		default:
			result.FileErrors = append(result.FileErrors, model.FileError{File: p.name, Error: "unrecognized file format"})
		}
	}

	JoinMaster(result.Records, result.Securities)
	preview.SortRecords(result.Records)
	result.MaxRatingColumns = MaxRatingColumns(result.Records)

	return result, nil
}

// JoinMaster attaches issuer and rating from the securities lookup to each
// record, then derives RatingParts. The per-record lookup is pure, so the
// join is idempotent and order-independent across records.
func JoinMaster(records []model.TradeRecord, master map[string]model.SecurityRecord) {
	for i := range records {
		if sec, ok := master[records[i].Identifier]; ok {
			records[i].IssuerDetails = sec.Issuer
			records[i].Rating = sec.Rating
		}
		records[i].RatingParts = SplitRatingParts(records[i].Rating)
	}
}

var ratingPartSeparator = regexp.MustCompile(`[;|]`)

// SplitRatingParts splits a raw rating string into its ordered non-empty
// parts on ';' and '|'.
func SplitRatingParts(rating string) []string {
	if strings.TrimSpace(rating) == "" {
		return nil
	}
	var parts []string
	for _, p := range ratingPartSeparator.Split(rating, -1) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// MaxRatingColumns returns the widest RatingParts length across records,
// never less than 1. Display-column sizing is its only consumer.
func MaxRatingColumns(records []model.TradeRecord) int {
	maxCols := 1
	for _, r := range records {
		if len(r.RatingParts) > maxCols {
			maxCols = len(r.RatingParts)
		}
	}
	return maxCols
}
