package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Claudiov13/JornSports-V2/internal/alert"
	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
	"github.com/Claudiov13/JornSports-V2/internal/models"
)

// requiredColumns is the exact header set of the strict CSV contract.
var requiredColumns = []string{
	"first_name", "last_name", "external_id", "metric", "value", "unit", "recorded_at",
}

// timestampLayouts accepted for recorded_at, most specific first. RFC 3339
// covers the Z-suffixed exports; the rest are common vendor shortenings.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RequestError aborts the whole upload before any row is kept (undecodable
// file, missing headers). Row-level problems never produce one.
type RequestError struct {
	Detail string
}

func (e *RequestError) Error() string { return e.Detail }

// RowError records a single failed CSV row; the batch continues past it.
type RowError struct {
	Row     int               `json:"row"`
	Error   string            `json:"error"`
	RowData map[string]string `json:"row_data"`
}

type StrictResult struct {
	Inserted int        `json:"inserted"`
	Errors   []RowError `json:"errors"`
}

// Service runs CSV ingestion: decode, parse, resolve athletes, persist
// measurements, then one scoring/threshold pass over the inserted rows.
type Service struct {
	resolver     *athlete.Resolver
	athletes     athlete.AthleteRepository
	measurements measurement.MeasurementRepository
	alerts       alert.AlertRepository
}

func NewService(athletes athlete.AthleteRepository, measurements measurement.MeasurementRepository, alerts alert.AlertRepository) *Service {
	return &Service{
		resolver:     athlete.NewResolver(athletes),
		athletes:     athletes,
		measurements: measurements,
		alerts:       alerts,
	}
}

// IngestStrict processes an upload against the fixed seven-column schema.
// Rows are inserted sequentially so later rows of the same file see earlier
// ones; failed rows are collected, never fatal. Returns a RequestError for
// whole-file problems.
func (s *Service) IngestStrict(raw []byte, coachID uint) (*StrictResult, error) {
	text, err := decodeUpload(raw)
	if err != nil {
		return nil, &RequestError{Detail: err.Error()}
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &RequestError{Detail: "file is empty or has no header row"}
	}

	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		found := make([]string, 0, len(colIndex))
		for h := range colIndex {
			found = append(found, h)
		}
		sort.Strings(missing)
		sort.Strings(found)
		return nil, &RequestError{Detail: fmt.Sprintf(
			"missing columns: %s. Headers found: %s",
			strings.Join(missing, ", "), strings.Join(found, ", "))}
	}

	result := &StrictResult{Errors: []RowError{}}
	var inserted []measurement.Measurement

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Error: err.Error()})
			continue
		}

		row := make(map[string]string, len(colIndex))
		for col, idx := range colIndex {
			if idx < len(record) {
				row[col] = strings.TrimSpace(record[idx])
			}
		}

		m, err := s.processStrictRow(row, coachID)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Error: err.Error(), RowData: row})
			continue
		}
		inserted = append(inserted, *m)
		result.Inserted++
	}

	s.scorePass(inserted)
	return result, nil
}

func (s *Service) processStrictRow(row map[string]string, coachID uint) (*measurement.Measurement, error) {
	a, err := s.resolver.FindOrCreate(row["first_name"], row["last_name"], row["external_id"], &coachID)
	if err != nil {
		return nil, err
	}

	ts, err := parseTimestamp(row["recorded_at"])
	if err != nil {
		return nil, fmt.Errorf("invalid recorded_at: '%s'", row["recorded_at"])
	}
	value, err := parseValue(row["value"])
	if err != nil {
		return nil, fmt.Errorf("invalid value: '%s'", row["value"])
	}
	metric := NormMetric(row["metric"])
	if metric == "" {
		return nil, errors.New("metric is required")
	}

	m := &measurement.Measurement{
		AthleteID:  a.ID,
		Metric:     metric,
		Value:      value,
		Unit:       row["unit"],
		RecordedAt: ts,
		Meta:       models.JSONMap{"source": "csv"},
	}
	if err := s.measurements.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// scorePass runs window scoring and the fixed threshold rules over the rows
// a file just inserted. One pass per upload, after the row loop, so scoring
// cost no longer sits inside row processing. Scoring problems are logged,
// never surfaced: the measurements themselves are already safely stored.
func (s *Service) scorePass(inserted []measurement.Measurement) {
	for i := range inserted {
		m := &inserted[i]
		from := m.RecordedAt.AddDate(0, 0, -measurement.WindowDays)
		window, err := s.measurements.WindowValues(m.AthleteID, m.Metric, from, m.RecordedAt)
		if err != nil {
			log.Printf("ingest: window query failed for athlete %d metric %s: %v", m.AthleteID, m.Metric, err)
			continue
		}
		score := measurement.ScoreFromWindow(m.Value, window, measurement.HigherBetter(m.Metric))
		if al := alert.FromScore(m.AthleteID, m.Metric, m.Value, score, m.RecordedAt); al != nil {
			if err := s.alerts.Create(al); err != nil {
				log.Printf("ingest: alert create failed for athlete %d: %v", m.AthleteID, err)
			}
		}
	}
}

// parseTimestamp accepts ISO-8601 with or without a Z suffix or time part.
func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", raw)
}

// parseValue tolerates decimal commas ("12,5").
func parseValue(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
}
