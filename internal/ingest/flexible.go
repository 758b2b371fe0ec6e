package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
	"github.com/Claudiov13/JornSports-V2/internal/models"
)

// Column role candidates for schema-less uploads. All matching is done on
// trimmed, lowercased headers.
var (
	dateKeys     = []string{"recorded_at", "date", "data", "dia", "datetime", "timestamp"}
	metricKeys   = []string{"metric", "metrica", "métrica", "variable", "parameter"}
	valueKeys    = []string{"value", "valor", "result", "resultado"}
	unitKeys     = []string{"unit", "unidade", "units"}
	playerIDKeys = []string{"player_id", "athlete_id", "uid", "uuid"}
	fullNameKeys = []string{"name", "full_name", "player", "player_name", "athlete", "atleta", "nome_completo"}

	firstLastPairs = [][2]string{
		{"first_name", "last_name"},
		{"nome", "sobrenome"},
		{"first", "last"},
		{"firstname", "lastname"},
	}
)

type FlexibleResult struct {
	Inserted        int      `json:"inserted"`
	PlayersTouched  int      `json:"players_touched"`
	MetricsDetected []string `json:"metrics_detected"`
}

// flexHeader is the per-upload column role assignment worked out from the
// header row of a schema-less file.
type flexHeader struct {
	cols      []string
	dateCol   int
	metricCol int
	valueCol  int
	unitCol   int
	pidCol    int
	firstCol  int
	lastCol   int
	fullCol   int
}

func (h *flexHeader) isLong() bool { return h.metricCol >= 0 && h.valueCol >= 0 }

// identityCol reports whether column i carries identity or date data rather
// than a metric, so the wide-shape pass knows to skip it.
func (h *flexHeader) identityCol(i int) bool {
	return i == h.dateCol || i == h.unitCol || i == h.pidCol ||
		i == h.firstCol || i == h.lastCol || i == h.fullCol
}

// IngestFlexible handles uploads with no fixed schema. It detects column
// roles from the header, treats the file as long-format when metric and
// value columns exist and wide-format otherwise, and silently skips any row
// it cannot resolve or parse. Nothing here is fatal past header detection.
func (s *Service) IngestFlexible(raw []byte, coachID uint) (*FlexibleResult, error) {
	text, err := decodeUpload(raw)
	if err != nil {
		return nil, &RequestError{Detail: err.Error()}
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headerRow, err := reader.Read()
	if err != nil {
		return nil, &RequestError{Detail: "file is empty or has no header row"}
	}
	header := detectColumns(headerRow)
	if header.dateCol < 0 {
		return nil, &RequestError{Detail: "could not detect a date column"}
	}
	if header.pidCol < 0 && header.firstCol < 0 && header.fullCol < 0 {
		return nil, &RequestError{Detail: "could not detect a player identity column"}
	}

	touched := make(map[uint]bool)
	metrics := make(map[string]bool)
	result := &FlexibleResult{}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}

		a, ok := s.resolveFlexAthlete(header, record, coachID)
		if !ok {
			continue
		}
		ts, err := parseTimestamp(cell(record, header.dateCol))
		if err != nil {
			continue
		}

		if header.isLong() {
			result.Inserted += s.insertLongRow(header, record, a.ID, ts, metrics)
		} else {
			result.Inserted += s.insertWideRow(header, record, a.ID, ts, metrics)
		}
		touched[a.ID] = true
	}

	result.PlayersTouched = len(touched)
	result.MetricsDetected = sortedKeys(metrics)
	return result, nil
}

func (s *Service) insertLongRow(h *flexHeader, record []string, athleteID uint, ts time.Time, metrics map[string]bool) int {
	metric := NormMetric(cell(record, h.metricCol))
	if metric == "" {
		return 0
	}
	value, err := parseValue(cell(record, h.valueCol))
	if err != nil {
		return 0
	}
	m := &measurement.Measurement{
		AthleteID:  athleteID,
		Metric:     metric,
		Value:      value,
		Unit:       cell(record, h.unitCol),
		RecordedAt: ts,
		Meta:       models.JSONMap{"source": "csv", "format": "long"},
	}
	if err := s.measurements.Create(m); err != nil {
		return 0
	}
	metrics[metric] = true
	return 1
}

// insertWideRow treats every non-identity column with a numeric cell as a
// separate metric named after its header.
func (s *Service) insertWideRow(h *flexHeader, record []string, athleteID uint, ts time.Time, metrics map[string]bool) int {
	inserted := 0
	for i, col := range h.cols {
		if h.identityCol(i) || i >= len(record) {
			continue
		}
		metric := NormMetric(col)
		if metric == "" {
			continue
		}
		value, err := parseValue(strings.TrimSpace(record[i]))
		if err != nil {
			continue
		}
		m := &measurement.Measurement{
			AthleteID:  athleteID,
			Metric:     metric,
			Value:      value,
			RecordedAt: ts,
			Meta:       models.JSONMap{"source": "csv", "format": "wide"},
		}
		if err := s.measurements.Create(m); err != nil {
			continue
		}
		metrics[metric] = true
		inserted++
	}
	return inserted
}

// resolveFlexAthlete tries, in order: explicit player-id column parsed as a
// UUID, a first+last name pair, then a single full-name column split on its
// first space. New athletes created through names are stamped with the
// uploading coach as owner.
func (s *Service) resolveFlexAthlete(h *flexHeader, record []string, coachID uint) (*athlete.Athlete, bool) {
	if h.pidCol >= 0 {
		if uid, err := uuid.Parse(cell(record, h.pidCol)); err == nil {
			if a, err := s.athletes.GetByUID(uid); err == nil && a != nil {
				return a, true
			}
		}
	}
	if h.firstCol >= 0 && h.lastCol >= 0 {
		first, last := cell(record, h.firstCol), cell(record, h.lastCol)
		if first != "" && last != "" {
			a, err := s.resolver.FindOrCreate(first, last, "", &coachID)
			if err == nil && a != nil {
				return a, true
			}
		}
	}
	if h.fullCol >= 0 {
		fields := strings.Fields(cell(record, h.fullCol))
		if len(fields) >= 2 {
			a, err := s.resolver.FindOrCreate(fields[0], strings.Join(fields[1:], " "), "", &coachID)
			if err == nil && a != nil {
				return a, true
			}
		}
	}
	return nil, false
}

func detectColumns(headerRow []string) *flexHeader {
	h := &flexHeader{
		cols:      make([]string, len(headerRow)),
		dateCol:   -1,
		metricCol: -1,
		valueCol:  -1,
		unitCol:   -1,
		pidCol:    -1,
		firstCol:  -1,
		lastCol:   -1,
		fullCol:   -1,
	}
	lower := make(map[string]int, len(headerRow))
	for i, col := range headerRow {
		trimmed := strings.TrimSpace(col)
		h.cols[i] = trimmed
		key := strings.ToLower(trimmed)
		if _, seen := lower[key]; !seen {
			lower[key] = i
		}
	}

	h.dateCol = firstMatch(lower, dateKeys)
	h.metricCol = firstMatch(lower, metricKeys)
	h.valueCol = firstMatch(lower, valueKeys)
	h.unitCol = firstMatch(lower, unitKeys)
	h.pidCol = firstMatch(lower, playerIDKeys)
	h.fullCol = firstMatch(lower, fullNameKeys)
	for _, pair := range firstLastPairs {
		first, okF := lower[pair[0]]
		last, okL := lower[pair[1]]
		if okF && okL {
			h.firstCol, h.lastCol = first, last
			break
		}
	}
	return h
}

func firstMatch(lower map[string]int, candidates []string) int {
	for _, key := range candidates {
		if i, ok := lower[key]; ok {
			return i
		}
	}
	return -1
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
