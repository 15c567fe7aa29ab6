package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ArowuTest/lotto-tracker/internal/models"
)

// RecordHeader is the fixed column order of the history file
var RecordHeader = []string{"round", "number1", "number2", "number3", "number4", "number5", "number6", "bonus", "outcome"}

// Accepted header names per column. The Korean names are the ones written by the
// original history files, so those keep loading.
var columnAliases = [][]string{
	{"round", "Round", "회차"},
	{"number1", "Number1", "번호1"},
	{"number2", "Number2", "번호2"},
	{"number3", "Number3", "번호3"},
	{"number4", "Number4", "번호4"},
	{"number5", "Number5", "번호5"},
	{"number6", "Number6", "번호6"},
	{"bonus", "Bonus", "보너스번호"},
	{"outcome", "Outcome", "당첨결과"},
}

// ReadDrawRecords parses a history CSV. Any structural or numeric problem is an ErrParse.
// An input with a header and no rows yields an empty slice.
func ReadDrawRecords(r io.Reader) ([]models.DrawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: history file is empty", models.ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", models.ErrParse, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idx := make([]int, len(columnAliases))
	for i, aliases := range columnAliases {
		idx[i] = findColumnIndex(header, aliases)
		if idx[i] == -1 {
			return nil, fmt.Errorf("%w: column %q not found in history file", models.ErrParse, RecordHeader[i])
		}
	}

	records := []models.DrawRecord{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", models.ErrParse, line, err)
		}

		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", models.ErrParse, line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string, idx []int) (models.DrawRecord, error) {
	var rec models.DrawRecord
	cell := func(col int) (string, error) {
		if idx[col] >= len(row) {
			return "", fmt.Errorf("missing %s", RecordHeader[col])
		}
		return row[idx[col]], nil
	}
	intCell := func(col int) (int, error) {
		s, err := cell(col)
		if err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		// pandas writes integer columns as "7.0" once a NaN has been in the column
		s = strings.TrimSuffix(s, ".0")
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q", RecordHeader[col], s)
		}
		return n, nil
	}

	var err error
	if rec.Round, err = intCell(0); err != nil {
		return rec, err
	}
	for i := 0; i < models.NumbersPerDraw; i++ {
		if rec.Numbers[i], err = intCell(i + 1); err != nil {
			return rec, err
		}
	}
	if rec.Bonus, err = intCell(7); err != nil {
		return rec, err
	}
	if rec.Outcome, err = cell(8); err != nil {
		return rec, err
	}
	return rec, nil
}

// WriteDrawRecords writes the header and every record in order
func WriteDrawRecords(w io.Writer, records []models.DrawRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(RecordHeader); err != nil {
		return err
	}

	row := make([]string, len(RecordHeader))
	for _, rec := range records {
		row[0] = strconv.Itoa(rec.Round)
		for i, n := range rec.Numbers {
			row[i+1] = strconv.Itoa(n)
		}
		row[7] = strconv.Itoa(rec.Bonus)
		row[8] = rec.Outcome
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// findColumnIndex finds the index of a column in the header
func findColumnIndex(header []string, possibleNames []string) int {
	for i, column := range header {
		for _, name := range possibleNames {
			if strings.EqualFold(strings.TrimSpace(column), name) {
				return i
			}
		}
	}
	return -1
}
