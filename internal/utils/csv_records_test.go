package utils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/lotto-tracker/internal/models"
)

func TestWriteThenReadDrawRecords(t *testing.T) {
	records := []models.DrawRecord{
		{Round: 1163, Numbers: [6]int{1, 2, 3, 4, 5, 6}, Bonus: 7, Outcome: models.NoWinOutcome},
		{Round: 1164, Numbers: [6]int{6, 12, 23, 25, 31, 44}, Bonus: 9, Outcome: "1st prize! ([6, 12, 23, 25, 31, 44]), 5th prize! ([6, 12, 23])"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDrawRecords(&buf, records))

	firstLine := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, "round,number1,number2,number3,number4,number5,number6,bonus,outcome", firstLine)

	got, err := ReadDrawRecords(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadDrawRecords_KeepsOutcomeWhitespace(t *testing.T) {
	records := []models.DrawRecord{
		{Round: 1163, Numbers: [6]int{1, 2, 3, 4, 5, 6}, Bonus: 7, Outcome: " padded "},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDrawRecords(&buf, records))

	got, err := ReadDrawRecords(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, " padded ", got[0].Outcome)
}

func TestReadDrawRecords_TrimsNumericCells(t *testing.T) {
	input := strings.Join(RecordHeader, ",") + "\n" + " 1163 , 1,2,3,4,5, 6 , 7 ,No win\n"

	got, err := ReadDrawRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1163, got[0].Round)
	assert.Equal(t, [6]int{1, 2, 3, 4, 5, 6}, got[0].Numbers)
	assert.Equal(t, 7, got[0].Bonus)
	assert.Equal(t, models.NoWinOutcome, got[0].Outcome)
}

func TestReadDrawRecords_HeaderOnly(t *testing.T) {
	got, err := ReadDrawRecords(strings.NewReader(strings.Join(RecordHeader, ",") + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestReadDrawRecords_OriginalHeaders(t *testing.T) {
	data := "\ufeff회차,번호1,번호2,번호3,번호4,번호5,번호6,보너스번호,당첨결과\n" +
		"1160,7,13,18,36,39,45,19,❌ 꽝!\n" +
		"1161.0,2,12,20,24,34,42,37,🎊 5등 당첨! ([2, 8, 9, 17, 33, 43])\n"

	got, err := ReadDrawRecords(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1160, got[0].Round)
	assert.Equal(t, [6]int{7, 13, 18, 36, 39, 45}, got[0].Numbers)
	assert.Equal(t, 19, got[0].Bonus)
	assert.Equal(t, "❌ 꽝!", got[0].Outcome)
	assert.Equal(t, 1161, got[1].Round)
}

func TestReadDrawRecords_ReorderedColumns(t *testing.T) {
	data := "outcome,bonus,round,number1,number2,number3,number4,number5,number6\n" +
		"No win,7,1163,1,2,3,4,5,6\n"

	got, err := ReadDrawRecords(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.DrawRecord{Round: 1163, Numbers: [6]int{1, 2, 3, 4, 5, 6}, Bonus: 7, Outcome: "No win"}, got[0])
}

func TestReadDrawRecords_Malformed(t *testing.T) {
	header := strings.Join(RecordHeader, ",") + "\n"
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"missing column", "round,number1,number2,number3,number4,number5,number6,bonus\n"},
		{"non numeric round", header + "abc,1,2,3,4,5,6,7,No win\n"},
		{"non numeric number", header + "1,1,2,x,4,5,6,7,No win\n"},
		{"short row", header + "1,1,2,3\n"},
		{"broken quoting", header + "1,1,2,3,4,5,6,7,\"No win\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDrawRecords(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, models.ErrParse)
		})
	}
}

type memoryRepo struct {
	records []models.DrawRecord
	saves   int
}

func (m *memoryRepo) Load(ctx context.Context) ([]models.DrawRecord, error) {
	out := make([]models.DrawRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *memoryRepo) Save(ctx context.Context, records []models.DrawRecord) error {
	m.saves++
	m.records = append([]models.DrawRecord(nil), records...)
	return nil
}

func TestCSVImporter_ImportDrawRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.csv")
	data := strings.Join(RecordHeader, ",") + "\n" +
		"1162,1,2,3,4,5,6,7,No win\n" +
		"1163,8,9,10,11,12,13,14,No win\n" +
		"1163,8,9,10,11,12,13,14,No win\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	existing := models.DrawRecord{Round: 1162, Numbers: [6]int{1, 2, 3, 4, 5, 6}, Bonus: 7, Outcome: "kept"}
	repo := &memoryRepo{records: []models.DrawRecord{existing}}

	result, err := NewCSVImporter(repo).ImportDrawRecords(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.SkippedDuplicates)
	require.Len(t, repo.records, 2)
	assert.Equal(t, existing, repo.records[0])
	assert.Equal(t, 1163, repo.records[1].Round)
}

func TestCSVImporter_NothingNewDoesNotSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(RecordHeader, ",")+"\n"), 0o644))

	repo := &memoryRepo{}
	result, err := NewCSVImporter(repo).ImportDrawRecords(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 0, repo.saves)
}

func TestCSVImporter_MissingFile(t *testing.T) {
	_, err := NewCSVImporter(&memoryRepo{}).ImportDrawRecords(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
