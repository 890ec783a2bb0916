package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/autoservice/workshop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 20, 15, 4, 5, 123000000, time.UTC)

func apt(id, date string) model.Appointment {
	return model.Appointment{ID: id, Date: date, Time: "10:00", CarBrand: "BMW", CarModel: "X5"}
}

func ids(list []model.Appointment) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func sample() []model.Appointment {
	return []model.Appointment{
		apt("old", "2024-01-10"),
		apt("today", "2024-01-20"),
		apt("yesterday", "2024-01-19"),
		apt("future", "2024-02-01"),
		apt("broken", "someday"),
	}
}

func TestPartition(t *testing.T) {
	past, future := Partition(sample(), now)

	assert.Equal(t, []string{"old", "yesterday"}, ids(past))
	assert.Equal(t, []string{"today", "future", "broken"}, ids(future))
}

func TestPartition_Idempotent(t *testing.T) {
	past, future := Partition(sample(), now)

	pastAgain, none := Partition(past, now)
	assert.Equal(t, past, pastAgain)
	assert.Empty(t, none)

	nothing, futureAgain := Partition(future, now)
	assert.Empty(t, nothing)
	assert.Equal(t, future, futureAgain)
}

func TestExport(t *testing.T) {
	doc := Export(sample(), now)

	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, "2024-01-20T15:04:05.123Z", doc.Timestamp)
	assert.Equal(t, []string{"today", "future", "broken"}, ids(doc.Appointments))

	empty := Export(nil, now)
	assert.NotNil(t, empty.Appointments)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, empty))
	assert.Contains(t, buf.String(), `"appointments": []`)
}

func TestImport_KeepsPastReplacesFuture(t *testing.T) {
	doc := Document{Appointments: []model.Appointment{apt("restored", "2024-01-25"), apt("restored-old", "2023-12-01")}}

	got := Import(sample(), doc, now)
	assert.Equal(t, []string{"old", "yesterday", "restored", "restored-old"}, ids(got))
}

func TestRoundTrip(t *testing.T) {
	for _, at := range []time.Time{
		now,
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 6, 15, 23, 59, 0, 0, time.UTC),
	} {
		in := []model.Appointment{
			apt("a", "2024-01-10"),
			apt("b", "2024-01-20"),
			apt("c", "2024-02-01"),
			apt("d", "2023-06-01"),
		}

		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, Export(in, at)))
		doc, err := Decode(&buf)
		require.NoError(t, err)

		got := ids(Import(in, *doc, at))
		want := ids(in)
		sort.Strings(got)
		sort.Strings(want)
		assert.Equal(t, want, got, at.String())
	}
}

func TestDecode_FormatErrors(t *testing.T) {
	cases := map[string]string{
		"not json":        "{oops",
		"missing":         `{"version":1}`,
		"null":            `{"appointments":null}`,
		"object":          `{"appointments":{}}`,
		"string":          `{"appointments":"[]"}`,
		"top level array": `[]`,
		"top level null":  `null`,
		"empty input":     ``,
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := Decode(strings.NewReader(in))
			require.ErrorIs(t, err, model.ErrFormat)
			assert.Nil(t, doc)
		})
	}
}

func TestDecode_ReadError(t *testing.T) {
	_, err := Decode(iotest.ErrReader(errors.New("disk gone")))
	require.ErrorIs(t, err, model.ErrFormat)
}

func TestDecode_VersionIsNotRequired(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"appointments":[]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Version)
	assert.Empty(t, doc.Appointments)

	doc, err = Decode(strings.NewReader(`{"version":"two","timestamp":5,"appointments":[]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Version)
	assert.Empty(t, doc.Timestamp)
}

func TestDecode_MalformedRecordsPassThrough(t *testing.T) {
	in := `{"version":1,"timestamp":"2024-01-20T10:00:00.000Z","appointments":[
		{"id":"1","date":"2024-01-21","time":"09:00","carBrand":"Audi","carModel":"A4","status":null},
		{"id":"2","carModel":["x"]},
		17
	]}`

	doc, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, doc.Appointments, 3)
	assert.Equal(t, "2024-01-20T10:00:00.000Z", doc.Timestamp)
	assert.Equal(t, "Audi", doc.Appointments[0].CarBrand)
	assert.Equal(t, "2", doc.Appointments[1].ID)
	assert.Empty(t, doc.Appointments[1].CarModel)
	assert.Equal(t, model.Appointment{}, doc.Appointments[2])
}

func TestEncode_Shape(t *testing.T) {
	doc := Export([]model.Appointment{apt("x", "2024-01-21")}, now)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))

	var generic map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &generic))
	assert.EqualValues(t, 1, generic["version"])
	list, ok := generic["appointments"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	first := list[0].(map[string]any)
	assert.Nil(t, first["status"])
	assert.NotContains(t, first, "plateNumber")
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"version\": 1"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "autoservice-backup-2024-01-20.json", FileName(now))
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(sample(), now)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Appointments)
	assert.Greater(t, s.SizeBytes, 0)
}
