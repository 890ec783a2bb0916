// Package backup переносит предстоящие записи между устройствами через JSON-файл.
//
// В бэкап попадают только записи на сегодня и позже. При восстановлении
// прошлые записи текущего хранилища остаются как есть, а все текущие и
// будущие заменяются содержимым файла целиком, без слияния по записям.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/autoservice/workshop/internal/calendar"
	"github.com/autoservice/workshop/internal/model"
)

const (
	Version         = 1
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
	fileNamePrefix  = "autoservice-backup-"
	fileNameSuffix  = ".json"
)

type Document struct {
	Version      int                 `json:"version"`
	Timestamp    string              `json:"timestamp"`
	Appointments []model.Appointment `json:"appointments"`
}

// Partition делит записи по календарному дню относительно cutoff.
// past - строго раньше дня cutoff, остальные (включая сегодня и записи
// с нечитаемой датой) попадают в futureOrToday. Порядок сохраняется.
func Partition(appointments []model.Appointment, cutoff time.Time) (past, futureOrToday []model.Appointment) {
	day := calendar.StartOfDay(cutoff)
	for _, a := range appointments {
		d, ok := a.Day(cutoff.Location())
		if ok && d.Before(day) {
			past = append(past, a)
			continue
		}
		futureOrToday = append(futureOrToday, a)
	}
	return past, futureOrToday
}

// Export собирает документ бэкапа из записей на сегодня и позже
func Export(appointments []model.Appointment, now time.Time) Document {
	_, future := Partition(appointments, calendar.Today(now))
	if future == nil {
		future = []model.Appointment{}
	}
	return Document{
		Version:      Version,
		Timestamp:    now.UTC().Format(TimestampFormat),
		Appointments: future,
	}
}

// Import возвращает новый список записей: прошлые записи current и все записи документа
func Import(current []model.Appointment, doc Document, now time.Time) []model.Appointment {
	past, _ := Partition(current, calendar.Today(now))
	result := make([]model.Appointment, 0, len(past)+len(doc.Appointments))
	result = append(result, past...)
	result = append(result, doc.Appointments...)
	return result
}

// Decode читает документ бэкапа. Версия не проверяется, записи читаются
// без проверки полей; ошибкой считается только отсутствие массива appointments.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read backup: %v", model.ErrFormat, err)
	}

	var envelope struct {
		Version      json.RawMessage `json:"version"`
		Timestamp    json.RawMessage `json:"timestamp"`
		Appointments json.RawMessage `json:"appointments"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: parse backup: %v", model.ErrFormat, err)
	}

	raw := bytes.TrimSpace(envelope.Appointments)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: appointments array is missing", model.ErrFormat)
	}

	doc := &Document{}
	if err := json.Unmarshal(raw, &doc.Appointments); err != nil {
		return nil, fmt.Errorf("%w: parse appointments: %v", model.ErrFormat, err)
	}
	if doc.Appointments == nil {
		doc.Appointments = []model.Appointment{}
	}

	// Версия и время информационные, неверный тип просто игнорируется
	_ = json.Unmarshal(envelope.Version, &doc.Version)
	_ = json.Unmarshal(envelope.Timestamp, &doc.Timestamp)

	return doc, nil
}

// Encode пишет документ с отступом в два пробела
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

// FileName возвращает имя файла бэкапа по дате выгрузки
func FileName(now time.Time) string {
	return fileNamePrefix + calendar.FormatDate(now) + fileNameSuffix
}

type Summary struct {
	Appointments int
	SizeBytes    int
}

// Summarize оценивает, сколько записей и байт попадёт в бэкап
func Summarize(appointments []model.Appointment, now time.Time) (Summary, error) {
	doc := Export(appointments, now)
	data, err := json.Marshal(struct {
		Appointments []model.Appointment `json:"appointments"`
	}{doc.Appointments})
	if err != nil {
		return Summary{}, fmt.Errorf("summarize backup: %w", err)
	}
	return Summary{Appointments: len(doc.Appointments), SizeBytes: len(data)}, nil
}
