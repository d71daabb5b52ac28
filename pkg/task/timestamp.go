package task

import (
	"encoding/json"
	"fmt"
	"time"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time so the JSON documents carry RFC3339 strings
// and a zero time round-trips as the empty string.
type Timestamp struct {
	time.Time
}

func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

const layoutISO = "2006-01-02"

// Date is a calendar day with no time component, stored as "2006-01-02".
type Date struct {
	time.Time
}

func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) IsToday(now time.Time) bool {
	y, m, day := d.Date()
	ny, nm, nd := now.Local().Date()
	return y == ny && m == nm && day == nd
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.Format(layoutISO))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		d.Time = time.Time{}
		return nil
	}
	var err error
	*d, err = ParseDate(v)
	return err
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutISO)
}
