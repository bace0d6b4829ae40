package daytime

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDurationFromSeconds(t *testing.T) {
	tests := []struct {
		seconds int64
		hours   int64
		minutes int
		secs    int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 1},
		{60, 0, 1, 0},
		{100, 0, 1, 40},
		{3661, 1, 1, 1},
		{172800, 48, 0, 0},
	}

	for _, tt := range tests {
		d, err := DurationFromSeconds(tt.seconds)
		if err != nil {
			t.Fatalf("DurationFromSeconds(%d) error = %v", tt.seconds, err)
		}
		if d.TotalSeconds() != tt.seconds {
			t.Errorf("TotalSeconds() = %d, want %d", d.TotalSeconds(), tt.seconds)
		}
		if d.Hours() != tt.hours || d.Minutes() != tt.minutes || d.Seconds() != tt.secs {
			t.Errorf("DurationFromSeconds(%d) = %d:%d:%d, want %d:%d:%d",
				tt.seconds, d.Hours(), d.Minutes(), d.Seconds(), tt.hours, tt.minutes, tt.secs)
		}
	}
}

func TestDurationFromSecondsNegative(t *testing.T) {
	_, err := DurationFromSeconds(-1)
	if !errors.Is(err, ErrRange) {
		t.Errorf("DurationFromSeconds(-1) error = %v, want ErrRange", err)
	}
}

func TestNewDuration(t *testing.T) {
	tests := []struct {
		h, m, s int64
		want    int64
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 3600},
		{0, 1, 0, 60},
		{1, 1, 1, 3661},
		{48, 0, 0, 172800},
		{1000, 59, 59, 3603599},
	}

	for _, tt := range tests {
		d, err := NewDuration(tt.h, tt.m, tt.s)
		if err != nil {
			t.Fatalf("NewDuration(%d, %d, %d) error = %v", tt.h, tt.m, tt.s, err)
		}
		if d.TotalSeconds() != tt.want {
			t.Errorf("NewDuration(%d, %d, %d) = %d, want %d", tt.h, tt.m, tt.s, d.TotalSeconds(), tt.want)
		}
	}

	hm, err := NewDurationHM(48, 30)
	if err != nil {
		t.Fatalf("NewDurationHM(48, 30) error = %v", err)
	}
	if hm.TotalSeconds() != 48*3600+30*60 {
		t.Errorf("NewDurationHM(48, 30) = %d", hm.TotalSeconds())
	}
}

func TestNewDurationInvalid(t *testing.T) {
	tests := []struct {
		h, m, s int64
	}{
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, -1},
		{0, 60, 0},
		{0, 0, 60},
		{math.MaxInt64 / 3600, 0, 0},
	}

	for _, tt := range tests {
		if _, err := NewDuration(tt.h, tt.m, tt.s); !errors.Is(err, ErrRange) {
			t.Errorf("NewDuration(%d, %d, %d) error = %v, want ErrRange", tt.h, tt.m, tt.s, err)
		}
	}
}

func TestNewDurationLargestHours(t *testing.T) {
	d, err := NewDuration(maxDurationHours, 59, 59)
	if err != nil {
		t.Fatalf("NewDuration(max, 59, 59) error = %v", err)
	}
	if d.TotalSeconds() < 0 {
		t.Errorf("TotalSeconds() overflowed: %d", d.TotalSeconds())
	}
}

func TestDurationString(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{3661, "01:01:01"},
		{172800, "48:00:00"},
		{360000, "100:00:00"},
		{86399, "23:59:59"},
	}

	for _, tt := range tests {
		d, _ := DurationFromSeconds(tt.seconds)
		if got := d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDurationPlusMinus(t *testing.T) {
	a := MustParseDuration("23:00:00")
	b := MustParseDuration("2:30:00")

	if got := a.Plus(b).String(); got != "25:30:00" {
		t.Errorf("Plus() = %s, want 25:30:00", got)
	}
	if got := a.Minus(b).String(); got != "20:30:00" {
		t.Errorf("Minus() = %s, want 20:30:00", got)
	}
	if got := b.Minus(a); !got.IsZero() {
		t.Errorf("Minus() underflow = %s, want 00:00:00", got)
	}
}

func TestDurationMinusClamps(t *testing.T) {
	thirty, _ := DurationFromSeconds(30)
	hour, _ := DurationFromSeconds(3600)
	zero, _ := DurationFromSeconds(0)

	if got := thirty.Minus(hour); !got.Equal(zero) {
		t.Errorf("30s - 1h = %s, want 00:00:00", got)
	}
}

func TestDurationPlusSaturates(t *testing.T) {
	big, _ := DurationFromSeconds(math.MaxInt64 - 10)
	small, _ := DurationFromSeconds(100)

	if got := big.Plus(small).TotalSeconds(); got != math.MaxInt64 {
		t.Errorf("Plus() = %d, want MaxInt64", got)
	}
}

func TestDurationWithClockTime(t *testing.T) {
	got := MustParseDuration("23:0:0").PlusClockTime(MustParseClockTime("2:0:0"))
	if !got.Equal(MustParseDuration("25:0:0")) {
		t.Errorf("23h + 02:00:00 = %s, want 25:00:00", got)
	}

	got = MustParseDuration("3:00:00").MinusClockTime(MustParseClockTime("1:30:00"))
	if got.String() != "01:30:00" {
		t.Errorf("3h - 01:30:00 = %s, want 01:30:00", got)
	}

	got = MustParseDuration("1:00:00").MinusClockTime(MustParseClockTime("23:00:00"))
	if !got.IsZero() {
		t.Errorf("1h - 23:00:00 = %s, want 00:00:00", got)
	}
}

func TestDurationOrdering(t *testing.T) {
	short := MustDuration(0, 30, 0)
	long := MustDuration(30, 0, 0)

	if short.Compare(long) != -1 || long.Compare(short) != 1 || short.Compare(short) != 0 {
		t.Error("Compare inconsistent with total seconds")
	}
	if !short.Shorter(long) || !long.Longer(short) {
		t.Error("Shorter/Longer inconsistent with total seconds")
	}
	if short.Hash() == long.Hash() {
		t.Error("distinct durations share a hash")
	}
	if MustParseDuration("0:30:0").Hash() != short.Hash() {
		t.Error("equal durations have different hashes")
	}
}

func TestDurationStd(t *testing.T) {
	d := MustDuration(1, 2, 3)
	if d.Std() != time.Hour+2*time.Minute+3*time.Second {
		t.Errorf("Std() = %v", d.Std())
	}

	huge, _ := DurationFromSeconds(math.MaxInt64)
	if huge.Std() != time.Duration(math.MaxInt64) {
		t.Errorf("Std() did not saturate: %v", huge.Std())
	}
}

func TestDurationOf(t *testing.T) {
	d, err := DurationOf(90*time.Minute + 1500*time.Millisecond)
	if err != nil {
		t.Fatalf("DurationOf() error = %v", err)
	}
	if d.String() != "01:30:01" {
		t.Errorf("DurationOf() = %s, want 01:30:01", d)
	}

	if _, err := DurationOf(-time.Second); !errors.Is(err, ErrRange) {
		t.Errorf("DurationOf(-1s) error = %v, want ErrRange", err)
	}
}

func TestDurationTextRoundTrip(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("48:00:00")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "48:00:00" {
		t.Errorf("MarshalText() = %s, want 48:00:00", text)
	}

	if err := d.UnmarshalText([]byte("1:60:00")); !errors.Is(err, ErrRange) {
		t.Errorf("UnmarshalText(1:60:00) error = %v, want ErrRange", err)
	}
	if d.String() != "48:00:00" {
		t.Errorf("failed UnmarshalText modified the value: %s", d)
	}
}
