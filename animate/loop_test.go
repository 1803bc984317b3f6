package animate

import (
	"reflect"
	"testing"
	"time"
)

type write struct {
	text string
	row  int
	col  int
}

type recorder struct {
	writes []write
}

func (r *recorder) WriteAt(text string, row, col int) {
	r.writes = append(r.writes, write{text, row, col})
}

func TestAnimatorRunTicksAndWraps(t *testing.T) {
	rec := &recorder{}
	var slept []time.Duration
	a := Animator{
		Style: Paging,
		Sleep: func(d time.Duration) { slept = append(slept, d) },
	}

	// Row 1 has two frames, row 2 has one; they wrap independently.
	a.Run(rec, Window{StartCol: 10, Width: 4}, []string{"ABCDE", "XY"}, 6*time.Second)

	// 6s at a 1.5s tick is 4 ticks of 2 writes each.
	if len(slept) != 4 {
		t.Fatalf("expected 4 ticks, got %d", len(slept))
	}
	for _, d := range slept {
		if d != TickInterval {
			t.Fatalf("expected tick of %v, got %v", TickInterval, d)
		}
	}

	expected := []write{
		{"ABCD", 1, 10}, {"XY", 2, 10},
		{"E   ", 1, 10}, {"XY", 2, 10},
		{"ABCD", 1, 10}, {"XY", 2, 10},
		{"E   ", 1, 10}, {"XY", 2, 10},
	}
	if !reflect.DeepEqual(rec.writes, expected) {
		t.Errorf("expected writes %v, got %v", expected, rec.writes)
	}
}

func TestAnimatorRunZeroDuration(t *testing.T) {
	rec := &recorder{}
	a := Animator{Style: Scrolling, Sleep: func(time.Duration) {}}

	a.Run(rec, Window{Width: 4}, []string{"ABCDE"}, 0)

	if len(rec.writes) != 0 {
		t.Errorf("expected no writes, got %v", rec.writes)
	}
}
