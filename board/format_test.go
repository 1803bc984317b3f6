package board

import (
	"reflect"
	"testing"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name      string
		departure Departure
		expected  string
	}{
		{
			name:      "local",
			departure: Departure{Time: "08:10", Type: "Local", Destination: "Shibuya"},
			expected:  "Loc 08:10 SHIBUYA",
		},
		{
			name:      "express",
			departure: Departure{Time: "21:05", Type: "Express", Destination: "Motomachi-Chukagai"},
			expected:  "EXP 21:05 MOTOMACHI-CHUKAGAI",
		},
		{
			name:      "unrecognized type passes through",
			departure: Departure{Time: "12:00", Type: "odpt.TrainType:Tokyu.Rapid", Destination: "Oimachi"},
			expected:  "odpt.TrainType:Tokyu.Rapid 12:00 OIMACHI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLine(tt.departure); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestScrollTexts(t *testing.T) {
	queue := []Departure{
		{Destination: "Shibuya"},
		{Destination: "Futako-Tamagawa"},
	}
	expected := []string{"SHIBUYA", "FUTAKO-TAMAGAWA"}
	if got := ScrollTexts(queue); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}
