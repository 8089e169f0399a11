package entity

import (
	"testing"
)

func TestExtractor_Extract(t *testing.T) {
	ex := NewExtractor()

	tests := []struct {
		name string
		text string
		want []Entity
	}{
		{
			name: "iso date",
			text: "Book appointment for 2024-02-15",
			want: []Entity{
				{Kind: KindDate, Value: "2024-02-15"},
				{Kind: KindNumber, Value: "2024"},
				{Kind: KindNumber, Value: "02"},
				{Kind: KindNumber, Value: "15"},
			},
		},
		{
			name: "slash date",
			text: "see me on 3/14/2024 please",
			want: []Entity{
				{Kind: KindDate, Value: "3/14/2024"},
				{Kind: KindNumber, Value: "3"},
				{Kind: KindNumber, Value: "14"},
				{Kind: KindNumber, Value: "2024"},
			},
		},
		{
			name: "relative date and meridiem time",
			text: "I want to book an appointment for tomorrow at 3pm",
			want: []Entity{
				{Kind: KindDate, Value: "tomorrow"},
				{Kind: KindTime, Value: "3pm"},
			},
		},
		{
			name: "weekday and clock time",
			text: "meeting friday 14:30",
			want: []Entity{
				{Kind: KindDate, Value: "friday"},
				{Kind: KindTime, Value: "14:30"},
				{Kind: KindNumber, Value: "14"},
				{Kind: KindNumber, Value: "30"},
			},
		},
		{
			name: "location after preposition",
			text: "What's the weather in New York",
			want: []Entity{
				{Kind: KindLocation, Value: "New York"},
			},
		},
		{
			name: "email",
			text: "Contact me at john.doe@example.com",
			want: []Entity{
				{Kind: KindEmail, Value: "john.doe@example.com"},
			},
		},
		{
			name: "phone consumes its digits",
			text: "call 555-123-4567 now",
			want: []Entity{
				{Kind: KindPhone, Value: "555-123-4567"},
			},
		},
		{
			name: "bare number survives next to phone",
			text: "5 tickets, call 555-123-4567",
			want: []Entity{
				{Kind: KindPhone, Value: "555-123-4567"},
				{Kind: KindNumber, Value: "5"},
			},
		},
		{
			name: "no entities",
			text: "nothing to see here",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i].Kind != tt.want[i].Kind || got[i].Value != tt.want[i].Value {
					t.Errorf("Extract(%q)[%d] = {%s %q}, want {%s %q}",
						tt.text, i, got[i].Kind, got[i].Value, tt.want[i].Kind, tt.want[i].Value)
				}
			}
		})
	}
}

func TestExtractor_Extract_Spans(t *testing.T) {
	ex := NewExtractor()

	text := "weather in Boston tomorrow"
	got := ex.Extract(text)
	if len(got) != 2 {
		t.Fatalf("Extract(%q) returned %d entities, want 2", text, len(got))
	}

	// Kind-order concatenation: date before location.
	date, loc := got[0], got[1]
	if date.Kind != KindDate || text[date.Start:date.End] != "tomorrow" {
		t.Errorf("date span = %q, want %q", text[date.Start:date.End], "tomorrow")
	}
	// The location span covers the preposition; the value does not.
	if loc.Kind != KindLocation || loc.Value != "Boston" {
		t.Errorf("location = {%s %q}, want {location \"Boston\"}", loc.Kind, loc.Value)
	}
	if text[loc.Start:loc.End] != "in Boston" {
		t.Errorf("location span = %q, want %q", text[loc.Start:loc.End], "in Boston")
	}
}

func TestExtractor_Extract_MultipleSameKindInOrder(t *testing.T) {
	ex := NewExtractor()

	got := ex.ExtractByKind("free monday or tuesday", KindDate)
	if len(got) != 2 || got[0].Value != "monday" || got[1].Value != "tuesday" {
		t.Fatalf("ExtractByKind dates = %v, want [monday tuesday]", got)
	}
}

// Re-extracting a previously extracted value must yield the same kind and
// value. Location is excluded: its grammar requires the surrounding
// preposition, which is not part of the captured value.
func TestExtractor_Extract_Idempotent(t *testing.T) {
	ex := NewExtractor()

	values := map[Kind]string{
		KindDate:   "tomorrow",
		KindTime:   "3pm",
		KindEmail:  "jane@example.org",
		KindPhone:  "555-123-4567",
		KindNumber: "42",
	}

	for kind, value := range values {
		got := ex.ExtractByKind(value, kind)
		if len(got) != 1 || got[0].Value != value {
			t.Errorf("re-extract %s %q = %v, want itself", kind, value, got)
		}
	}
}
