package reminder

import (
	"errors"
	"testing"
	"time"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		deadline  string
		leadHours string
		want      time.Time
		wantErr   error
	}{
		{
			name:      "five hours before midnight of deadline",
			deadline:  "2024-03-10",
			leadHours: "5",
			want:      time.Date(2024, 3, 9, 19, 0, 0, 0, time.UTC),
		},
		{
			name:      "zero lead is the deadline itself",
			deadline:  "2024-03-10",
			leadHours: "0",
			want:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "negative lead lands after the deadline",
			deadline:  "2024-03-10",
			leadHours: "-3",
			want:      time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC),
		},
		{
			name:      "surrounding whitespace tolerated",
			deadline:  " 2024-03-10 ",
			leadHours: " 5 ",
			want:      time.Date(2024, 3, 9, 19, 0, 0, 0, time.UTC),
		},
		{
			name:      "malformed deadline",
			deadline:  "10-03-2024",
			leadHours: "5",
			wantErr:   ErrInvalidDeadline,
		},
		{
			name:      "empty deadline",
			deadline:  "",
			leadHours: "5",
			wantErr:   ErrInvalidDeadline,
		},
		{
			name:      "non-numeric lead",
			deadline:  "2024-03-10",
			leadHours: "soon",
			wantErr:   ErrInvalidLeadTime,
		},
		{
			name:      "fractional lead rejected",
			deadline:  "2024-03-10",
			leadHours: "1.5",
			wantErr:   ErrInvalidLeadTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.deadline, tt.leadHours)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Compute(%q, %q) error = %v, want %v", tt.deadline, tt.leadHours, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compute(%q, %q) failed: %v", tt.deadline, tt.leadHours, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Compute(%q, %q) = %v, want %v", tt.deadline, tt.leadHours, got, tt.want)
			}
		})
	}
}
