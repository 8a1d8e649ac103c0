package shell

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "10", 10, false},
		{"decimal", "12.50", 12.5, false},
		{"zero", "0", 0, false},
		{"leading spaces", "  7.25 ", 7.25, false},
		{"over 100 is fine", "150", 150, false},
		{"negative", "-5", 0, true},
		{"blank", "", 0, true},
		{"spaces only", "   ", 0, true},
		{"words", "ten", 0, true},
		{"trailing junk", "10x", 0, true},
		{"nan", "NaN", 0, true},
		{"inf", "Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateAmountOrBlank(t *testing.T) {
	if err := ValidateAmountOrBlank(""); err != nil {
		t.Errorf("blank should pass: %v", err)
	}
	if err := ValidateAmountOrBlank("12"); err != nil {
		t.Errorf("valid number should pass: %v", err)
	}
	if err := ValidateAmountOrBlank("-1"); err == nil {
		t.Error("negative should fail")
	}
}
