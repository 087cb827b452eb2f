package tip_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/leaveatip/internal/tip"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "AtMinimum", input: "15", want: 15},
		{name: "AboveMinimum", input: "20", want: 20},
		{name: "SurroundingWhitespace", input: "  20  ", want: 20},
		{name: "Tabs", input: "\t30\t", want: 30},
		{name: "ExplicitPlus", input: "+18", want: 18},
		{name: "BelowMinimum", input: "10", want: 10, wantErr: tip.ErrBelowMinimum},
		{name: "Zero", input: "0", want: 0, wantErr: tip.ErrBelowMinimum},
		{name: "Negative", input: "-20", want: -20, wantErr: tip.ErrBelowMinimum},
		{name: "Letters", input: "abc", wantErr: tip.ErrInvalidNumber},
		{name: "Empty", input: "", wantErr: tip.ErrInvalidNumber},
		{name: "WhitespaceOnly", input: "   ", wantErr: tip.ErrInvalidNumber},
		{name: "Decimal", input: "17.5", wantErr: tip.ErrInvalidNumber},
		{name: "PercentSign", input: "20%", wantErr: tip.ErrInvalidNumber},
		{name: "InnerSpace", input: "2 0", wantErr: tip.ErrInvalidNumber},
		{name: "Overflow", input: "99999999999999999999999", wantErr: tip.ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tip.Validate(tt.input, tip.DefaultMinimum)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantErr == tip.ErrBelowMinimum {
					assert.Equal(t, tt.want, got)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_Threshold(t *testing.T) {
	for v := -50; v <= 200; v++ {
		_, err := tip.Validate(strconv.Itoa(v), tip.DefaultMinimum)

		want := tip.OutcomeAccepted
		if v < tip.DefaultMinimum {
			want = tip.OutcomeBelowMinimum
		}

		assert.Equal(t, want, tip.Classify(err), "value %d", v)
	}
}

func TestValidate_TrimmedEqualsUntrimmed(t *testing.T) {
	for _, s := range []string{"20", "3", "x"} {
		a, errA := tip.Validate(s, tip.DefaultMinimum)
		b, errB := tip.Validate("  "+s+"  ", tip.DefaultMinimum)

		assert.Equal(t, a, b)
		assert.Equal(t, tip.Classify(errA), tip.Classify(errB))
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Please enter a valid number.", tip.Message(tip.OutcomeInvalidNumber, 15))
	assert.Equal(t, "Minimum tip is 15%. Please enter a higher tip amount.", tip.Message(tip.OutcomeBelowMinimum, 15))
	assert.Equal(t, "Minimum tip is 18%. Please enter a higher tip amount.", tip.Message(tip.OutcomeBelowMinimum, 18))
	assert.Empty(t, tip.Message(tip.OutcomeAccepted, 15))
	assert.Empty(t, tip.Message(tip.OutcomeNone, 15))
}
