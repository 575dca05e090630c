package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtrip/pkg/utils"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "fenced json block",
			raw:  "Here is your itinerary:\n```json\n{\"days\": []}\n```\nEnjoy!",
			want: `{"days": []}`,
		},
		{
			name: "bare fences",
			raw:  "```\n{\"days\": []}\n```",
			want: `{"days": []}`,
		},
		{
			name: "surrounding prose without fences",
			raw:  `Sure thing! {"days": [{"date": "2024-06-01"}]} Hope that helps.`,
			want: `{"days": [{"date": "2024-06-01"}]}`,
		},
		{
			name: "nested objects",
			raw:  `{"a": {"b": {"c": 1}}}`,
			want: `{"a": {"b": {"c": 1}}}`,
		},
		{
			name: "braces inside strings are skipped",
			raw:  `{"title": "Dinner at {Le Bistro}", "cost": 40}`,
			want: `{"title": "Dinner at {Le Bistro}", "cost": 40}`,
		},
		{
			name: "escaped quote inside string",
			raw:  `{"title": "He said \"go {now}\"", "cost": 10}`,
			want: `{"title": "He said \"go {now}\"", "cost": 10}`,
		},
		{
			name:    "no object at all",
			raw:     "Sorry, I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			raw:     `{"days": [{"date": "2024-06-01"}`,
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ExtractJSONObject(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, utils.ErrMalformedAIResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "fenced array",
			raw:  "```json\n[{\"title\": \"Museum\"}]\n```",
			want: `[{"title": "Museum"}]`,
		},
		{
			name: "array with nested arrays",
			raw:  `prefix [[1, 2], [3]] suffix`,
			want: `[[1, 2], [3]]`,
		},
		{
			name: "brackets inside strings are skipped",
			raw:  `[{"title": "Tour [guided]"}]`,
			want: `[{"title": "Tour [guided]"}]`,
		},
		{
			name:    "no array",
			raw:     "no structured data here",
			wantErr: true,
		},
		{
			name:    "unterminated array",
			raw:     `[{"title": "Museum"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ExtractJSONArray(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, utils.ErrMalformedAIResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
