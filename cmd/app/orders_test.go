package main

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItem(t *testing.T) {
	tests := []struct {
		raw  string
		want commands.LineItemInput
	}{
		{"P-100:4", commands.LineItemInput{Code: "P-100", Quantity: 4}},
		{"P-100:4:Bearing", commands.LineItemInput{Code: "P-100", Quantity: 4, Description: "Bearing"}},
		{"P-100: 4 :Bearing, 6mm:PRJ-7", commands.LineItemInput{Code: "P-100", Quantity: 4, Description: "Bearing, 6mm", Project: "PRJ-7"}},
		{"P-100:4:Bearing:PRJ:7", commands.LineItemInput{Code: "P-100", Quantity: 4, Description: "Bearing", Project: "PRJ:7"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseItem(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, raw := range []string{"P-100", "P-100:four"} {
		_, err := parseItem(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"requisition_id=REQ-1", "dimensions=", "tracking_number=A=B"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"requisition_id":  "REQ-1",
		"dimensions":      "",
		"tracking_number": "A=B",
	}, got)

	_, err = parseAssignments([]string{"requisition_id"})
	assert.Error(t, err)

	_, err = parseAssignments([]string{"=value"})
	assert.Error(t, err)
}
