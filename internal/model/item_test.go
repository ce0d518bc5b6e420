package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ItemIDs
		wantErr bool
	}{
		{name: "single", input: "1", want: ItemIDs{1}},
		{name: "trims whitespace", input: " 1, 2 ,3 ", want: ItemIDs{1, 2, 3}},
		{name: "keeps duplicates", input: "4,4,5", want: ItemIDs{4, 4, 5}},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "not a number", input: "1,abc", wantErr: true},
		{name: "trailing comma", input: "1,2,", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseItemIDs(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseItemIDs_EmptyIsSentinel(t *testing.T) {
	_, err := ParseItemIDs("")

	assert.True(t, errors.Is(err, ErrEmptyItemIDs))
}

func TestItemIDs_String(t *testing.T) {
	assert.Equal(t, "3,4,5", ItemIDs{3, 4, 5}.String())
	assert.Equal(t, "", ItemIDs{}.String())
}
