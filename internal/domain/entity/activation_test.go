package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivateOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    ActivateOptions
		wantErr bool
	}{
		{name: "defaults", opts: DefaultActivateOptions()},
		{name: "with keyword", opts: ActivateOptions{Completer: "omni", Keyword: "w"}},
		{name: "empty completer", opts: ActivateOptions{}, wantErr: true},
		{name: "completer with space", opts: ActivateOptions{Completer: "om ni"}, wantErr: true},
		{name: "keyword with space", opts: ActivateOptions{Completer: "omni", Keyword: "w x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidActivation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestActivateOptions_InitialSelection(t *testing.T) {
	assert.Equal(t, -1, ActivateOptions{}.InitialSelection())
	assert.Equal(t, 0, ActivateOptions{SelectFirst: true}.InitialSelection())
}

func TestCompletion_Predicates(t *testing.T) {
	var nilCompletion *Completion
	assert.False(t, nilCompletion.IsPrimarySearchSuggestion())
	assert.False(t, nilCompletion.IsTab())
	assert.False(t, nilCompletion.HasInsertText())

	c := &Completion{IsPrimarySuggestion: true, IsCustomSearch: true, InsertText: "x"}
	assert.True(t, c.IsPrimarySearchSuggestion())
	assert.True(t, c.HasInsertText())

	c = &Completion{IsPrimarySuggestion: true}
	assert.False(t, c.IsPrimarySearchSuggestion())

	assert.True(t, (&Completion{Description: DescriptionTab}).IsTab())
}
