package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Initial(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, 2, b.States())
	assert.NoError(t, b.Validate())

	assert.Equal(t, 2, NewBuilderWithCapacity(0).States())
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()
	mid := b.AddState()
	require.Equal(t, StateID(2), mid)

	require.NoError(t, b.AddChar(StartState, 'x', mid))
	require.NoError(t, b.AddAny(mid, AcceptState))
	require.NoError(t, b.AddEpsilon(StartState, AcceptState))

	n, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, b.States(), "builder must hand its states over")

	assert.Equal(t, []Transition{OnChar('x', 2), OnEpsilon(1)}, n.State(StartState).Transitions())
	assert.Equal(t, []Transition{OnAny(1)}, n.State(mid).Transitions())
	assert.Empty(t, n.State(AcceptState).Transitions())
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		add     func(b *Builder) error
		wantErr error
		wantID  StateID
	}{
		{
			name:    "unknown source",
			add:     func(b *Builder) error { return b.AddEpsilon(9, StartState) },
			wantErr: ErrInvalidState,
			wantID:  9,
		},
		{
			name:    "invalid source",
			add:     func(b *Builder) error { return b.AddAny(InvalidState, StartState) },
			wantErr: ErrInvalidState,
			wantID:  InvalidState,
		},
		{
			name:    "unknown target",
			add:     func(b *Builder) error { return b.AddChar(StartState, 'a', 5) },
			wantErr: ErrInvalidTransition,
			wantID:  StartState,
		},
		{
			name: "unknown kind",
			add: func(b *Builder) error {
				return b.AddTransition(AcceptState, Transition{Kind: TransitionKind(7), Next: StartState})
			},
			wantErr: ErrInvalidTransition,
			wantID:  AcceptState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			err := tt.add(b)
			require.ErrorIs(t, err, tt.wantErr)

			var buildErr *BuildError
			require.ErrorAs(t, err, &buildErr)
			assert.Equal(t, tt.wantID, buildErr.StateID)

			// a rejected transition leaves the builder untouched
			n, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, 0, n.TransitionCount())
		})
	}
}
