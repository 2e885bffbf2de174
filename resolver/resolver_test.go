package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/textgen/rant/parser"
)

type sequentialRNG struct {
	calls []int
	next  int
}

func (r *sequentialRNG) NextIndex(n int) int {
	if r.next < len(r.calls) {
		v := r.calls[r.next]
		r.next++
		return v % n
	}
	return 0
}

func seqs(n int) []*parser.Sequence {
	out := make([]*parser.Sequence, n)
	for i := range out {
		out[i] = &parser.Sequence{}
	}
	return out
}

func TestAttributeFrameMakeIf(t *testing.T) {
	a := defaultAttrs()
	a.MakeIf(true)
	require.True(t, *a.Condval)
	require.True(t, a.NoPropagateCondval)

	b := defaultAttrs()
	b.MakeIf(false)
	require.False(t, *b.Condval)
	require.False(t, b.NoPropagateCondval)
}

func TestAttributeFrameMakeElseWithoutPrior(t *testing.T) {
	a := defaultAttrs()
	a.MakeElse()
	require.False(t, *a.Condval)
	require.True(t, a.NoPropagateCondval)
}

func TestAttributeFrameMakeElseNegatesPrior(t *testing.T) {
	a := defaultAttrs()
	a.PrevCondval = boolPtr(true)
	a.MakeElse()
	require.False(t, *a.Condval)
}

func TestAttributeFrameMakeElseIf(t *testing.T) {
	a := defaultAttrs()
	a.PrevCondval = boolPtr(false) // previous clause didn't fire
	a.MakeElseIf(true)
	require.True(t, *a.Condval)
	require.True(t, a.NoPropagateCondval)

	b := defaultAttrs()
	b.PrevCondval = boolPtr(true) // previous clause already fired
	b.MakeElseIf(true)
	require.False(t, *b.Condval)
}

func TestBlockStateAlternatesElementAndSeparator(t *testing.T) {
	r := New()
	r.Attrs().Reps = RepsN(3)
	block := r.PushBlock(seqs(2), parser.PrintNone, parser.PrintNone)

	rng := &sequentialRNG{calls: []int{0, 1, 0}}
	a1, err := block.NextElement(rng)
	require.NoError(t, err)
	require.Equal(t, ActionElement, a1.Kind)

	a2, err := block.NextElement(rng)
	require.NoError(t, err)
	require.Equal(t, ActionSeparator, a2.Kind)

	a3, err := block.NextElement(rng)
	require.NoError(t, err)
	require.Equal(t, ActionElement, a3.Kind)

	a4, err := block.NextElement(rng)
	require.NoError(t, err)
	require.Equal(t, ActionSeparator, a4.Kind)

	a5, err := block.NextElement(rng)
	require.NoError(t, err)
	require.Equal(t, ActionElement, a5.Kind)

	done, err := block.NextElement(rng)
	require.NoError(t, err)
	require.Nil(t, done)
}

func TestBlockStateForceStop(t *testing.T) {
	r := New()
	r.Attrs().Reps = RepsForever
	block := r.PushBlock(seqs(2), parser.PrintNone, parser.PrintNone)
	block.ForceStop = true
	require.True(t, block.IsDone())
}

func TestBlockStateCondvalFalse(t *testing.T) {
	r := New()
	block := r.PushBlock(seqs(2), parser.PrintNone, parser.PrintNone)
	block.Attrs.Condval = boolPtr(false)
	require.True(t, block.IsDone())
}

func TestSelectorRejectsZeroElements(t *testing.T) {
	s := NewSelector(Random)
	_, err := s.Select(0, &sequentialRNG{})
	require.Error(t, err)
}

func TestSelectorRejectsElementCountChange(t *testing.T) {
	s := NewSelector(Forward)
	_, err := s.Select(3, &sequentialRNG{})
	require.NoError(t, err)
	_, err = s.Select(4, &sequentialRNG{})
	require.Error(t, err)
}

func TestSelectorForwardWraps(t *testing.T) {
	s := NewSelector(Forward)
	rng := &sequentialRNG{}
	var out []int
	for i := 0; i < 5; i++ {
		idx, err := s.Select(3, rng)
		require.NoError(t, err)
		out = append(out, idx)
	}
	require.Equal(t, []int{0, 1, 2, 0, 1}, out)
}

func TestSelectorForwardClampHoldsLast(t *testing.T) {
	s := NewSelector(ForwardClamp)
	rng := &sequentialRNG{}
	var out []int
	for i := 0; i < 5; i++ {
		idx, _ := s.Select(3, rng)
		out = append(out, idx)
	}
	require.Equal(t, []int{0, 1, 2, 2, 2}, out)
}

func TestSelectorReverseWraps(t *testing.T) {
	s := NewSelector(Reverse)
	rng := &sequentialRNG{}
	var out []int
	for i := 0; i < 4; i++ {
		idx, _ := s.Select(3, rng)
		out = append(out, idx)
	}
	require.Equal(t, []int{2, 1, 0, 2}, out)
}

func TestSelectorReverseClampHoldsFirst(t *testing.T) {
	s := NewSelector(ReverseClamp)
	rng := &sequentialRNG{}
	var out []int
	for i := 0; i < 4; i++ {
		idx, _ := s.Select(3, rng)
		out = append(out, idx)
	}
	require.Equal(t, []int{2, 1, 0, 0}, out)
}

func TestSelectorDeckCoversAllBeforeReshuffle(t *testing.T) {
	s := NewSelector(Deck)
	rng := &sequentialRNG{} // identity shuffle: NextIndex always returns 0
	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		idx, err := s.Select(3, rng)
		require.NoError(t, err)
		seen[idx] = true
	}
	require.Len(t, seen, 3)
}

func TestSelectorPingPongFlipAtEndpoints(t *testing.T) {
	s := NewSelector(Ping)
	rng := &sequentialRNG{}
	var out []int
	for i := 0; i < 6; i++ {
		idx, _ := s.Select(3, rng)
		out = append(out, idx)
	}
	// 0 -> 1 -> 2 (flip) -> 1 -> 0 (flip) -> 1 ...
	require.Equal(t, []int{0, 1, 2, 1, 0, 1}, out)
}

func TestSelectorNoDoubleNeverRepeats(t *testing.T) {
	s := NewSelector(NoDouble)
	rng := &sequentialRNG{calls: []int{0, 0, 0, 0, 0}}
	last := -1
	for i := 0; i < 5; i++ {
		idx, err := s.Select(4, rng)
		require.NoError(t, err)
		require.NotEqual(t, last, idx)
		last = idx
	}
}

func TestParseSelectorMode(t *testing.T) {
	m, ok := ParseSelectorMode("deck-loop")
	require.True(t, ok)
	require.Equal(t, DeckLoop, m)

	_, ok = ParseSelectorMode("bogus")
	require.False(t, ok)
}

func TestResolverPushPopBlock(t *testing.T) {
	r := New()
	require.Nil(t, r.ActiveBlock())
	r.PushBlock(seqs(1), parser.PrintNone, parser.PrintNone)
	require.NotNil(t, r.ActiveBlock())
	popped := r.PopBlock()
	require.NotNil(t, popped)
	require.Nil(t, r.ActiveBlock())
}

func TestResolverActiveRepeaterSkipsNonRepeating(t *testing.T) {
	r := New()
	r.PushBlock(seqs(1), parser.PrintNone, parser.PrintNone) // Once, not a repeater
	r.Attrs().Reps = RepsForever
	r.PushBlock(seqs(1), parser.PrintNone, parser.PrintNone)

	rep := r.ActiveRepeater()
	require.NotNil(t, rep)
	require.True(t, rep.IsRepeater())
}
