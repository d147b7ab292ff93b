// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package crates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdhender/advent2022/crates"
)

var sampleMoves = []crates.Move{
	{Count: 1, From: 2, To: 1},
	{Count: 3, From: 1, To: 3},
	{Count: 2, From: 2, To: 1},
	{Count: 1, From: 1, To: 2},
}

func TestRun_Single(t *testing.T) {
	stacks := crates.ParseLayout(sampleDiagram)
	final, err := crates.Run(stacks, sampleMoves, crates.Single)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", crates.Tops(final))
	assert.Equal(t, "NDP", crates.Tops(stacks), "initial stacks must not change")
}

func TestRun_Block(t *testing.T) {
	stacks := crates.ParseLayout(sampleDiagram)
	final, err := crates.Run(stacks, sampleMoves, crates.Block)
	require.NoError(t, err)
	assert.Equal(t, "MCD", crates.Tops(final))
	assert.Equal(t, "NDP", crates.Tops(stacks), "initial stacks must not change")
}

func TestApply_BlockIntermediateStates(t *testing.T) {
	stacks := crates.ParseLayout(sampleDiagram).Clone()
	require.Equal(t, "NDP", crates.Tops(stacks))
	for n, want := range []string{"DCP", " CD", "C D", "MCD"} {
		require.NoError(t, crates.Apply(stacks, sampleMoves[n], crates.Block))
		assert.Equal(t, want, crates.Tops(stacks), "after step %d", n+1)
	}
}

func TestApply_SingleReversesBlock(t *testing.T) {
	stacks := crates.Stacks{1: {'A', 'B', 'C'}, 2: {}}
	require.NoError(t, crates.Apply(stacks, crates.Move{Count: 3, From: 1, To: 2}, crates.Single))
	assert.Equal(t, "CBA", stacks[2].String())
	assert.Empty(t, stacks[1])

	stacks = crates.Stacks{1: {'A', 'B', 'C'}, 2: {}}
	require.NoError(t, crates.Apply(stacks, crates.Move{Count: 3, From: 1, To: 2}, crates.Block))
	assert.Equal(t, "ABC", stacks[2].String())
}

func TestApply_SameStackIsNoOp(t *testing.T) {
	for _, mode := range []crates.Mode{crates.Single, crates.Block} {
		stacks := crates.Stacks{1: {'A', 'B', 'C'}}
		require.NoError(t, crates.Apply(stacks, crates.Move{Count: 2, From: 1, To: 1}, mode))
		assert.Equal(t, "ABC", stacks[1].String(), mode.String())
	}
}

func TestApply_Preconditions(t *testing.T) {
	stacks := crates.Stacks{1: {'A'}, 2: {}}

	err := crates.Apply(stacks, crates.Move{Count: 1, From: 3, To: 1}, crates.Block)
	assert.ErrorIs(t, err, crates.ErrUnknownStack)

	err = crates.Apply(stacks, crates.Move{Count: 1, From: 1, To: 9}, crates.Block)
	assert.ErrorIs(t, err, crates.ErrUnknownStack)

	err = crates.Apply(stacks, crates.Move{Count: 2, From: 1, To: 2}, crates.Single)
	assert.ErrorIs(t, err, crates.ErrNotEnoughCrates)

	assert.Equal(t, "A", stacks[1].String(), "failed moves must not change the stacks")
	assert.Empty(t, stacks[2])
}

func TestApply_UnknownMode(t *testing.T) {
	stacks := crates.Stacks{1: {'A'}, 2: {}}
	for _, move := range []crates.Move{
		{Count: 1, From: 1, To: 2},
		{Count: 0, From: 1, To: 2},
		{Count: 1, From: 1, To: 1},
	} {
		assert.Error(t, crates.Apply(stacks, move, crates.Mode(7)), move.String())
	}
	assert.Equal(t, "A", stacks[1].String())
	assert.Empty(t, stacks[2])
}

func TestRun_AbortsOnFailure(t *testing.T) {
	stacks := crates.Stacks{1: {'A'}, 2: {}}
	_, err := crates.Run(stacks, []crates.Move{
		{Count: 1, From: 1, To: 2},
		{Count: 1, From: 1, To: 2},
	}, crates.Block)
	require.Error(t, err)

	var me *crates.MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 2, me.Step)
	assert.ErrorIs(t, err, crates.ErrNotEnoughCrates)
}

func TestParseMode(t *testing.T) {
	m, err := crates.ParseMode("single")
	require.NoError(t, err)
	assert.Equal(t, crates.Single, m)

	m, err = crates.ParseMode("block")
	require.NoError(t, err)
	assert.Equal(t, crates.Block, m)

	_, err = crates.ParseMode("9001")
	assert.Error(t, err)
}
