package kv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertResult(t *testing.T) {
	require.Nil(t, Inserted.Err())
	require.True(t, errors.Is(Rejected.Err(), ErrDuplicateKey))
	require.Equal(t, "inserted", Inserted.String())
	require.Equal(t, "rejected", Rejected.String())
}

func TestParseOrder(t *testing.T) {
	for _, order := range Orders {
		parsed, err := ParseOrder(string(order))
		require.Nil(t, err)
		require.Equal(t, order, parsed)
	}
	parsed, err := ParseOrder("bfs")
	require.Nil(t, err)
	require.Equal(t, LevelOrder, parsed)

	_, err = ParseOrder("zigzag")
	require.ErrorIs(t, err, ErrUnknownOrder)
}
