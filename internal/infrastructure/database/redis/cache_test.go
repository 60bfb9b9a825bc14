package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juristech/prazo/pkg/errors"
)

func TestNewCache_RequiresAddr(t *testing.T) {
	_, err := NewCache(context.Background(), Config{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCacheError))
}

func TestNewCache_UnreachableServer(t *testing.T) {
	_, err := NewCache(context.Background(), Config{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCacheError))
}

//Personal.AI order the ending
