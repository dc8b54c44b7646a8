package storage_test

import (
	"myblog/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageRequest_Offset(t *testing.T) {
	require.Equal(t, uint(0), storage.PageRequest{Page: 0, Size: 10}.Offset())
	require.Equal(t, uint(30), storage.PageRequest{Page: 3, Size: 10}.Offset())
	require.Equal(t, uint(0), storage.PageRequest{Page: -1, Size: 10}.Offset())
	require.Equal(t, uint(0), storage.PageRequest{Page: 2, Size: 0}.Offset())
}
