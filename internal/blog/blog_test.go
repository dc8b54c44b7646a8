package blog_test

import (
	"context"
	"myblog/pkg/logger"
	"myblog/pkg/storage"
	"testing"

	mockstorage "myblog/pkg/storage/mock"

	"go.uber.org/mock/gomock"
)

// The generated storage mocks must keep up with the storage interfaces.
var (
	_ storage.Storage    = (*mockstorage.MockStorage)(nil)
	_ storage.TxStorage  = (*mockstorage.MockTxStorage)(nil)
	_ storage.AllStorage = (*mockstorage.MockAllStorage)(nil)
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newStorage(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)

	return ctrl, mockstorage.NewMockStorage(ctrl)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func ptr[T any](v T) *T { return &v }
