package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/domain"
	"github.com/tokyo-toilet-data/internal/usecase"
)

func wardSource(rows ...domain.Record) *domain.Table {
	t := domain.NewTable(domain.PinColumns)
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

func TestWardSplitUseCase_Run(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("groups rows into per-ward files, drops other", func(t *testing.T) {
		repo := &MockTableRepository{}
		repo.On("Load", "in.csv").Return(wardSource(
			domain.Record{domain.PinColName: "A", domain.PinColAddress: "東京都千代田区1-1"},
			domain.Record{domain.PinColName: "B", domain.PinColAddress: "東京都港区2-2"},
			domain.Record{domain.PinColName: "C", domain.PinColAddress: "東京都千代田区3-3"},
			domain.Record{domain.PinColName: "D", domain.PinColAddress: "神奈川県横浜市"},
		), nil)

		saved := make(map[string]*domain.Table)
		repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved[args.String(0)] = args.Get(1).(*domain.Table)
		}).Return(nil)

		uc := usecase.NewWardSplitUseCase(repo, logger)
		require.NoError(t, uc.Run(ctx, "in.csv", "data/wards"))

		require.Len(t, saved, 2)
		chiyoda := saved[filepath.Join("data/wards", "千代田区.csv")]
		require.NotNil(t, chiyoda)
		assert.Equal(t, domain.PinColumns, chiyoda.Header)
		require.Equal(t, 2, chiyoda.Len())
		assert.Equal(t, "A", chiyoda.Rows[0][domain.PinColName])
		assert.Equal(t, "C", chiyoda.Rows[1][domain.PinColName])

		minato := saved[filepath.Join("data/wards", "港区.csv")]
		require.NotNil(t, minato)
		require.Equal(t, 1, minato.Len())
		assert.Equal(t, "B", minato.Rows[0][domain.PinColName])
	})

	t.Run("classifies transformer output by its address column", func(t *testing.T) {
		repo := &MockTableRepository{}
		src := domain.NewTable([]string{"facility_name", "prefecture", "address", "latitude"})
		src.Append(domain.Record{
			"facility_name": "区民センター",
			"prefecture":    "東京都",
			"address":       "目黒区中目黒2-10-13",
			"latitude":      "35.6438",
		})
		repo.On("Load", "in.csv").Return(src, nil)

		saved := make(map[string]*domain.Table)
		repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved[args.String(0)] = args.Get(1).(*domain.Table)
		}).Return(nil)

		uc := usecase.NewWardSplitUseCase(repo, logger)
		require.NoError(t, uc.Run(ctx, "in.csv", "out"))

		meguro := saved[filepath.Join("out", "目黒区.csv")]
		require.NotNil(t, meguro)
		assert.Equal(t, src.Header, meguro.Header)
		assert.Equal(t, 1, meguro.Len())
	})

	t.Run("missing address column fails", func(t *testing.T) {
		repo := &MockTableRepository{}
		src := domain.NewTable([]string{"name", "lat", "lng"})
		src.Append(domain.Record{"name": "A"})
		repo.On("Load", "in.csv").Return(src, nil)

		uc := usecase.NewWardSplitUseCase(repo, logger)
		err := uc.Run(ctx, "in.csv", "data/wards")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "address")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("only other rows writes nothing", func(t *testing.T) {
		repo := &MockTableRepository{}
		repo.On("Load", "in.csv").Return(wardSource(
			domain.Record{domain.PinColName: "D", domain.PinColAddress: "大阪府大阪市"},
		), nil)

		uc := usecase.NewWardSplitUseCase(repo, logger)
		require.NoError(t, uc.Run(ctx, "in.csv", "data/wards"))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
