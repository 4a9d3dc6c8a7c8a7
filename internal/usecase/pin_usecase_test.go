package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/domain"
	"github.com/tokyo-toilet-data/internal/usecase"
)

func pinSource(rows ...domain.Record) *domain.Table {
	t := domain.NewTable([]string{
		domain.ColFacilityName,
		domain.ColPrefecture,
		domain.ColMunicipality,
		domain.ColFloor,
		domain.ColToiletName,
		domain.ColDoorType,
		domain.ColLatitude,
		domain.ColLongitude,
		domain.ColRemarks,
		"車椅子が出入りできる（出入口の有効幅員80cm以上）",
		"オストメイト用設備がある",
		"大型ベッドを備えている",
		"月曜日",
		"火曜日",
		"水曜日",
		"木曜日",
	})
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

func TestPinUseCase_Run(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("produces the eight pin fields", func(t *testing.T) {
		repo := &MockTableRepository{}
		repo.On("Load", "in.csv").Return(pinSource(
			domain.Record{
				domain.ColFacilityName: "中央図書館",
				domain.ColPrefecture:   "東京都",
				domain.ColMunicipality: "千代田区九段南1-1",
				domain.ColFloor:        "1F",
				domain.ColToiletName:   "多目的トイレ",
				domain.ColLatitude:     "35.694",
				domain.ColLongitude:    "139.744",
			},
		), nil)
		var saved *domain.Table
		captureSave(repo, "out.csv", &saved)

		uc := usecase.NewPinUseCase(repo, logger, "#00cc00")
		require.NoError(t, uc.Run(ctx, "in.csv", "out.csv"))

		assert.Equal(t, domain.PinColumns, saved.Header)
		require.Equal(t, 1, saved.Len())
		row := saved.Rows[0]
		assert.Equal(t, "中央図書館", row[domain.PinColName])
		assert.Equal(t, "東京都 千代田区九段南1-1", row[domain.PinColAddress])
		assert.Equal(t, "1F", row[domain.PinColFloor])
		assert.Equal(t, "多目的トイレ", row[domain.PinColToiletName])
		assert.Equal(t, "#00cc00", row[domain.PinColColor])
		assert.Equal(t, "139.744", row[domain.PinColLng])
		assert.Equal(t, "35.694", row[domain.PinColLat])
	})

	t.Run("address join trims a missing prefecture", func(t *testing.T) {
		repo := &MockTableRepository{}
		repo.On("Load", "in.csv").Return(pinSource(
			domain.Record{
				domain.ColFacilityName: "施設A",
				domain.ColMunicipality: "港区六本木1-1",
			},
		), nil)
		var saved *domain.Table
		captureSave(repo, "out.csv", &saved)

		uc := usecase.NewPinUseCase(repo, logger, "#00cc00")
		require.NoError(t, uc.Run(ctx, "in.csv", "out.csv"))
		assert.Equal(t, "港区六本木1-1", saved.Rows[0][domain.PinColAddress])
	})

	t.Run("builds every note section in order", func(t *testing.T) {
		repo := &MockTableRepository{}
		repo.On("Load", "in.csv").Return(pinSource(
			domain.Record{
				domain.ColFacilityName: "施設A",
				domain.ColDoorType:     "引き戸",
				domain.ColRemarks:      "夜間閉鎖",
				"車椅子が出入りできる（出入口の有効幅員80cm以上）": "TRUE",
				"オストメイト用設備がある":               "TRUE",
				"大型ベッドを備えている":                "FALSE",
				"月曜日":                        "9:00-17:00",
				"火曜日":                        "",
				"水曜日":                        "9:00-17:00",
				"木曜日":                        "9:00-20:00",
			},
		), nil)
		var saved *domain.Table
		captureSave(repo, "out.csv", &saved)

		uc := usecase.NewPinUseCase(repo, logger, "#00cc00")
		require.NoError(t, uc.Run(ctx, "in.csv", "out.csv"))

		note := saved.Rows[0][domain.PinColNote]
		assert.Equal(t,
			"設備: 車椅子対応, オストメイト対応 | 扉: 引き戸 | "+
				"営業時間: 月曜日: 9:00-17:00, 水曜日: 9:00-17:00, 木曜日: 9:00-20:00 | "+
				"備考: 夜間閉鎖",
			note)
	})

	t.Run("caps operating hours at three entries", func(t *testing.T) {
		repo := &MockTableRepository{}
		repo.On("Load", "in.csv").Return(pinSource(
			domain.Record{
				domain.ColFacilityName: "施設A",
				"月曜日":                  "9-17",
				"火曜日":                  "9-17",
				"水曜日":                  "9-17",
				"木曜日":                  "9-17",
			},
		), nil)
		var saved *domain.Table
		captureSave(repo, "out.csv", &saved)

		uc := usecase.NewPinUseCase(repo, logger, "#00cc00")
		require.NoError(t, uc.Run(ctx, "in.csv", "out.csv"))

		assert.Equal(t,
			"営業時間: 月曜日: 9-17, 火曜日: 9-17, 水曜日: 9-17",
			saved.Rows[0][domain.PinColNote])
	})

	t.Run("omits empty sections entirely", func(t *testing.T) {
		repo := &MockTableRepository{}
		repo.On("Load", "in.csv").Return(pinSource(
			domain.Record{domain.ColFacilityName: "施設A"},
		), nil)
		var saved *domain.Table
		captureSave(repo, "out.csv", &saved)

		uc := usecase.NewPinUseCase(repo, logger, "#00cc00")
		require.NoError(t, uc.Run(ctx, "in.csv", "out.csv"))
		assert.Equal(t, "", saved.Rows[0][domain.PinColNote])
	})

	t.Run("drops rows with empty facility name", func(t *testing.T) {
		repo := &MockTableRepository{}
		repo.On("Load", "in.csv").Return(pinSource(
			domain.Record{domain.ColFacilityName: " "},
			domain.Record{domain.ColFacilityName: "施設A"},
		), nil)
		var saved *domain.Table
		captureSave(repo, "out.csv", &saved)

		uc := usecase.NewPinUseCase(repo, logger, "#00cc00")
		require.NoError(t, uc.Run(ctx, "in.csv", "out.csv"))
		require.Equal(t, 1, saved.Len())
		assert.Equal(t, "施設A", saved.Rows[0][domain.PinColName])
	})
}
