package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	apperrors "travelbot/internal/errors"
	"travelbot/internal/models"
)

func TestResourceCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewResource[models.Destination](db)
	ctx := context.Background()

	d := &models.Destination{Name: "Huế", Province: "Thừa Thiên Huế", Rating: 4.4}
	require.NoError(t, repo.Create(ctx, d))
	require.NotEqual(t, uuid.Nil, d.ID)

	got, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "Huế", got.Name)
}

func TestResourceFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewResource[models.Destination](db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResourceListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewResource[models.Destination](db)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &models.Destination{Name: fmt.Sprintf("Nơi %d", i)}))
	}

	items, total, err := repo.List(ctx, ListOptions{Skip: 0, Limit: 3})
	require.NoError(t, err)
	require.EqualValues(t, 7, total)
	require.Len(t, items, 3)

	items, _, err = repo.List(ctx, ListOptions{Skip: 6, Limit: 3})
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestResourceListDefaults(t *testing.T) {
	opts := ListOptions{}
	opts.SetDefaults()
	require.Equal(t, 0, opts.Skip)
	require.Equal(t, 100, opts.Limit)
}

func TestResourceUpdateFieldsPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewResource[models.Destination](db)
	ctx := context.Background()

	d := &models.Destination{Name: "Huế", Province: "Thừa Thiên Huế", Rating: 4.4}
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.UpdateFields(ctx, d.ID, map[string]interface{}{"rating": 4.6})
	require.NoError(t, err)
	require.Equal(t, 4.6, got.Rating)
	// Trường không gửi giữ nguyên
	require.Equal(t, "Huế", got.Name)
}

func TestResourceUpdateFieldsEmptyPayload(t *testing.T) {
	db := newTestDB(t)
	repo := NewResource[models.Destination](db)
	ctx := context.Background()

	d := &models.Destination{Name: "Huế"}
	require.NoError(t, repo.Create(ctx, d))

	_, err := repo.UpdateFields(ctx, d.ID, map[string]interface{}{})
	require.ErrorIs(t, err, apperrors.ErrEmptyUpdate)
}

func TestResourceUpdateFieldsMissingID(t *testing.T) {
	db := newTestDB(t)
	repo := NewResource[models.Destination](db)

	_, err := repo.UpdateFields(context.Background(), uuid.New(), map[string]interface{}{"name": "X"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResourceDeleteReportsExistence(t *testing.T) {
	db := newTestDB(t)
	repo := NewResource[models.Destination](db)
	ctx := context.Background()

	d := &models.Destination{Name: "Huế"}
	require.NoError(t, repo.Create(ctx, d))

	existed, err := repo.Delete(ctx, d.ID)
	require.NoError(t, err)
	require.True(t, existed)

	// Sau khi xóa thì không tìm thấy nữa
	_, err = repo.FindByID(ctx, d.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// Xóa lần nữa không lỗi, chỉ báo không có row
	existed, err = repo.Delete(ctx, d.ID)
	require.NoError(t, err)
	require.False(t, existed)
}

func TestEventRecorder(t *testing.T) {
	db := newTestDB(t)
	recorder := NewEventRecorder(db)

	err := recorder.Record(context.Background(), &models.Event{
		SenderID:   "user-1",
		TypeName:   "action",
		ActionName: "action_search_destination",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Event{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
