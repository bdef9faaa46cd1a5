package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

// ---- fakes ----

type fakeSource struct {
	ads     []models.Ad
	listErr error
	setErr  error
	message string

	lists    int
	verified []int64
	rejected []int64
}

func (f *fakeSource) List(ctx context.Context) ([]models.Ad, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Ad
	for _, a := range f.ads {
		if a.Verified == models.Pending {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeSource) set(id int64, v models.Verification) error {
	for i := range f.ads {
		if f.ads[i].ID == id {
			f.ads[i].Verified = v
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeSource) Verify(ctx context.Context, id int64) (string, error) {
	if f.setErr != nil {
		return "", f.setErr
	}
	f.verified = append(f.verified, id)
	return f.message, f.set(id, models.Approved)
}

func (f *fakeSource) Reject(ctx context.Context, id int64) (string, error) {
	if f.setErr != nil {
		return "", f.setErr
	}
	f.rejected = append(f.rejected, id)
	return f.message, f.set(id, models.Rejected)
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func day(y int, m time.Month, d int) models.Date {
	return models.Date{Year: y, Month: m, Day: d}
}

func newAdQueue(src *fakeSource, c *clock) *Queue[models.Ad] {
	return New[models.Ad](src, UpcomingAds, Options{Now: c.now})
}

func feb1() *clock {
	return &clock{t: time.Date(2024, time.February, 1, 12, 0, 0, 0, time.Local)}
}

// ---- tests ----

func TestLoad_FiltersAndSortsAds(t *testing.T) {
	src := &fakeSource{ads: []models.Ad{
		{ID: 1, Date: day(2024, 1, 1)},
		{ID: 2, Date: day(2024, 6, 1)},
		{ID: 3, Date: day(2024, 3, 1)},
	}}
	q := newAdQueue(src, feb1())

	assert.Equal(t, StateLoading, q.State())
	require.NoError(t, q.Load(context.Background()))
	assert.Equal(t, StateReady, q.State())

	require.Equal(t, 2, q.Len())
	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, day(2024, 3, 1), cur.Date)

	require.True(t, q.Next())
	cur, _ = q.Current()
	assert.Equal(t, day(2024, 6, 1), cur.Date)
}

func TestNavigation_Bounds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		q := newAdQueue(&fakeSource{}, feb1())
		require.NoError(t, q.Load(context.Background()))

		_, ok := q.Current()
		assert.False(t, ok)
		assert.False(t, q.CanPrev())
		assert.False(t, q.CanNext())
		assert.False(t, q.Next())
		assert.False(t, q.Prev())
		assert.ErrorIs(t, q.Verify(context.Background()), ErrNothingSelected)
	})

	t.Run("one item", func(t *testing.T) {
		q := newAdQueue(&fakeSource{ads: []models.Ad{{ID: 1, Date: day(2024, 2, 1)}}}, feb1())
		require.NoError(t, q.Load(context.Background()))

		_, ok := q.Current()
		assert.True(t, ok)
		assert.False(t, q.CanPrev())
		assert.False(t, q.CanNext())
	})

	t.Run("clamped walk", func(t *testing.T) {
		src := &fakeSource{ads: []models.Ad{
			{ID: 1, Date: day(2024, 2, 2)},
			{ID: 2, Date: day(2024, 2, 3)},
			{ID: 3, Date: day(2024, 2, 4)},
		}}
		q := newAdQueue(src, feb1())
		require.NoError(t, q.Load(context.Background()))

		assert.False(t, q.Prev())
		assert.True(t, q.Next())
		assert.True(t, q.Next())
		assert.False(t, q.Next())
		assert.Equal(t, 2, q.Index())
		assert.True(t, q.CanPrev())
		assert.True(t, q.Prev())
		assert.Equal(t, 1, q.Index())
	})
}

func TestVerify_ReloadsAndResetsCursor(t *testing.T) {
	src := &fakeSource{ads: []models.Ad{
		{ID: 1, Date: day(2024, 2, 2)},
		{ID: 2, Date: day(2024, 2, 3)},
		{ID: 3, Date: day(2024, 2, 4)},
	}}
	q := newAdQueue(src, feb1())
	require.NoError(t, q.Load(context.Background()))
	q.Next()
	q.Next()

	require.NoError(t, q.Verify(context.Background()))

	assert.Equal(t, []int64{3}, src.verified)
	assert.Equal(t, 2, src.lists)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 0, q.Index())
	cur, _ := q.Current()
	assert.Equal(t, int64(1), cur.ID)
	_, shown := q.Notice()
	assert.False(t, shown, "no message, no notice")
}

func TestReject_ShowsConfirmation(t *testing.T) {
	src := &fakeSource{
		ads:     []models.Ad{{ID: 7, Date: day(2024, 5, 5)}},
		message: "User rejected successfully",
	}
	q := newAdQueue(src, feb1())
	require.NoError(t, q.Load(context.Background()))

	require.NoError(t, q.Reject(context.Background()))

	assert.Equal(t, []int64{7}, src.rejected)
	assert.Zero(t, q.Len())
	n, ok := q.Notice()
	require.True(t, ok)
	assert.False(t, n.Error)
	assert.Equal(t, "User rejected successfully", n.Message)
	assert.Equal(t, StateReady, q.State())
}

func TestLoadFailure_EntersErrorState(t *testing.T) {
	c := feb1()
	src := &fakeSource{listErr: errors.New("server unavailable")}
	q := newAdQueue(src, c)

	require.Error(t, q.Load(context.Background()))
	assert.Equal(t, StateError, q.State())

	n, ok := q.Notice()
	require.True(t, ok)
	assert.True(t, n.Error)
	assert.Equal(t, "server unavailable", n.Message)

	q.Dismiss()
	_, ok = q.Notice()
	assert.False(t, ok)
	assert.Equal(t, StateError, q.State(), "nothing loaded yet")
	assert.Equal(t, 1, src.lists, "no automatic retry")
}

func TestMutationFailure_KeepsListForManualRetry(t *testing.T) {
	c := feb1()
	src := &fakeSource{ads: []models.Ad{
		{ID: 1, Date: day(2024, 2, 2)},
		{ID: 2, Date: day(2024, 2, 3)},
	}}
	q := newAdQueue(src, c)
	require.NoError(t, q.Load(context.Background()))
	q.Next()

	src.setErr = errors.New("Error verifying ad")
	require.Error(t, q.Verify(context.Background()))

	assert.Equal(t, StateError, q.State())
	_, ok := q.Current()
	assert.False(t, ok)
	assert.False(t, q.CanNext())

	q.Dismiss()
	assert.Equal(t, StateReady, q.State())
	assert.Equal(t, 2, q.Len())
	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, int64(2), cur.ID, "cursor kept")

	src.setErr = nil
	require.NoError(t, q.Verify(context.Background()))
	assert.Equal(t, []int64{2}, src.verified)
}

func TestNotice_ExpiresAfterDisplayDuration(t *testing.T) {
	c := feb1()
	src := &fakeSource{ads: []models.Ad{{ID: 1, Date: day(2024, 2, 2)}}}
	q := newAdQueue(src, c)
	require.NoError(t, q.Load(context.Background()))

	src.setErr = errors.New("boom")
	require.Error(t, q.Reject(context.Background()))

	c.advance(DefaultNoticeDuration - time.Millisecond)
	_, ok := q.Notice()
	assert.True(t, ok)
	assert.Equal(t, StateError, q.State())

	c.advance(time.Millisecond)
	_, ok = q.Notice()
	assert.False(t, ok)
	assert.Equal(t, StateReady, q.State())
}

func TestNew_Defaults(t *testing.T) {
	src := &fakeSource{ads: []models.Ad{{ID: 2}, {ID: 1}}}
	q := New[models.Ad](src, nil, Options{})

	require.NoError(t, q.Load(context.Background()))
	assert.Equal(t, 2, q.Len(), "server order keeps undated records")
	cur, _ := q.Current()
	assert.Equal(t, int64(2), cur.ID)
	assert.Equal(t, DefaultNoticeDuration, q.noticeTTL)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "unknown", State(9).String())
}
