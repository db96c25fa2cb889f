package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore implements Store in memory for tests.
type memStore struct {
	ids     []int64
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) VisitedQuizzes() ([]int64, error) {
	return m.ids, m.loadErr
}

func (m *memStore) SetVisitedQuizzes(ids []int64) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.ids = append([]int64(nil), ids...)
	m.saves++
	return nil
}

func TestRecordMovesExistingToMostRecent(t *testing.T) {
	tr := Load(&memStore{})

	require.NoError(t, tr.Record(1))
	require.NoError(t, tr.Record(2))
	require.NoError(t, tr.Record(3))
	require.NoError(t, tr.Record(1))

	assert.Equal(t, []int64{2, 3, 1}, tr.Entries())
	assert.Equal(t, 3, tr.Len())
}

func TestRecordCapsAtMaxEntries(t *testing.T) {
	tr := Load(&memStore{})
	for i := range MaxEntries + 20 {
		require.NoError(t, tr.Record(int64(i)))
	}
	assert.Equal(t, MaxEntries, tr.Len())

	// The oldest surviving entry is the 21st recorded.
	assert.Equal(t, int64(20), tr.Entries()[0])
	assert.Equal(t, int64(MaxEntries+19), tr.Entries()[MaxEntries-1])
}

func TestCanGoBackDisabledOnFirstQuiz(t *testing.T) {
	tr := Load(&memStore{})

	// Fresh session, nothing left behind yet.
	assert.False(t, tr.CanGoBack(7))

	// Quiz 7 left behind, learner now on quiz 8: one entry is enough.
	require.NoError(t, tr.Record(7))
	assert.True(t, tr.CanGoBack(8))

	// Nothing precedes the oldest entry itself.
	assert.False(t, tr.CanGoBack(7))
}

func TestPredecessorOf(t *testing.T) {
	tr := Load(&memStore{})
	require.NoError(t, tr.Record(1))
	require.NoError(t, tr.Record(2))
	require.NoError(t, tr.Record(3))

	prev, ok := tr.PredecessorOf(3)
	require.True(t, ok)
	assert.Equal(t, int64(2), prev)

	prev, ok = tr.PredecessorOf(2)
	require.True(t, ok)
	assert.Equal(t, int64(1), prev)

	// Oldest entry has no predecessor.
	_, ok = tr.PredecessorOf(1)
	assert.False(t, ok)

	// Current quiz absent from the log (direct link): most recent wins.
	prev, ok = tr.PredecessorOf(99)
	require.True(t, ok)
	assert.Equal(t, int64(3), prev)
}

func TestPredecessorOfSingleEntry(t *testing.T) {
	tr := Load(&memStore{})
	require.NoError(t, tr.Record(1))

	// The only entry cannot precede itself.
	_, ok := tr.PredecessorOf(1)
	assert.False(t, ok)

	// From any other quiz the single entry is the predecessor.
	prev, ok := tr.PredecessorOf(42)
	require.True(t, ok)
	assert.Equal(t, int64(1), prev)
}

func TestLoadRestoresFromStore(t *testing.T) {
	st := &memStore{ids: []int64{4, 5, 6}}
	tr := Load(st)

	assert.Equal(t, []int64{4, 5, 6}, tr.Entries())
	assert.True(t, tr.CanGoBack(99))
}

func TestLoadClampsOversizedStore(t *testing.T) {
	ids := make([]int64, MaxEntries+10)
	for i := range ids {
		ids[i] = int64(i)
	}
	tr := Load(&memStore{ids: ids})
	assert.Equal(t, MaxEntries, tr.Len())
	assert.Equal(t, int64(10), tr.Entries()[0])
}

func TestLoadToleratesStoreFailure(t *testing.T) {
	tr := Load(&memStore{loadErr: errors.New("corrupt")})
	assert.Equal(t, 0, tr.Len())
	assert.False(t, tr.CanGoBack(1))
}

func TestRecordPersistsWriteThrough(t *testing.T) {
	st := &memStore{}
	tr := Load(st)
	require.NoError(t, tr.Record(1))
	require.NoError(t, tr.Record(2))

	assert.Equal(t, []int64{1, 2}, st.ids)
	assert.Equal(t, 2, st.saves)
}

func TestRecordSurfacesSaveError(t *testing.T) {
	st := &memStore{saveErr: errors.New("disk full")}
	tr := Load(st)

	err := tr.Record(1)
	require.Error(t, err)

	// In-memory state still advanced; persistence is best effort.
	assert.Equal(t, 1, tr.Len())
}

func TestNilStore(t *testing.T) {
	tr := Load(nil)
	require.NoError(t, tr.Record(1))
	require.NoError(t, tr.Record(2))
	assert.True(t, tr.CanGoBack(3))
}
