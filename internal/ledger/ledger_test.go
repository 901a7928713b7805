package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/testutil"
)

func coffee() expense.Draft {
	return expense.Draft{
		Description:   "Coffee",
		Amount:        350,
		Category:      expense.Food,
		Date:          expense.NewDate(2025, time.October, 26),
		PaymentMethod: expense.Cash,
	}
}

func TestAddPrependsWithFreshID(t *testing.T) {
	records := testutil.ScenarioExpenses(t)
	ids := NewSequenceGenerator(3)

	updated, created := Add(records, coffee(), ids)

	assert.Equal(t, "4", created.ID())
	assert.Equal(t, coffee(), created.Draft())
	assert.Equal(t, []string{"4", "1", "2", "3"}, testutil.IDs(updated))
	assert.Equal(t, []string{"1", "2", "3"}, testutil.IDs(records), "input must not change")

	_, second := Add(updated, coffee(), ids)
	assert.Equal(t, "5", second.ID())
}

func TestAddToEmptyList(t *testing.T) {
	updated, created := Add(nil, coffee(), NewSequenceGenerator(0))

	require.Len(t, updated, 1)
	assert.True(t, updated[0].Equal(created))
	assert.Equal(t, "1", created.ID())
}

func TestAddRemoveRoundTrip(t *testing.T) {
	records := testutil.DashboardExpenses(t)

	added, created := Add(records, coffee(), UUIDGenerator{})
	restored, err := Remove(added, created.ID())

	require.NoError(t, err)
	assert.Equal(t, records, restored)
}

func TestUpdate(t *testing.T) {
	records := testutil.ScenarioExpenses(t)

	draft := records[1].Draft()
	draft.Amount = 5000
	draft.Description = "Gas refill"
	replacement := expense.New(records[1].ID(), draft)

	updated, err := Update(records, replacement)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, testutil.IDs(updated))
	assert.True(t, updated[1].Equal(replacement))
	assert.Equal(t, int64(4500), records[1].Amount(), "input must not change")
}

func TestUpdateUnknownID(t *testing.T) {
	records := testutil.ScenarioExpenses(t)

	updated, err := Update(records, expense.New("missing", coffee()))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, records, updated)
}

func TestRemove(t *testing.T) {
	records := testutil.ScenarioExpenses(t)

	updated, err := Remove(records, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, testutil.IDs(updated))
	assert.Equal(t, []string{"1", "2", "3"}, testutil.IDs(records), "input must not change")

	updated, err = Remove(updated, "2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"1", "3"}, testutil.IDs(updated))
}

func TestFind(t *testing.T) {
	records := testutil.ScenarioExpenses(t)

	found, ok := Find(records, "3")
	require.True(t, ok)
	assert.Equal(t, "Movie Tickets", found.Description())

	_, ok = Find(records, "42")
	assert.False(t, ok)
}

func TestUUIDGenerator(t *testing.T) {
	gen := UUIDGenerator{}
	seen := make(map[string]bool)

	previous := ""
	for n := 0; n < 100; n++ {
		id := gen.NewID()

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		assert.Greater(t, id, previous, "ids must be time ordered")
		previous = id
	}
}
