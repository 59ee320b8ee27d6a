package leads

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSetAndGet(t *testing.T) {
	table := NewTable()

	require.NoError(t, table.Set(&Lead{ID: 1, FullName: "Dana Cohen", Status: StatusNew}))
	require.NoError(t, table.Set(&Lead{ID: 2, FullName: "Omar Haddad", Status: StatusContacted}))

	lead, ok := table.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Dana Cohen", lead.FullName)

	_, ok = table.Get(99)
	assert.False(t, ok)

	assert.True(t, table.Exists(2))
	assert.False(t, table.Exists(99))
	assert.Equal(t, 2, table.Len())
}

func TestTableSetNil(t *testing.T) {
	table := NewTable()
	assert.Error(t, table.Set(nil))
}

func TestTableUpsertKeepsOrder(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set(&Lead{ID: 3, FullName: "C"}))
	require.NoError(t, table.Set(&Lead{ID: 1, FullName: "A"}))
	require.NoError(t, table.Set(&Lead{ID: 2, FullName: "B"}))

	// Overwriting an existing ID must not move it
	require.NoError(t, table.Set(&Lead{ID: 3, FullName: "C2"}))

	assert.Equal(t, []int{3, 1, 2}, table.IDs())
	lead, _ := table.Get(3)
	assert.Equal(t, "C2", lead.FullName)
	assert.Equal(t, 3, table.Len())
}

func TestTableListOrder(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set(&Lead{ID: 5, FullName: "E"}))
	require.NoError(t, table.Set(&Lead{ID: 2, FullName: "B"}))

	list := table.List()
	require.Len(t, list, 2)
	assert.Equal(t, 5, list[0].ID)
	assert.Equal(t, 2, list[1].ID)
}

func TestTableForEachEarlyStop(t *testing.T) {
	table := NewTable()
	for i := 1; i <= 5; i++ {
		require.NoError(t, table.Set(&Lead{ID: i}))
	}

	visited := 0
	table.ForEach(func(l *Lead) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestTableCopyIsDeep(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set(&Lead{ID: 1, FullName: "Dana Cohen", Status: StatusNew}))

	c := table.Copy()
	lead, _ := c.Get(1)
	lead.FullName = "changed"

	original, _ := table.Get(1)
	assert.Equal(t, "Dana Cohen", original.FullName)
	assert.Equal(t, table.IDs(), c.IDs())
}

func TestTableClear(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set(&Lead{ID: 1}))
	table.Clear()

	assert.Zero(t, table.Len())
	assert.Empty(t, table.IDs())
}

func TestTableEqual(t *testing.T) {
	a := NewTable()
	b := NewTable()
	require.NoError(t, a.Set(&Lead{ID: 1, FullName: "Dana", Status: StatusNew}))
	require.NoError(t, b.Set(&Lead{ID: 1, FullName: "Dana", Status: StatusNew}))

	assert.True(t, a.Equal(b))

	lead, _ := b.Get(1)
	lead.Status = StatusContacted
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(NewTable()))
}

func TestTableConcurrentAccess(t *testing.T) {
	table := NewTable()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = table.Set(&Lead{ID: id, FullName: "lead"})
		}(i + 1)
		go func(id int) {
			defer wg.Done()
			table.Get(id)
			table.Len()
		}(i + 1)
	}
	wg.Wait()

	assert.Equal(t, 50, table.Len())
}
