package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("color", "always"))
	require.NoError(t, store.Set("color", "never"))

	val, ok := store.Get("color")
	assert.True(t, ok)
	assert.Equal(t, "never", val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("color", 42)

	assert.Equal(t, "", store.GetString("color"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("warn_phi", true)
	_ = store.Set("verbose", "yes")

	assert.True(t, store.GetBool("warn_phi"))
	assert.False(t, store.GetBool("verbose"), "non-bool values read as false")
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("verbose", true)
			_ = store.GetBool("verbose")
		}()
	}
	wg.Wait()

	assert.True(t, store.GetBool("verbose"))
}
