package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgeDispatchBeforeRegisterIsDropped(t *testing.T) {
	b := &Bridge{}
	assert.False(t, b.Registered())
	assert.NotPanics(t, func() {
		assert.Empty(t, b.Dispatch("lost", VariantError, false))
	})
}

func TestBridgeDispatchForwardsToStore(t *testing.T) {
	s, _ := newTestStore(t)
	b := &Bridge{}
	s.Mount(b)

	id := b.Dispatch("from outside", VariantWarning, true)
	require.NotEmpty(t, id)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "from outside", got.Message)
	assert.Equal(t, VariantWarning, got.Variant)
	assert.True(t, got.Dismissible)
	assert.Equal(t, PositionTopRight, got.Position)
}

func TestBridgeDispatchAt(t *testing.T) {
	s, _ := newTestStore(t)
	b := &Bridge{}
	s.Mount(b)

	b.DispatchAt("corner", VariantInfo, true, PositionBottomLeft)

	assert.Equal(t, []string{"corner"}, messages(s.Groups()[PositionBottomLeft]))
}

func TestBridgeRegisterOverwrites(t *testing.T) {
	first, _ := newTestStore(t)
	second, _ := newTestStore(t)
	b := &Bridge{}

	first.Mount(b)
	second.Mount(b)
	b.Dispatch("hello", VariantInfo, true)

	assert.Equal(t, 0, first.Len())
	assert.Equal(t, 1, second.Len())
}

func TestBridgeStaleUnregisterKeepsNewerRegistration(t *testing.T) {
	first, _ := newTestStore(t)
	second, _ := newTestStore(t)
	b := &Bridge{}

	first.Mount(b)
	second.Mount(b)
	first.Close()

	require.True(t, b.Registered(), "closing the older store cleared the newer registration")
	b.Dispatch("still works", VariantInfo, true)
	assert.Equal(t, 1, second.Len())
}

func TestBridgeUnregisterIsIdempotent(t *testing.T) {
	b := &Bridge{}
	calls := 0
	unregister := b.Register(func(string, Variant, bool, Position) string {
		calls++
		return "id"
	})

	assert.Equal(t, "id", b.Dispatch("x", VariantInfo, false))
	unregister()
	unregister()
	assert.Empty(t, b.Dispatch("x", VariantInfo, false))
	assert.Equal(t, 1, calls)
}

func TestStoreRemountReleasesPreviousBridge(t *testing.T) {
	s, _ := newTestStore(t)
	a, b := &Bridge{}, &Bridge{}

	s.Mount(a)
	s.Mount(b)

	assert.False(t, a.Registered())
	assert.True(t, b.Registered())
}

func TestDefaultBridge(t *testing.T) {
	t.Cleanup(func() { Default = &Bridge{} })
	Default = &Bridge{}

	assert.Empty(t, Dispatch("early", VariantInfo, false))

	s, _ := newTestStore(t)
	unregister := Register(s.Show)
	id := Dispatch("late", VariantSuccess, false)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, s.Len())

	unregister()
	assert.Empty(t, Dispatch("after", VariantInfo, false))
	assert.Equal(t, 1, s.Len())
}

func TestOldStoreCloseKeepsNewerMount(t *testing.T) {
	b := &Bridge{}
	old, _ := newTestStore(t)
	current, _ := newTestStore(t)

	old.Mount(b)
	current.Mount(b)
	old.Close()

	require.True(t, b.Registered())
	id := b.Dispatch("still here", VariantInfo, true)
	require.NotEmpty(t, id)
	_, ok := current.Get(id)
	assert.True(t, ok)
}
