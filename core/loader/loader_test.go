package loader_test

import (
	"errors"
	"testing"

	"object-storage/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  int
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded++
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	mgr := loader.NewManager()
	a := &stubFeature{name: "objects", enabled: true}
	b := &stubFeature{name: "health", enabled: false}

	assert.True(t, mgr.Register(a))
	assert.True(t, mgr.Register(b))
	assert.False(t, mgr.Register(&stubFeature{name: "objects", enabled: true}))
	assert.False(t, mgr.Register(nil))
	assert.Len(t, mgr.Features(), 2)

	loaded, err := mgr.LoadAll(fiber.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"objects"}, loaded)
	assert.Equal(t, 1, a.loaded)
	assert.Equal(t, 0, b.loaded)
}

func TestManager_LoadAllError(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})

	_, err := mgr.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature broken: boom")
}
