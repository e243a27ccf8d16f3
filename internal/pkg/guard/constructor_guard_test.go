package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tariff/internal/pkg/guard"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("object must be created via its constructor")

	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		assert.NoError(t, g.Validate(errNotConstructed))
	})

	t.Run("zero value guard fails validation", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(errNotConstructed)
		assert.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("nil validation error falls back to default", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)
		assert.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("constructed guard with nil validation error passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		assert.NoError(t, g.Validate(nil))
	})
}
