package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/leadstream/leadstream/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "lead",
			ID:       "42",
		}
		assert.Equal(t, "lead with ID 42 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("owner", "Alice")
		assert.Equal(t, "owner with ID Alice not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("lead", "7")
		wrapped := fmt.Errorf("lookup: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("status", "Bogus", "unknown status")
		assert.Equal(t, "validation failed for field status: unknown status", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty edit"}
		assert.Equal(t, "validation failed: empty edit", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("wrap helper", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapValidation("id", nil))

		err := pkgerrors.WrapValidation("id", errors.New("must be positive"))
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.Contains(t, err.Error(), "must be positive")
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "leads.csv",
			Line:    12,
			Message: "wrong field count",
		}
		assert.Equal(t, "parse error in csv file leads.csv at line 12: wrong field count", err.Error())
		assert.True(t, pkgerrors.IsStoreInit(err))
	})

	t.Run("with file only", func(t *testing.T) {
		err := pkgerrors.NewParseError("csv", "leads.csv", "bad header", nil)
		assert.Equal(t, "parse error in csv file leads.csv: bad header", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		cause := errors.New("unexpected EOF")
		err := pkgerrors.WrapParse("csv", "leads.csv", cause)
		assert.True(t, errors.Is(err, cause))
		assert.True(t, pkgerrors.IsStoreInit(err))
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapParse("csv", "leads.csv", nil))
	})
}

func TestIOError(t *testing.T) {
	t.Run("write is persist", func(t *testing.T) {
		err := pkgerrors.WrapIO("write", "leads.csv", errors.New("disk full"))
		assert.True(t, pkgerrors.IsPersist(err))
		assert.Contains(t, err.Error(), "IO error during write of leads.csv")
	})

	t.Run("create is persist", func(t *testing.T) {
		err := pkgerrors.WrapIO("create", "leads.csv", errors.New("permission denied"))
		assert.True(t, pkgerrors.IsPersist(err))
	})

	t.Run("open is not persist", func(t *testing.T) {
		err := pkgerrors.WrapIO("open", "leads.csv", errors.New("no such file"))
		assert.False(t, pkgerrors.IsPersist(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		cause := errors.New("disk full")
		err := pkgerrors.WrapIO("write", "leads.csv", cause)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestResourceError(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		err := pkgerrors.NewResourceError("update", "lead", "42", errors.New("conflict"))
		assert.Equal(t, "failed to update lead 42: conflict", err.Error())
	})

	t.Run("without id", func(t *testing.T) {
		err := pkgerrors.NewResourceError("load", "table", "", errors.New("corrupt"))
		assert.Equal(t, "failed to load table: corrupt", err.Error())
	})

	t.Run("wrap helper", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapResource("save", "table", "", nil))

		cause := errors.New("timeout")
		err := pkgerrors.WrapResource("seed", "store", "", cause)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestSentinels(t *testing.T) {
	assert.False(t, pkgerrors.IsNotFound(errors.New("plain")))
	assert.False(t, pkgerrors.IsPersist(nil))
	assert.True(t, pkgerrors.IsStoreInit(pkgerrors.ErrStoreInit))
	assert.True(t, pkgerrors.IsPersist(pkgerrors.ErrPersist))
}
