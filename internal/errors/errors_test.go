package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := engineerr.NotFoundf("resource state for %s not found", "char-1").
		WithMeta("character_id", "char-1")

	wrapped := engineerr.Wrap(base, "load state")

	assert.True(t, engineerr.IsNotFound(wrapped))
	assert.Equal(t, "char-1", engineerr.GetMeta(wrapped)["character_id"])
	assert.Equal(t, "load state: resource state for char-1 not found", wrapped.Error())

	// The copy is independent of the original
	wrapped.WithMeta("extra", true)
	_, ok := base.Meta["extra"]
	assert.False(t, ok)
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := engineerr.Wrap(stderrors.New("boom"), "decode")

	assert.Equal(t, engineerr.CodeUnknown, engineerr.GetCode(wrapped))
	assert.Nil(t, engineerr.Wrap(nil, "nothing"))
	assert.Nil(t, engineerr.WrapWithCode(nil, engineerr.CodeInternal, "nothing"))
}

func TestWrapWithCode_OverridesCode(t *testing.T) {
	err := engineerr.WrapWithCode(stderrors.New("dial tcp"), engineerr.CodeInternal, "redis get")

	assert.True(t, engineerr.IsInternal(err))
	assert.ErrorContains(t, err, "dial tcp")
}

func TestFieldValidation(t *testing.T) {
	err := fmt.Errorf("compute stats: %w", engineerr.FieldValidation("ability_scores.final.dexterity", "missing"))

	assert.True(t, engineerr.IsValidation(err))
	assert.Equal(t, "ability_scores.final.dexterity", engineerr.GetMeta(err)["field"])
	assert.False(t, engineerr.IsNotFound(err))
}
