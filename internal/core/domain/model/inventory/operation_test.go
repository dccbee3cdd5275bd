package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodorder/internal/pkg/errs"
)

func Test_OperationType_Validate(t *testing.T) {
	t.Run("defined types are valid", func(t *testing.T) {
		types := []OperationType{
			OperationManualAdjustment, OperationSale, OperationRestock,
			OperationReturn, OperationDamage, OperationInitial,
		}
		for _, op := range types {
			assert.NoError(t, op.Validate(), op.String())
		}
	})

	t.Run("unknown type is invalid", func(t *testing.T) {
		err := OperationType("THEFT").Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty type is invalid", func(t *testing.T) {
		assert.Error(t, OperationType("").Validate())
	})
}
