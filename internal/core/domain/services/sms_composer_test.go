package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSComposer_Compose(t *testing.T) {
	composer := services.NewSMSComposer()
	orderID := kernel.NewUUID()

	t.Run("notifying statuses produce their templated message", func(t *testing.T) {
		cases := []struct {
			status   order.Status
			expected string
		}{
			{order.Paid, fmt.Sprintf("Your order %s is packed, please pay to get it.", orderID)},
			{order.Shipped, fmt.Sprintf("Your order %s is payed, wait for delivering.", orderID)},
			{order.Finished, fmt.Sprintf("Thank you for purchasing order %s!", orderID)},
			{order.Cancelled, fmt.Sprintf("Your order %s is canceled!", orderID)},
		}

		for _, tc := range cases {
			message, err := composer.Compose(tc.status, orderID)

			require.NoError(t, err, "status %s must notify", tc.status)
			assert.Equal(t, tc.expected, message)
		}
	})

	t.Run("non-notifying statuses fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Created, order.Unknown} {
			_, err := composer.Compose(s, orderID)

			require.ErrorIs(t, err, services.ErrNoMessageForStatus)
		}
	})
}
