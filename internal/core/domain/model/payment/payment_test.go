package payment_test

import (
	"testing"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/payment"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestCardPayment(t *testing.T) {
	t.Run("should accept well-formed card and always approve", func(t *testing.T) {
		card, err := payment.NewCardPayment("4111 1111 1111 1111", "12/27", "123")

		require.NoError(t, err)
		assert.Equal(t, "card", card.Label())
		assert.Equal(t, "**** **** **** 1111", card.MaskedNumber())
		require.NoError(t, card.Pay(money(t, "999.99")))
	})

	t.Run("should reject short card number", func(t *testing.T) {
		_, err := payment.NewCardPayment("1234", "12/27", "123")

		require.Error(t, err)
		assert.ErrorIs(t, err, payment.ErrInvalidInstrument)
	})

	t.Run("should reject missing expiry or cvv", func(t *testing.T) {
		_, err := payment.NewCardPayment("4111111111111111", "", "123")
		require.ErrorIs(t, err, payment.ErrInvalidInstrument)

		_, err = payment.NewCardPayment("4111111111111111", "12/27", "")
		require.ErrorIs(t, err, payment.ErrInvalidInstrument)
	})
}

func TestPrepaidAccount(t *testing.T) {
	t.Run("should debit balance on successful payment", func(t *testing.T) {
		account, err := payment.NewPrepaidAccount("S-2044", money(t, "50.00"))
		require.NoError(t, err)

		require.NoError(t, account.Pay(money(t, "12.50")))

		assert.Equal(t, "37.50", account.Balance().String())
		assert.Equal(t, "campus account", account.Label())
	})

	t.Run("should fail without debiting when balance is short", func(t *testing.T) {
		account, _ := payment.NewPrepaidAccount("S-2044", money(t, "5.00"))

		err := account.Pay(money(t, "8.00"))

		require.Error(t, err)
		assert.ErrorIs(t, err, payment.ErrInsufficientFunds)
		assert.Equal(t, "5.00", account.Balance().String())
	})

	t.Run("should allow exact-balance payment", func(t *testing.T) {
		account, _ := payment.NewPrepaidAccount("S-2044", money(t, "8.00"))

		require.NoError(t, account.Pay(money(t, "8.00")))
		assert.True(t, account.Balance().IsZero())
	})

	t.Run("should top up", func(t *testing.T) {
		account, _ := payment.NewPrepaidAccount("S-2044", kernel.ZeroMoney())

		account.TopUp(money(t, "20.00"))

		assert.Equal(t, "20.00", account.Balance().String())
	})

	t.Run("should require holder", func(t *testing.T) {
		_, err := payment.NewPrepaidAccount("", money(t, "10.00"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCashPayment(t *testing.T) {
	t.Run("should fail when tendered under total", func(t *testing.T) {
		cash := payment.NewCashPayment(money(t, "5.00"))

		err := cash.Pay(money(t, "8.00"))

		require.Error(t, err)
		assert.ErrorIs(t, err, payment.ErrInsufficientFunds)
	})

	t.Run("should compute change", func(t *testing.T) {
		cash := payment.NewCashPayment(money(t, "20.00"))

		require.NoError(t, cash.Pay(money(t, "13.75")))
		change, err := cash.ChangeFor(money(t, "13.75"))

		require.NoError(t, err)
		assert.Equal(t, "6.25", change.String())
		assert.Equal(t, "cash", cash.Label())
	})

	t.Run("should allow exact tendered amount", func(t *testing.T) {
		cash := payment.NewCashPayment(money(t, "8.00"))

		require.NoError(t, cash.Pay(money(t, "8.00")))
		change, _ := cash.ChangeFor(money(t, "8.00"))
		assert.True(t, change.IsZero())
	})
}
