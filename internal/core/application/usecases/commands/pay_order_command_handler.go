package commands

import (
	"context"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/model/payment"
)

// PayOrderCommandHandler handles the business logic for paying an order.
// Builds the payment strategy from the command, attaches it, and executes
// the payment. A successful payment moves the order into preparation; a
// strategy failure leaves it untouched.
//
// Example:
//
//	handler := NewPayOrderCommandHandler(uowFactory)
//	cmd, _ := NewAccountPayOrderCommand("ORD-0001")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, payment.ErrInsufficientFunds) {
//	    // account balance too low, order stays payable
//	}
type PayOrderCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewPayOrderCommandHandler creates a handler for order payment.
// Requires a PaymentUoWFactory since account payments also modify the
// paying customer.
func NewPayOrderCommandHandler(uowFactory PaymentUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command. The order and, for account
// payments, the customer are persisted in one transaction.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	strategy, payer, err := h.buildStrategy(ctx, uow, cmd, aggregate)
	if err != nil {
		return err
	}

	if err = aggregate.AttachPayment(strategy); err != nil {
		return err
	}
	if err = aggregate.Pay(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if payer != nil {
		if err = uow.CustomerRepository().Update(ctx, payer); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// buildStrategy translates the command into a payment strategy. Account
// payments resolve the ordering customer and debit their campus account, so
// the customer is returned for persistence.
func (h PayOrderCommandHandler) buildStrategy(
	ctx context.Context,
	uow PaymentUoW,
	cmd PayOrderCommand,
	aggregate *order.Order,
) (payment.Strategy, *actor.Customer, error) {
	switch cmd.Method() {
	case MethodCard:
		card, err := payment.NewCardPayment(cmd.CardNumber(), cmd.CardExpiry(), cmd.CardCVV())
		if err != nil {
			return nil, nil, err
		}
		return card, nil, nil
	case MethodCash:
		return payment.NewCashPayment(cmd.Tendered()), nil, nil
	case MethodAccount:
		customer, err := uow.CustomerRepository().Get(ctx, aggregate.Customer().ID())
		if err != nil {
			return nil, nil, err
		}
		return customer.Account(), customer, nil
	default:
		return nil, nil, ErrPaymentMethodIsInvalid
	}
}
