package actor

import (
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/model/payment"
	"campuseats/internal/pkg/errs"
)

// Customer is an ordering actor. It satisfies the order's Customer interface
// (identity, student flag, delivery address) and subscribes to its own orders
// as a customer-role observer, collecting human-readable notifications.
//
// The struct uses private fields to ensure encapsulation and can only be
// created through the NewCustomer constructor.
type Customer struct {
	id              kernel.UUID
	name            string
	deliveryAddress string

	student       bool
	studentNumber string

	account *payment.PrepaidAccount

	notifications []string
	orders        map[string]*order.Order

	isConstructed bool
}

var _ order.Observer = (*Customer)(nil)
var _ order.Customer = (*Customer)(nil)

// NewCustomer creates a customer. The name must be non-empty; the delivery
// address may stay empty until the customer places a delivery order.
func NewCustomer(name, deliveryAddress string) (*Customer, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	account, err := payment.NewPrepaidAccount(name, kernel.ZeroMoney())
	if err != nil {
		return nil, err
	}

	return &Customer{
		id:              kernel.NewUUID(),
		name:            name,
		deliveryAddress: deliveryAddress,
		account:         account,
		orders:          make(map[string]*order.Order),
		isConstructed:   true,
	}, nil
}

// Account returns the customer's campus prepaid account, usable as a
// payment strategy after topping it up.
func (c *Customer) Account() *payment.PrepaidAccount {
	return c.account
}

// Validate ensures the Customer instance was constructed through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return errs.NewValueIsInvalidError("customer")
	}
	return nil
}

// ID implements order.Customer and order.Observer.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Role implements order.Observer.
func (c *Customer) Role() order.Role {
	return order.RoleCustomer
}

// Available implements order.Observer. A customer always receives its
// notifications.
func (c *Customer) Available() bool {
	return true
}

// IsStudent reports whether the student reduction applies to this customer.
func (c *Customer) IsStudent() bool {
	return c.student
}

// StudentNumber returns the registered student number, empty when the
// student status is not active.
func (c *Customer) StudentNumber() string {
	return c.studentNumber
}

// ActivateStudentStatus turns on the student reduction for this customer.
// The student number must be non-empty.
func (c *Customer) ActivateStudentStatus(studentNumber string) error {
	if studentNumber == "" {
		return errs.NewValueIsRequiredError("student number")
	}
	c.student = true
	c.studentNumber = studentNumber
	return nil
}

// DeactivateStudentStatus turns the student reduction off again.
func (c *Customer) DeactivateStudentStatus() {
	c.student = false
	c.studentNumber = ""
}

// DeliveryAddress returns the address copied onto delivery orders.
func (c *Customer) DeliveryAddress() string {
	return c.deliveryAddress
}

// SetDeliveryAddress updates the customer's delivery address. Orders already
// placed keep the address they copied at creation.
func (c *Customer) SetDeliveryAddress(address string) {
	c.deliveryAddress = address
}

// OrderChanged implements order.Observer: the customer records a readable
// notification and keeps the order in its history.
func (c *Customer) OrderChanged(o *order.Order) {
	c.orders[o.Number()] = o
	c.notifications = append(c.notifications,
		fmt.Sprintf("%s is now %s, total %s", o.Number(), o.Status(), o.Total()))
}

// Notifications returns the received notifications, oldest first.
func (c *Customer) Notifications() []string {
	notifications := make([]string, len(c.notifications))
	copy(notifications, c.notifications)
	return notifications
}

// Orders returns the orders the customer has been notified about.
func (c *Customer) Orders() []*order.Order {
	orders := make([]*order.Order, 0, len(c.orders))
	for _, o := range c.orders {
		orders = append(orders, o)
	}
	return orders
}

// InFlightOrders returns the customer's orders that are not yet terminal.
func (c *Customer) InFlightOrders() []*order.Order {
	orders := make([]*order.Order, 0, len(c.orders))
	for _, o := range c.orders {
		if !o.Status().IsTerminal() {
			orders = append(orders, o)
		}
	}
	return orders
}

// TotalSpent sums the totals of the customer's paid orders, cancelled
// orders excluded.
func (c *Customer) TotalSpent() kernel.Money {
	total := kernel.ZeroMoney()
	for _, o := range c.orders {
		if o.IsPaid() && o.Status() != order.StatusCancelled {
			total = total.Add(o.Total())
		}
	}
	return total
}
