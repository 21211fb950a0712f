package order

import (
	"errors"
	"fmt"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/menu"
	"campuseats/internal/core/domain/model/payment"
	"campuseats/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Pricing rules. Reductions stack multiplicatively in the order group then
// student; the delivery surcharge is applied after reductions and is never
// counted as a reduction.
var (
	groupReductionMinSize = 20
	groupReductionRate    = decimal.NewFromFloat(0.90)
	studentReductionRate  = decimal.NewFromFloat(0.85)
	surchargeThreshold    = decimal.NewFromFloat(20.00)
	deliverySurcharge     = decimal.NewFromFloat(2.50)
)

const (
	groupReductionLabel   = "Group reduction (-10%)"
	studentReductionLabel = "Student reduction (-15%)"
)

// Order is the aggregate representing one customer purchase through its full
// lifecycle: composition and payment by the customer, preparation by the
// kitchen, then delivery or serving.
//
// Order follows these invariants:
//   - The order number is unique and never reused
//   - The total is never negative and is recomputed on every price-affecting change
//   - Status moves only along the transition table in Status
//   - A delivery order carries a non-empty address, and a courier before going en route
//   - isPaid becomes true exactly once, via a successful Pay call
//   - The event log is append-only and never pruned
//
// The struct uses private fields to ensure encapsulation and can only be
// created through the NewOrder constructor.
type Order struct {
	number    string
	customer  Customer
	baseItem  menu.Item
	rootItem  menu.Item
	extras    []*menu.Extra
	partySize int
	mode      DeliveryMode
	address   string
	status    Status

	strategy payment.Strategy
	isPaid   bool

	total                 kernel.Money
	totalBeforeReductions kernel.Money
	appliedReductions     []string
	surchargeApplied      bool

	courier  CourierRef
	comments string

	createdAt   time.Time
	deliveredAt *time.Time

	events    []string
	observers []Observer

	isConstructed bool
}

// NewOrder creates an order in the NEW state and computes its initial total.
//
// The number comes from a NumberSequence. The item is the selected menu
// element (dish, combo, or an already decorated chain); the order takes
// exclusive ownership of it. For delivery orders the customer's delivery
// address is copied onto the order and must be non-empty.
func NewOrder(number string, customer Customer, item menu.Item, partySize int, mode DeliveryMode) (*Order, error) {
	o := &Order{
		status:        StatusNew,
		isConstructed: true,
		createdAt:     time.Now(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomer(customer),
		o.setItem(item),
		o.setPartySize(partySize),
		o.setMode(mode),
	); err != nil {
		return nil, err
	}

	if o.mode.RequiresAddress() {
		address := o.customer.DeliveryAddress()
		if address == "" {
			return nil, errs.NewValueIsRequiredError("delivery address")
		}
		o.address = address
	}

	o.logEvent("Order created")
	o.recomputeTotal()
	return o, nil
}

// Validate ensures the Order instance was constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number == other.number
}

// Number returns the unique order number.
func (o *Order) Number() string {
	return o.number
}

// Customer returns the ordering customer.
func (o *Order) Customer() Customer {
	return o.customer
}

// Item returns the current head of the item/extra chain.
func (o *Order) Item() menu.Item {
	return o.rootItem
}

// Extras returns the applied extras in the order they were added.
func (o *Order) Extras() []*menu.Extra {
	extras := make([]*menu.Extra, len(o.extras))
	copy(extras, o.extras)
	return extras
}

// HasExtraKind reports whether an extra of the given kind is already applied.
func (o *Order) HasExtraKind(kind menu.ExtraKind) bool {
	for _, e := range o.extras {
		if e.Kind() == kind {
			return true
		}
	}
	return false
}

// PartySize returns the number of people the order serves.
func (o *Order) PartySize() int {
	return o.partySize
}

// Mode returns the delivery mode, fixed at creation.
func (o *Order) Mode() DeliveryMode {
	return o.mode
}

// Address returns the delivery address; empty for on-site and takeaway.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether the order was paid.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// Total returns the current total, reductions and surcharge included.
func (o *Order) Total() kernel.Money {
	return o.total
}

// TotalBeforeReductions returns the base price × party size, before any
// reduction or surcharge.
func (o *Order) TotalBeforeReductions() kernel.Money {
	return o.totalBeforeReductions
}

// AppliedReductions returns the labels of the reductions applied by the last
// recomputation, in application order.
func (o *Order) AppliedReductions() []string {
	reductions := make([]string, len(o.appliedReductions))
	copy(reductions, o.appliedReductions)
	return reductions
}

// Courier returns the assigned courier, or nil if none.
func (o *Order) Courier() CourierRef {
	return o.courier
}

// Comments returns the free-text comment attached to the order.
func (o *Order) Comments() string {
	return o.comments
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the moment the order reached DELIVERED or SERVED,
// or nil before that.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Events returns a copy of the append-only event log, oldest first.
func (o *Order) Events() []string {
	events := make([]string, len(o.events))
	copy(events, o.events)
	return events
}

// AddExtra layers a priced extra on the order's item chain and recomputes
// the total. The previous chain head is wrapped, never mutated. Fails with
// ErrOrderLocked once the order is paid.
//
// All subscribers are notified of the price change.
func (o *Order) AddExtra(name string, extraPrice kernel.Money, kind menu.ExtraKind, quantity int) error {
	if err := o.ensureModifiable(); err != nil {
		return err
	}

	extra, err := menu.NewExtra(o.rootItem, name, extraPrice, kind, quantity)
	if err != nil {
		return err
	}

	o.rootItem = extra
	o.extras = append(o.extras, extra)
	o.logEvent("Extra added: %s", extra.FullName())
	o.recomputeTotal()
	o.notifyAll()
	return nil
}

// RemoveExtra removes the first applied extra with the given name and
// rebuilds the chain from the base item and the remaining extras. Fails with
// an ObjectNotFoundError when no such extra is applied, and with
// ErrOrderLocked once the order is paid.
func (o *Order) RemoveExtra(name string) error {
	if err := o.ensureModifiable(); err != nil {
		return err
	}

	index := -1
	for i, e := range o.extras {
		if e.ExtraName() == name {
			index = i
			break
		}
	}
	if index < 0 {
		return errs.NewObjectNotFoundError("extra", name)
	}

	remaining := append(o.extras[:index:index], o.extras[index+1:]...)

	root := o.baseItem
	rebuilt := make([]*menu.Extra, 0, len(remaining))
	for _, e := range remaining {
		extra, err := menu.NewExtra(root, e.ExtraName(), e.ExtraPrice(), e.Kind(), e.Quantity())
		if err != nil {
			return err
		}
		root = extra
		rebuilt = append(rebuilt, extra)
	}

	o.rootItem = root
	o.extras = rebuilt
	o.logEvent("Extra removed: %s", name)
	o.recomputeTotal()
	o.notifyAll()
	return nil
}

// SetAddress changes the delivery address. For delivery orders the address
// must be non-empty. Fails with ErrOrderLocked once the order is paid.
func (o *Order) SetAddress(address string) error {
	if err := o.ensureModifiable(); err != nil {
		return err
	}
	if o.mode.RequiresAddress() && address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	o.address = address
	o.logEvent("Delivery address changed: %s", address)
	o.notifyAll()
	return nil
}

// SetComment attaches a free-text comment, recorded in the event log.
func (o *Order) SetComment(comment string) {
	o.comments = comment
	o.logEvent("Comment added: %s", comment)
}

// AssignCourier records the courier who will deliver the order. Only
// delivery orders take a courier; assignment is allowed until the order
// goes en route, and reassignment is permitted.
func (o *Order) AssignCourier(courier CourierRef) error {
	if courier == nil {
		return errs.NewValueIsRequiredError("courier")
	}
	if !o.mode.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("%s orders take no courier", o.mode),
		)
	}
	if o.status.IsTerminal() || o.status == StatusEnRoute {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("courier cannot be assigned in status %s", o.status),
		)
	}

	o.courier = courier
	o.logEvent("Courier assigned: %s", courier.Name())
	o.notifyAll()
	return nil
}

// AttachPayment sets the payment strategy used by Pay. It may be replaced
// while the order is unpaid; after payment it fails with ErrAlreadyPaid.
func (o *Order) AttachPayment(strategy payment.Strategy) error {
	if strategy == nil {
		return errs.NewValueIsRequiredError("payment strategy")
	}
	if o.isPaid {
		return ErrAlreadyPaid
	}

	o.strategy = strategy
	o.logEvent("Payment method set: %s", strategy.Label())
	return nil
}

// Pay executes the attached payment strategy against the current total.
//
// On success the order is irreversibly marked paid and, when still NEW,
// moves to IN_PREPARATION, which notifies the kitchen. On strategy failure
// nothing changes except an event-log entry, and the failure is returned as
// a PaymentFailedError.
func (o *Order) Pay() error {
	if o.strategy == nil {
		return ErrNoPaymentMethod
	}
	if o.isPaid {
		return ErrAlreadyPaid
	}

	if err := o.strategy.Pay(o.total); err != nil {
		o.logEvent("Payment failed: %s", err)
		return NewPaymentFailedError(err)
	}

	o.isPaid = true
	o.logEvent("Payment via %s succeeded", o.strategy.Label())

	if o.status == StatusNew {
		return o.ChangeState(StatusInPreparation)
	}
	return nil
}

// ChangeState transitions the order to the target state.
//
// The transition table is checked first; an InvalidTransitionError leaves
// the order untouched. Guards are evaluated before anything is committed:
// moving into IN_PREPARATION requires payment (ErrPaymentRequired), moving
// into EN_ROUTE requires delivery mode and an assigned courier
// (ErrCourierRequired), and READY orders in delivery mode cannot be SERVED.
//
// On success the event log records the new state's label, DELIVERED and
// SERVED stamp the delivery time, cancelling a paid order records that a
// refund is required, and observers are notified with role-targeted
// delivery — only after every field is updated.
func (o *Order) ChangeState(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(target) {
		return NewInvalidTransitionError(o.status, target)
	}
	if target == StatusServed && o.mode == ModeDelivery {
		return NewInvalidTransitionError(o.status, target)
	}

	if target == StatusInPreparation && !o.isPaid {
		return ErrPaymentRequired
	}
	if target == StatusEnRoute && (!o.mode.RequiresCourier() || o.courier == nil) {
		return ErrCourierRequired
	}

	o.status = target

	if target == StatusCancelled && o.isPaid {
		o.logEvent("Refund required")
	}
	o.logEvent("State changed: %s", target)

	if target == StatusDelivered || target == StatusServed {
		now := time.Now()
		o.deliveredAt = &now
	}

	o.notifyStateChanged(target)
	return nil
}

// Cancel transitions the order to CANCELLED.
func (o *Order) Cancel() error {
	return o.ChangeState(StatusCancelled)
}

// Subscribe registers an observer. Re-subscribing the same observer (by ID)
// is a no-op, so subscription is idempotent. Notification happens in
// subscription order.
func (o *Order) Subscribe(observer Observer) error {
	if observer == nil {
		return errs.NewValueIsRequiredError("observer")
	}
	for _, existing := range o.observers {
		if existing.ID().IsEqual(observer.ID()) {
			return nil
		}
	}
	o.observers = append(o.observers, observer)
	return nil
}

// Unsubscribe removes an observer by ID. Removing an unknown observer is a
// no-op.
func (o *Order) Unsubscribe(observer Observer) {
	if observer == nil {
		return
	}
	for i, existing := range o.observers {
		if existing.ID().IsEqual(observer.ID()) {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

// Observers returns the current subscribers in subscription order.
func (o *Order) Observers() []Observer {
	observers := make([]Observer, len(o.observers))
	copy(observers, o.observers)
	return observers
}

// recomputeTotal implements the pricing algorithm:
//
//	1. flatten the item chain and sum the priced lines
//	2. multiply by party size -> totalBeforeReductions
//	3. group reduction -10% for parties of 20 or more
//	4. student reduction -15% when the customer is a student
//	5. delivery surcharge of 2.50 when delivering under 20.00
//
// The reductions list is rebuilt on every run, so recomputation is
// idempotent. The surcharge event is logged once while it applies.
func (o *Order) recomputeTotal() {
	base := kernel.ZeroMoney()
	for _, element := range o.rootItem.Elements() {
		base = base.Add(element.Price())
	}
	base = base.MulInt(int64(o.partySize))

	o.totalBeforeReductions = base
	o.appliedReductions = o.appliedReductions[:0]

	total := base
	if o.partySize >= groupReductionMinSize {
		total = total.Mul(groupReductionRate)
		o.appliedReductions = append(o.appliedReductions, groupReductionLabel)
	}
	if o.customer.IsStudent() {
		total = total.Mul(studentReductionRate)
		o.appliedReductions = append(o.appliedReductions, studentReductionLabel)
	}

	if o.mode == ModeDelivery && total.Amount().LessThan(surchargeThreshold) {
		total = total.Add(mustMoney(deliverySurcharge))
		if !o.surchargeApplied {
			o.logEvent("Delivery surcharge added: %s", mustMoney(deliverySurcharge))
			o.surchargeApplied = true
		}
	} else {
		o.surchargeApplied = false
	}

	o.total = total
}

func (o *Order) ensureModifiable() error {
	if o.isPaid || o.status != StatusNew {
		return ErrOrderLocked
	}
	return nil
}

// notifyAll invokes every subscriber with the order as payload. The
// subscriber list is snapshotted first, so observers may subscribe or
// unsubscribe from within their callback without corrupting the iteration.
func (o *Order) notifyAll() {
	for _, observer := range o.Observers() {
		observer.OrderChanged(o)
	}
}

// notifyStateChanged applies the role-targeted delivery rule: a NEW order
// concerns only the kitchen; an order turning READY in delivery mode
// concerns only available couriers; every other transition concerns all
// subscribers.
func (o *Order) notifyStateChanged(newStatus Status) {
	switch {
	case newStatus == StatusNew:
		for _, observer := range o.Observers() {
			if observer.Role() == RoleKitchen {
				observer.OrderChanged(o)
			}
		}
	case newStatus == StatusReady && o.mode == ModeDelivery:
		for _, observer := range o.Observers() {
			if observer.Role() == RoleDelivery && observer.Available() {
				observer.OrderChanged(o)
			}
		}
	default:
		o.notifyAll()
	}
}

func (o *Order) logEvent(format string, args ...any) {
	o.events = append(o.events, fmt.Sprintf("%s - %s",
		time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...)))
}

func mustMoney(d decimal.Decimal) kernel.Money {
	m, err := kernel.NewMoney(d)
	if err != nil {
		panic(err)
	}
	return m
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if customer == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

func (o *Order) setItem(item menu.Item) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}
	o.baseItem = item
	o.rootItem = item
	return nil
}

func (o *Order) setPartySize(partySize int) error {
	if partySize <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"party size",
			fmt.Errorf("%d is not greater than 0", partySize),
		)
	}
	o.partySize = partySize
	return nil
}

func (o *Order) setMode(mode DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.mode = mode
	return nil
}
