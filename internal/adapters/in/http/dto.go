package http

// Request and response bodies of the HTTP API. The wire contract is kept
// separate from the domain model; handlers translate between the two.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterCustomerRequest creates a customer profile.
type RegisterCustomerRequest struct {
	Name            string `json:"name"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	StudentNumber   string `json:"studentNumber,omitempty"`
}

// RegisterCourierRequest adds a courier to the roster.
type RegisterCourierRequest struct {
	Name    string `json:"name"`
	Vehicle string `json:"vehicle,omitempty"`
	Zone    string `json:"zone,omitempty"`
}

// CreatedResponse returns the identifier of a newly registered actor.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderLineRequest is one dish of a new order.
type OrderLineRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Category    string  `json:"category,omitempty"`
}

// PlaceOrderRequest places a new order for a customer.
type PlaceOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Lines      []OrderLineRequest `json:"lines"`
	PartySize  int                `json:"partySize"`
	Mode       string             `json:"mode"`
	Comment    string             `json:"comment,omitempty"`
}

// PlaceOrderResponse returns the number of the placed order.
type PlaceOrderResponse struct {
	Number string `json:"number"`
}

// AddExtraRequest layers a priced extra on an order.
type AddExtraRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Kind     string  `json:"kind"`
	Quantity int     `json:"quantity"`
}

// ChangeAddressRequest changes the delivery address of an unpaid order.
type ChangeAddressRequest struct {
	Address string `json:"address"`
}

// PayOrderRequest pays an order. Method selects which detail fields apply:
// "card" uses the card fields, "cash" the tendered amount, "account" none.
type PayOrderRequest struct {
	Method     string  `json:"method"`
	CardNumber string  `json:"cardNumber,omitempty"`
	CardExpiry string  `json:"cardExpiry,omitempty"`
	CardCVV    string  `json:"cardCvv,omitempty"`
	Tendered   float64 `json:"tendered,omitempty"`
}

// ChangeStateRequest moves an order to a target lifecycle state.
type ChangeStateRequest struct {
	Target string `json:"target"`
}

// OrderLineView is one priced line of an order's flattened composition.
type OrderLineView struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

// OrderDetailsResponse is the full view of one order.
type OrderDetailsResponse struct {
	Number                string          `json:"number"`
	Status                string          `json:"status"`
	Mode                  string          `json:"mode"`
	Customer              string          `json:"customer"`
	Address               string          `json:"address,omitempty"`
	PartySize             int             `json:"partySize"`
	Lines                 []OrderLineView `json:"lines"`
	TotalBeforeReductions string          `json:"totalBeforeReductions"`
	AppliedReductions     []string        `json:"appliedReductions"`
	Total                 string          `json:"total"`
	Paid                  bool            `json:"paid"`
	Courier               string          `json:"courier,omitempty"`
	Comments              string          `json:"comments,omitempty"`
	CreatedAt             string          `json:"createdAt"`
	DeliveredAt           string          `json:"deliveredAt,omitempty"`
	Events                []string        `json:"events"`
}

// KitchenQueueEntry is one order the kitchen has to work on.
type KitchenQueueEntry struct {
	Number    string `json:"number"`
	Status    string `json:"status"`
	Customer  string `json:"customer"`
	ItemName  string `json:"itemName"`
	PartySize int    `json:"partySize"`
	Paid      bool   `json:"paid"`
	Comments  string `json:"comments,omitempty"`
}

// ReadyDeliveryEntry is one delivery waiting for pickup.
type ReadyDeliveryEntry struct {
	Number   string `json:"number"`
	Customer string `json:"customer"`
	Address  string `json:"address"`
	Total    string `json:"total"`
	Assigned bool   `json:"assigned"`
	Courier  string `json:"courier,omitempty"`
}
