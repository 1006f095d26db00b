package model

import "fmt"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// Statuses lists every order status in the order they are sampled from.
var Statuses = []Status{StatusPending, StatusShipped, StatusDelivered, StatusCancelled}

// Payable reports whether an order in this status has been paid for.
func (s Status) Payable() bool {
	return s != StatusCancelled && s != StatusPending
}

// Shippable reports whether an order in this status has left the warehouse.
func (s Status) Shippable() bool {
	return s == StatusShipped || s == StatusDelivered
}

func ParseStatus(v string) (Status, error) {
	for _, s := range Statuses {
		if string(s) == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", v)
}
