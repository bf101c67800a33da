package commands

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrBookParcelCommandIsNotConstructed = errors.New(
	"BookParcelCommand must be created via NewBookParcelCommand constructor",
)

// BookParcelCommand represents a request to book a new parcel delivery.
// Encapsulates the sender and receiver contacts, the declared weight,
// the delivery charge and the requested delivery date.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewBookParcelCommand(parcelID, sender, receiver, 2.5, 120, date)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewBookParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book parcel: %w", err)
//	}
type BookParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID              kernel.UUID
	sender                kernel.Contact
	receiver              kernel.Contact
	weightKg              float64
	cost                  float64
	requestedDeliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewBookParcelCommand creates a command to book a new parcel.
// Validates that the parcel ID and both contacts are valid, the weight is
// positive, the cost is not negative and the requested date is set.
func NewBookParcelCommand(
	parcelID kernel.UUID,
	sender kernel.Contact,
	receiver kernel.Contact,
	weightKg float64,
	cost float64,
	requestedDeliveryDate time.Time,
) (BookParcelCommand, error) {
	command := BookParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setSender(sender),
		command.setReceiver(receiver),
		command.setWeightKg(weightKg),
		command.setCost(cost),
		command.setRequestedDeliveryDate(requestedDeliveryDate),
	); err != nil {
		return BookParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBookParcelCommandIsNotConstructed if validation fails.
func (c BookParcelCommand) Validate() error {
	return c.guard.Validate(ErrBookParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c BookParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Sender returns the sender contact.
func (c BookParcelCommand) Sender() kernel.Contact {
	return c.sender
}

// Receiver returns the receiver contact.
func (c BookParcelCommand) Receiver() kernel.Contact {
	return c.receiver
}

// WeightKg returns the declared weight in kilograms.
func (c BookParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// Cost returns the delivery charge.
func (c BookParcelCommand) Cost() float64 {
	return c.cost
}

// RequestedDeliveryDate returns the requested delivery date.
func (c BookParcelCommand) RequestedDeliveryDate() time.Time {
	return c.requestedDeliveryDate
}

func (c *BookParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *BookParcelCommand) setSender(sender kernel.Contact) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *BookParcelCommand) setReceiver(receiver kernel.Contact) error {
	if err := receiver.Validate(); err != nil {
		return err
	}

	c.receiver = receiver
	return nil
}

func (c *BookParcelCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}

	c.weightKg = weightKg
	return nil
}

func (c *BookParcelCommand) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidError("cost")
	}

	c.cost = cost
	return nil
}

func (c *BookParcelCommand) setRequestedDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("requestedDeliveryDate")
	}

	c.requestedDeliveryDate = date
	return nil
}
