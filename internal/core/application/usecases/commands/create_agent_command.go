package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrCreateAgentCommandIsNotConstructed = errors.New(
	"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
)

// CreateAgentCommand represents a request to register a new delivery agent.
// New agents start with an empty rating aggregate.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	contact kernel.Contact

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to register a delivery agent.
func NewCreateAgentCommand(agentID kernel.UUID, contact kernel.Contact) (CreateAgentCommand, error) {
	command := CreateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAgentID(agentID),
		command.setContact(contact),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAgentCommandIsNotConstructed if validation fails.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// AgentID returns the identifier for the new agent.
func (c CreateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Contact returns the agent's contact details.
func (c CreateAgentCommand) Contact() kernel.Contact {
	return c.contact
}

func (c *CreateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *CreateAgentCommand) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	c.contact = contact
	return nil
}
