package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/agent"
)

// CreateAgentCommandHandler handles delivery agent registration.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent registration.
// Requires an AgentUoWFactory for transactional persistence.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command.
// Creates the agent with zero reviews and persists it within a transaction.
func (h *CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
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

	aggregate, err := agent.NewAgent(cmd.AgentID(), cmd.Contact(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.AgentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
