package mailbox

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_app/internal/core/write"
)

// CommandHandler executes commands against the event store. For every
// message it rebuilds the needed aggregate from a fresh log snapshot inside
// store.Evolve, so the aggregate's decision and the append happen as one
// uninterrupted step.
type CommandHandler struct {
	store  portsrepo.EventStore
	logger *slog.Logger
}

// Ensure CommandHandler implements Processor.
var _ Processor = (*CommandHandler)(nil)

// NewCommandHandler creates a handler over the given store.
func NewCommandHandler(store portsrepo.EventStore, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{
		store:  store,
		logger: logger,
	}
}

// Process dispatches one command. Validation errors are forwarded verbatim
// to the reply channel, never retried.
func (h *CommandHandler) Process(msg Message) {
	logger := h.logger.With(
		slog.String("command_id", uuid.NewString()),
		slog.String("command", msg.Kind()),
	)

	switch m := msg.(type) {
	case CreateLedgerMessage:
		h.processCreateLedger(m, logger)
	case OpenAccountMessage:
		h.processOpenAccount(m, logger)
	case CloseAccountMessage:
		h.processCloseAccount(m, logger)
	case RecordTransactionMessage:
		h.processRecordTransaction(m, logger)
	default:
		logger.Error("Unknown command type dropped")
	}
}

func (h *CommandHandler) processCreateLedger(m CreateLedgerMessage, logger *slog.Logger) {
	err := h.store.Evolve(func(current []domain.Event) ([]domain.Event, error) {
		resolver := write.NewLedgerResolver(current)
		return resolver.Create(m.LedgerID)
	})
	if err != nil {
		logger.Warn("CreateLedger rejected", slog.String("ledger_id", m.LedgerID.String()), slog.String("error", err.Error()))
	} else {
		logger.Info("Ledger created", slog.String("ledger_id", m.LedgerID.String()))
	}
	reply(m.Reply, err)
}

func (h *CommandHandler) processOpenAccount(m OpenAccountMessage, logger *slog.Logger) {
	err := h.store.Evolve(func(current []domain.Event) ([]domain.Event, error) {
		chart, err := write.NewChart(m.LedgerID, current)
		if err != nil {
			return nil, err
		}
		return chart.Open(m.AccountID, m.Name, m.Category)
	})
	if err != nil {
		logger.Warn("OpenAccount rejected", slog.String("ledger_id", m.LedgerID.String()), slog.String("account_id", m.AccountID.String()), slog.String("error", err.Error()))
	} else {
		logger.Info("Account opened", slog.String("ledger_id", m.LedgerID.String()), slog.String("account_id", m.AccountID.String()))
	}
	reply(m.Reply, err)
}

func (h *CommandHandler) processCloseAccount(m CloseAccountMessage, logger *slog.Logger) {
	err := h.store.Evolve(func(current []domain.Event) ([]domain.Event, error) {
		chart, err := write.NewChart(m.LedgerID, current)
		if err != nil {
			return nil, err
		}
		return chart.Close(m.AccountID)
	})
	if err != nil {
		logger.Warn("CloseAccount rejected", slog.String("ledger_id", m.LedgerID.String()), slog.String("account_id", m.AccountID.String()), slog.String("error", err.Error()))
	} else {
		logger.Info("Account closed", slog.String("ledger_id", m.LedgerID.String()), slog.String("account_id", m.AccountID.String()))
	}
	reply(m.Reply, err)
}

func (h *CommandHandler) processRecordTransaction(m RecordTransactionMessage, logger *slog.Logger) {
	var assigned domain.TransactionID
	err := h.store.Evolve(func(current []domain.Event) ([]domain.Event, error) {
		journal, err := write.NewJournal(m.LedgerID, current)
		if err != nil {
			return nil, err
		}
		events, id, err := journal.Entry(m.Description, m.Legs, m.Date)
		if err != nil {
			return nil, err
		}
		assigned = id
		return events, nil
	})
	if err != nil {
		logger.Warn("RecordTransaction rejected", slog.String("ledger_id", m.LedgerID.String()), slog.String("error", err.Error()))
	} else {
		logger.Info("Transaction recorded", slog.String("ledger_id", m.LedgerID.String()), slog.Uint64("transaction_id", uint64(assigned)))
	}
	reply(m.Reply, RecordTransactionResult{TransactionID: assigned, Err: err})
}

// reply sends the outcome without blocking. A nil channel means the caller
// did not ask for a reply; a full one means the caller is gone, and the
// reply is discarded.
func reply[T any](ch chan<- T, value T) {
	if ch == nil {
		return
	}
	select {
	case ch <- value:
	default:
	}
}
