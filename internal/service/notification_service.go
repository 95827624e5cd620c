package service

import (
	"banking_ledger/internal/domain"
	"banking_ledger/internal/repository"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// NotificationService prints the customer-facing outcome of each operation.
type NotificationService struct {
	out    io.Writer
	logger *slog.Logger
}

func NewNotificationService(out io.Writer, logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = io.Discard
	}

	return &NotificationService{
		out:    out,
		logger: logger,
	}
}

func (s *NotificationService) NotifyOperation(ctx context.Context, t domain.TransactionType, err error) {
	if _, werr := fmt.Fprintln(s.out, Message(t, err)); werr != nil {
		s.logger.ErrorContext(ctx, "Failed to write notification",
			slog.String("transaction_type", string(t)),
			slog.String("error", werr.Error()))
	}
}

// Message returns the console line for an operation outcome; err == nil means success.
func Message(t domain.TransactionType, err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "Conta não encontrada."
	case t == domain.TypeDeposit:
		return depositMessage(err)
	case t == domain.TypeWithdrawal:
		return withdrawalMessage(err)
	}
	if err != nil {
		return fmt.Sprintf("Operação não realizada: %v", err)
	}
	return "Operação realizada com sucesso!"
}

func depositMessage(err error) string {
	switch {
	case err == nil:
		return "Depósito realizado com sucesso!"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Depósito inválido."
	default:
		return fmt.Sprintf("Depósito não realizado: %v", err)
	}
}

func withdrawalMessage(err error) string {
	switch {
	case err == nil:
		return "Saque realizado com sucesso!"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Saque inválido."
	case errors.Is(err, domain.ErrExceedsWithdrawalLimit):
		return "Valor excede o limite de saque."
	case errors.Is(err, domain.ErrDailyWithdrawalLimit):
		return "Limite de saques diários atingido."
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Saldo insuficiente."
	default:
		return fmt.Sprintf("Saque não realizado: %v", err)
	}
}
