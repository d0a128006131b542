package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/repository"
)

const maxMessageLength = 500

// MessageService dopisuje wiadomości do czatu zamówienia.
type MessageService struct {
	orders    repository.OrderRepository
	messages  repository.MessageRepository
	broadcast ChatBroadcaster
}

func NewMessageService(orders repository.OrderRepository, messages repository.MessageRepository, broadcast ChatBroadcaster) *MessageService {
	return &MessageService{orders: orders, messages: messages, broadcast: broadcast}
}

// PostMessage dopisuje wiadomość do zamówienia i rozgłasza ją do czatu.
// Rozgłoszenie jest best-effort, zapis wiadomości jest granicą trwałości.
func (s *MessageService) PostMessage(ctx context.Context, input model.PostMessageInput) (*model.Message, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, &ValidationError{Code: CodeEmptyMessageBody, Message: constants.MESSAGE_EMPTY}
	}
	if utf8.RuneCountInString(body) > maxMessageLength {
		return nil, &ValidationError{Code: CodeMessageTooLong, Message: constants.MESSAGE_TOO_LONG}
	}

	order, err := s.orders.GetByCode(ctx, input.OrderCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: constants.ORDER_NOT_FOUND}
	}
	if err != nil {
		return nil, err
	}

	msg := &model.Message{
		OrderId: order.ID,
		Sender:  input.Sender,
		Body:    body,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.broadcast != nil {
		s.broadcast.MessagePosted(order.PublicCode, msg)
	}
	return msg, nil
}

func (s *MessageService) ListMessages(ctx context.Context, code string) ([]model.Message, error) {
	order, err := s.orders.GetByCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: constants.ORDER_NOT_FOUND}
	}
	if err != nil {
		return nil, err
	}
	return s.messages.ListByOrder(ctx, order.ID)
}
