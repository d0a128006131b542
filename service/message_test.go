package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"catering_manager/model"
)

type stubBroadcaster struct {
	posted []string
}

func (s *stubBroadcaster) MessagePosted(orderCode string, msg *model.Message) {
	s.posted = append(s.posted, orderCode)
}

func TestPostMessage(t *testing.T) {
	f := newOrderFixture(t)
	broadcast := &stubBroadcaster{}
	messages := NewMessageService(f.stores.Orders, f.stores.Messages, broadcast)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}

	msg, err := messages.PostMessage(ctx, model.PostMessageInput{
		OrderCode: order.PublicCode,
		Sender:    model.SenderUser,
		Body:      "  Czy można zmienić godzinę dostawy?  ",
	})
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if msg.Body != "Czy można zmienić godzinę dostawy?" {
		t.Errorf("body not trimmed: %q", msg.Body)
	}
	if msg.OrderId != order.ID {
		t.Errorf("orderId = %d, want %d", msg.OrderId, order.ID)
	}
	if len(broadcast.posted) != 1 || broadcast.posted[0] != order.PublicCode {
		t.Errorf("broadcast = %v, want [%s]", broadcast.posted, order.PublicCode)
	}

	list, err := messages.ListMessages(ctx, order.PublicCode)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("messages = %d, want 1", len(list))
	}
}

func TestPostMessageValidation(t *testing.T) {
	f := newOrderFixture(t)
	messages := NewMessageService(f.stores.Orders, f.stores.Messages, nil)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"empty body", "", CodeEmptyMessageBody},
		{"whitespace only", "   \n\t ", CodeEmptyMessageBody},
		{"too long", strings.Repeat("ą", 501), CodeMessageTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := messages.PostMessage(ctx, model.PostMessageInput{
				OrderCode: order.PublicCode,
				Sender:    model.SenderUser,
				Body:      tc.body,
			})
			var validation *ValidationError
			if !errors.As(err, &validation) || validation.Code != tc.wantCode {
				t.Fatalf("err = %v, want %s", err, tc.wantCode)
			}
		})
	}

	// 500 znaków (wielobajtowych) mieści się w limicie
	if _, err := messages.PostMessage(ctx, model.PostMessageInput{
		OrderCode: order.PublicCode,
		Sender:    model.SenderAdmin,
		Body:      strings.Repeat("ł", 500),
	}); err != nil {
		t.Fatalf("500 runes should pass: %v", err)
	}
}

func TestPostMessageUnknownOrder(t *testing.T) {
	f := newOrderFixture(t)
	messages := NewMessageService(f.stores.Orders, f.stores.Messages, nil)

	_, err := messages.PostMessage(context.Background(), model.PostMessageInput{
		OrderCode: "ORD-NIEMA",
		Sender:    model.SenderUser,
		Body:      "Halo?",
	})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
