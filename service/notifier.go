package service

import "catering_manager/model"

// Notifier wysyła powiadomienia o zdarzeniach cyklu życia zamówienia.
// Wywołania są best-effort: błąd wysyłki nigdy nie cofa zapisanej zmiany,
// implementacje logują problemy i nie zwracają błędów.
type Notifier interface {
	OrderCreated(order *model.Order)
	StatusChanged(order *model.Order)
}

// ChatBroadcaster rozgłasza nową wiadomość do podłączonych klientów czatu.
type ChatBroadcaster interface {
	MessagePosted(orderCode string, msg *model.Message)
}
