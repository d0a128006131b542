package service

import (
	"context"
	"errors"

	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/repository"
)

// RatingService: jedna ocena na zamówienie, wystawiana dopiero po dostawie.
type RatingService struct {
	orders  repository.OrderRepository
	ratings repository.RatingRepository
}

func NewRatingService(orders repository.OrderRepository, ratings repository.RatingRepository) *RatingService {
	return &RatingService{orders: orders, ratings: ratings}
}

// SubmitRating tworzy lub nadpisuje ocenę zamówienia. Nadpisanie dotyka tylko
// gwiazdek i komentarza, istniejąca odpowiedź administratora zostaje.
func (s *RatingService) SubmitRating(ctx context.Context, input model.SubmitRatingInput) (*model.Rating, error) {
	if input.Stars < 1 || input.Stars > 5 {
		return nil, &ValidationError{
			Code:    CodeInvalidStarsRange,
			Message: "Ocena musi być w zakresie od 1 do 5",
		}
	}

	order, err := s.orders.GetByCode(ctx, input.OrderCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: constants.ORDER_NOT_FOUND}
	}
	if err != nil {
		return nil, err
	}
	if order.Status != model.StatusDelivered {
		return nil, &StateConflictError{Message: constants.ONLY_DELIVERED_CAN_RATE}
	}

	return s.ratings.UpsertStars(ctx, order.ID, input.Stars, input.Comment)
}

// SubmitAdminReply ustawia odpowiedź administratora na istniejącej ocenie.
// Kolejne wywołanie nadpisuje poprzednią odpowiedź.
func (s *RatingService) SubmitAdminReply(ctx context.Context, input model.AdminReplyInput) (*model.Rating, error) {
	order, err := s.orders.GetByCode(ctx, input.OrderCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: constants.ORDER_NOT_FOUND}
	}
	if err != nil {
		return nil, err
	}

	rating, err := s.ratings.SetReply(ctx, order.ID, input.AdminReply)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: constants.RATING_NOT_FOUND}
	}
	return rating, err
}

// GetRating zwraca ocenę zamówienia albo nil, gdy jeszcze jej nie ma.
func (s *RatingService) GetRating(ctx context.Context, code string) (*model.Rating, error) {
	order, err := s.orders.GetByCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: constants.ORDER_NOT_FOUND}
	}
	if err != nil {
		return nil, err
	}
	rating, err := s.ratings.GetByOrder(ctx, order.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return rating, err
}
