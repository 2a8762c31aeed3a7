package newsletter

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/subscriber"
)

type Handler struct {
	service subscriber.Servicer
	log     *slog.Logger
	public  huma.Middlewares
	gated   huma.Middlewares
}

func NewHandler(service subscriber.Servicer, log *slog.Logger, public, gated huma.Middlewares) *Handler {
	return &Handler{
		service: service,
		log:     log,
		public:  public,
		gated:   gated,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.subscribeOp(), h.subscribe)
	huma.Register(api, h.unsubscribeOp(), h.unsubscribe)
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) subscribe(ctx context.Context, input *subscribeInput) (*subscribeOutput, error) {
	_, err := h.service.Subscribe(ctx, input.Body.Email)
	if err != nil {
		if errors.Is(err, subscriber.ErrInvalidEmail) {
			return nil, huma.Error422UnprocessableEntity("Invalid email address")
		}
		h.log.Error("failed to subscribe", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	// Always report success so the endpoint does not reveal whether an
	// address was already subscribed.
	return &subscribeOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) unsubscribe(ctx context.Context, input *unsubscribeInput) (*statusOutput, error) {
	if err := h.service.Unsubscribe(ctx, input.Body.Token); err != nil {
		if errors.Is(err, subscriber.ErrNotFound) {
			return nil, huma.Error404NotFound("Unknown token")
		}
		h.log.Error("failed to unsubscribe", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	subs, err := h.service.ListActive(ctx, input.Limit, input.Offset)
	if err != nil {
		h.log.Error("failed to list subscribers", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	views := make([]subscriberView, 0, len(subs))
	for _, s := range subs {
		views = append(views, toView(s))
	}
	return &listOutput{Body: listResponse{Subscribers: views}}, nil
}
