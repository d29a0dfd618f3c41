package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/mykafka"
)

const (
	MsgInvalidCredentials = "invalid email or password"
	MsgEmailTaken         = "user with this email already exists"
	MsgInvalidToken       = "invalid token"
	MsgUserIDRequired     = "userId is required"
	MsgProductIDRequired  = "productId is required"
	MsgUserMissing        = "user does not exist"
	MsgProductMissing     = "product does not exist"
	MsgBoughtMissing      = "bought item with this id does not exist"
	MsgItemMissing        = "You are not authorized, or Event with this Id doesnt exist!"
	MsgNotOwner           = "You are not authorized to change items of another user"
	MsgSearchDisabled     = "search is disabled"
)

// Publisher delivers domain events. *mykafka.Producer satisfies it.
type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

func publish(ctx context.Context, p Publisher, topic, key string, ev mykafka.Event) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, ev); err != nil {
		l := logging.With(ctx, "svc", "events")
		l.Warn().Str("topic", topic).Str("type", ev.Type).Err(err).Msg("publish_event_failed")
	}
}

// internal wraps unexpected store errors, keeping already classified ones.
func internal(err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	if k := apperr.KindOf(err); k != apperr.KindInternal {
		return apperr.Wrap(k, err.Error(), err)
	}
	return apperr.Internal(err)
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
