package service

import (
	"context"
	"strconv"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/models"
	"github.com/Skotchmaster/shop_catalog/internal/mykafka"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
)

// ItemService manages bought and wishlist rows.
//
// When EnforceOwnership is set every mutation needs an actor (the user id taken from
// the request token) equal to the userId it touches. Otherwise actor is ignored.
type ItemService struct {
	Repo             *repo.GormRepo
	Events           Publisher
	EnforceOwnership bool
}

type ItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  *int
}

type BoughtCreated struct {
	CreatedBought *models.Bought `json:"createdBought,omitempty"`
	UpdatedUser   *models.UserItems `json:"updatedUser"`
}

type WishlistCreated struct {
	CreatedWishlist *models.Wishlist `json:"createdWishlist,omitempty"`
	UpdatedUser     *models.UserItems `json:"updatedUser"`
}

type BoughtUpdated struct {
	FinalBought *models.Bought `json:"finalBought"`
	UserUpdated *models.UserItems `json:"userUpdated"`
}

type ItemDeleted struct {
	UpdatedUser *models.UserItems `json:"updatedUser"`
}

func (s *ItemService) authorize(actor *uint, userID uint) error {
	if !s.EnforceOwnership {
		return nil
	}
	if actor == nil || *actor != userID {
		return apperr.Unauthorized(MsgNotOwner)
	}
	return nil
}

func (s *ItemService) checkRefs(ctx context.Context, userID, productID uint) error {
	if userID == 0 {
		return apperr.Validation(MsgUserIDRequired)
	}
	if productID == 0 {
		return apperr.Validation(MsgProductIDRequired)
	}
	ok, err := s.Repo.UserExists(ctx, userID)
	if err != nil {
		return internal(err)
	}
	if !ok {
		return apperr.Validation(MsgUserMissing)
	}
	ok, err = s.Repo.ProductExists(ctx, productID)
	if err != nil {
		return internal(err)
	}
	if !ok {
		return apperr.Validation(MsgProductMissing)
	}
	return nil
}

// refreshedUser is the user with wishlist and bought items, or nil when gone.
func (s *ItemService) refreshedUser(ctx context.Context, userID uint) (*models.UserItems, error) {
	u, err := s.Repo.UserWithItems(ctx, userID)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, internal(err)
	}
	return models.NewUserItems(u), nil
}

func quantityOrDefault(q *int) (int, error) {
	if q == nil {
		return 1, nil
	}
	if *q < 1 {
		return 0, apperr.Validation("quantity must be at least 1")
	}
	return *q, nil
}

func (s *ItemService) emit(ctx context.Context, typ string, userID, productID, itemID uint, qty int) {
	ev := mykafka.NewEvent(typ)
	ev.UserID, ev.ProductID, ev.ItemID, ev.Quantity = userID, productID, itemID, qty
	publish(ctx, s.Events, mykafka.TopicItemEvents, strconv.FormatUint(uint64(userID), 10), ev)
}

// CreateBought inserts the row unless the (user, product) pair already exists.
// CreatedBought is nil in the latter case.
func (s *ItemService) CreateBought(ctx context.Context, actor *uint, in ItemInput) (*BoughtCreated, error) {
	qty, err := quantityOrDefault(in.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, in.UserID, in.ProductID); err != nil {
		return nil, err
	}
	if err := s.authorize(actor, in.UserID); err != nil {
		return nil, err
	}

	row := &models.Bought{UserID: in.UserID, ProductID: in.ProductID, Quantity: qty}
	created, err := s.Repo.CreateBoughtIfAbsent(ctx, row)
	if err != nil {
		return nil, internal(err)
	}

	out := &BoughtCreated{}
	if created {
		out.CreatedBought = row
		s.emit(ctx, "bought_created", row.UserID, row.ProductID, row.ID, row.Quantity)
	} else {
		l := logging.With(ctx, "svc", "items.create_bought")
		l.Info().
			Uint("user_id", in.UserID).Uint("product_id", in.ProductID).Msg("bought_already_exists")
	}

	if out.UpdatedUser, err = s.refreshedUser(ctx, in.UserID); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ItemService) CreateWishlist(ctx context.Context, actor *uint, in ItemInput) (*WishlistCreated, error) {
	if err := s.checkRefs(ctx, in.UserID, in.ProductID); err != nil {
		return nil, err
	}
	if err := s.authorize(actor, in.UserID); err != nil {
		return nil, err
	}

	row := &models.Wishlist{UserID: in.UserID, ProductID: in.ProductID}
	created, err := s.Repo.CreateWishlistIfAbsent(ctx, row)
	if err != nil {
		return nil, internal(err)
	}

	out := &WishlistCreated{}
	if created {
		out.CreatedWishlist = row
		s.emit(ctx, "wishlist_created", row.UserID, row.ProductID, row.ID, 0)
	}

	if out.UpdatedUser, err = s.refreshedUser(ctx, in.UserID); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateBought overwrites user, product and quantity of an existing row.
func (s *ItemService) UpdateBought(ctx context.Context, actor *uint, id uint, in ItemInput) (*BoughtUpdated, error) {
	if id == 0 {
		return nil, apperr.Validation("id must be a positive integer")
	}
	if in.Quantity == nil {
		return nil, apperr.Validation("quantity is required")
	}
	qty, err := quantityOrDefault(in.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, in.UserID, in.ProductID); err != nil {
		return nil, err
	}
	if err := s.authorize(actor, in.UserID); err != nil {
		return nil, err
	}

	final, err := s.Repo.UpdateBought(ctx, id, func(b *models.Bought) error {
		if s.EnforceOwnership && b.UserID != in.UserID {
			return apperr.Unauthorized(MsgNotOwner)
		}
		b.UserID = in.UserID
		b.ProductID = in.ProductID
		b.Quantity = qty
		return nil
	})
	if err != nil {
		if notFound(err) {
			return nil, apperr.Wrap(apperr.KindNotFound, MsgBoughtMissing, err)
		}
		return nil, internal(err)
	}
	s.emit(ctx, "bought_updated", final.UserID, final.ProductID, final.ID, final.Quantity)

	out := &BoughtUpdated{FinalBought: final}
	if out.UserUpdated, err = s.refreshedUser(ctx, in.UserID); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ItemService) DeleteBought(ctx context.Context, actor *uint, id, userID uint) (*ItemDeleted, error) {
	return s.deleteItem(ctx, actor, id, userID, s.Repo.DeleteBought, "bought_deleted")
}

func (s *ItemService) DeleteWishlist(ctx context.Context, actor *uint, id, userID uint) (*ItemDeleted, error) {
	return s.deleteItem(ctx, actor, id, userID, s.Repo.DeleteWishlist, "wishlist_deleted")
}

func (s *ItemService) deleteItem(
	ctx context.Context,
	actor *uint,
	id, userID uint,
	del func(ctx context.Context, id uint, userID *uint) error,
	eventType string,
) (*ItemDeleted, error) {
	if userID == 0 && s.EnforceOwnership {
		return nil, apperr.Validation(MsgUserIDRequired)
	}
	if err := s.authorize(actor, userID); err != nil {
		return nil, err
	}

	var scope *uint
	if s.EnforceOwnership {
		scope = &userID
	}
	if err := del(ctx, id, scope); err != nil {
		if notFound(err) {
			return nil, apperr.Wrap(apperr.KindNotFound, MsgItemMissing, err)
		}
		return nil, internal(err)
	}
	s.emit(ctx, eventType, userID, 0, id, 0)

	if userID == 0 {
		return &ItemDeleted{}, nil
	}
	u, err := s.refreshedUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ItemDeleted{UpdatedUser: u}, nil
}

func (s *ItemService) AllBought(ctx context.Context) ([]models.Bought, error) {
	items, err := s.Repo.ListBought(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

// BoughtByID returns nil without error when nothing matches.
func (s *ItemService) BoughtByID(ctx context.Context, id uint) (*models.Bought, error) {
	b, err := s.Repo.BoughtByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, internal(err)
	}
	return b, nil
}
