//go:build unit

package store_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"rent-elegance/internal/domain/cart"
	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/infra/notify"
	"rent-elegance/internal/infra/repository"
	"rent-elegance/internal/infra/storage"
	"rent-elegance/internal/usecase/store"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

type cartTestContext struct {
	kv       *storage.Memory
	board    *notify.Board
	registry *store.Registry
	products map[string]product.Product
	deviceID uuid.UUID
}

func (c *cartTestContext) reset() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c.kv = storage.NewMemory()
	c.board = notify.NewBoard(logger)
	c.registry = c.newRegistry()
	c.products = make(map[string]product.Product)
	c.deviceID = uuid.Nil
}

func (c *cartTestContext) newRegistry() *store.Registry {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repository.NewSnapshotRepository(c.kv, logger)
	return store.NewRegistry(repo, c.board, rental.NewDefaultDurationCalculator())
}

func (c *cartTestContext) store() *store.Store {
	return c.registry.Get(context.Background(), c.deviceID)
}

func (c *cartTestContext) theCatalogContainsProduct(id, name string, price, deposit int) error {
	p, err := product.FromRecord(product.Record{ID: id, Name: name, Price: int64(price), Deposit: int64(deposit)})
	if err != nil {
		return err
	}
	c.products[id] = p
	return nil
}

func (c *cartTestContext) aFreshDevice() error {
	c.deviceID = uuid.New()
	return nil
}

func (c *cartTestContext) product(id string) (product.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return product.Product{}, fmt.Errorf("unknown product %q", id)
	}
	return p, nil
}

func (c *cartTestContext) iAddToTheCart(qty int, id string) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	c.store().AddToCart(context.Background(), p, qty, nil)
	return nil
}

func (c *cartTestContext) iAddToTheCartFromTo(qty int, id, start, end string) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	dates, err := rental.ParseDateRange(start, end)
	if err != nil {
		return err
	}
	c.store().AddToCart(context.Background(), p, qty, &dates)
	return nil
}

func (c *cartTestContext) iUpdateToQuantity(id string, qty int) error {
	c.store().UpdateCartItem(context.Background(), id, qty, nil)
	return nil
}

func (c *cartTestContext) iAddToTheWishlist(id string) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	c.store().AddToWishlist(context.Background(), p)
	return nil
}

func (c *cartTestContext) iRemoveFromTheWishlist(id string) error {
	c.store().RemoveFromWishlist(context.Background(), id)
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.store().ClearCart(context.Background())
	return nil
}

func (c *cartTestContext) theServiceRestarts() error {
	if err := c.registry.Close(context.Background()); err != nil {
		return err
	}
	c.registry = c.newRegistry()
	return nil
}

func (c *cartTestContext) theStoredCartIs(raw string) error {
	return c.kv.SetAll(context.Background(), c.deviceID, map[string][]byte{repository.CartKey: []byte(raw)})
}

func expectInt(what string, want, got int) error {
	if want != got {
		return fmt.Errorf("expected %s %d, got %d", what, want, got)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(want int) error {
	return expectInt("cart total", want, int(c.store().CartTotal().Amount()))
}

func (c *cartTestContext) theCartItemCountIs(want int) error {
	return expectInt("cart item count", want, c.store().CartItemCount())
}

func (c *cartTestContext) theCartHasDistinctItems(want int) error {
	return expectInt("distinct items", want, len(c.store().CartItems()))
}

func (c *cartTestContext) theWishlistCountIs(want int) error {
	return expectInt("wishlist count", want, c.store().WishlistCount())
}

func (c *cartTestContext) totals() cart.Totals {
	return c.store().Totals()
}

func (c *cartTestContext) theSubtotalIs(want int) error {
	return expectInt("subtotal", want, int(c.totals().Subtotal.Amount()))
}

func (c *cartTestContext) theDepositTotalIs(want int) error {
	return expectInt("deposit total", want, int(c.totals().Deposit.Amount()))
}

func (c *cartTestContext) theGrandTotalIs(want int) error {
	return expectInt("grand total", want, int(c.totals().Total.Amount()))
}

func (c *cartTestContext) theRentalDaysOfAre(id string, want int) error {
	for _, e := range c.store().CartItems() {
		if e.ProductID() == id {
			return expectInt("rental days", want, e.RentalDays())
		}
	}
	return fmt.Errorf("product %q not in cart", id)
}

func (c *cartTestContext) theNotificationIs(message string) error {
	n, ok := c.board.Current(c.deviceID)
	if !ok {
		return fmt.Errorf("no notification for device")
	}
	if n.Message != message {
		return fmt.Errorf("expected notification %q, got %q", message, n.Message)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog contains product "([^"]*)" named "([^"]*)" priced (\d+) with deposit (\d+)$`, tc.theCatalogContainsProduct)
	ctx.Step(`^a fresh device$`, tc.aFreshDevice)
	ctx.Step(`^the stored cart for the device is "([^"]*)"$`, tc.theStoredCartIs)

	// When steps
	ctx.Step(`^I add (-?\d+) of "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I add (-?\d+) of "([^"]*)" to the cart from "([^"]*)" to "([^"]*)"$`, tc.iAddToTheCartFromTo)
	ctx.Step(`^I update "([^"]*)" to quantity (-?\d+)$`, tc.iUpdateToQuantity)
	ctx.Step(`^I add "([^"]*)" to the wishlist$`, tc.iAddToTheWishlist)
	ctx.Step(`^I remove "([^"]*)" from the wishlist$`, tc.iRemoveFromTheWishlist)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)
	ctx.Step(`^the service restarts$`, tc.theServiceRestarts)

	// Then steps
	ctx.Step(`^the cart total is (\d+)$`, tc.theCartTotalIs)
	ctx.Step(`^the cart item count is (\d+)$`, tc.theCartItemCountIs)
	ctx.Step(`^the cart has (\d+) distinct items?$`, tc.theCartHasDistinctItems)
	ctx.Step(`^the wishlist count is (\d+)$`, tc.theWishlistCountIs)
	ctx.Step(`^the subtotal is (\d+)$`, tc.theSubtotalIs)
	ctx.Step(`^the deposit total is (\d+)$`, tc.theDepositTotalIs)
	ctx.Step(`^the grand total is (\d+)$`, tc.theGrandTotalIs)
	ctx.Step(`^the rental days of "([^"]*)" are (\d+)$`, tc.theRentalDaysOfAre)
	ctx.Step(`^the notification is "([^"]*)"$`, tc.theNotificationIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../features/cart.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
