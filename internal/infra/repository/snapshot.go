package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"rent-elegance/internal/domain/cart"
	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/infra"
	"rent-elegance/internal/infra/storage"

	"github.com/google/uuid"
)

// Storage keys shared with the storefront's browser payloads.
const (
	CartKey     = "rentEleganceCart"
	WishlistKey = "rentEleganceWishlist"
)

type entryRecord struct {
	Product     product.Record `json:"product"`
	Quantity    int            `json:"quantity"`
	RentalDates *datesRecord   `json:"rentalDates,omitempty"`
	RentalDays  int            `json:"rentalDays,omitempty"`
}

type datesRecord struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type SnapshotRepository struct {
	kv     storage.KeyValue
	logger *slog.Logger
}

func NewSnapshotRepository(kv storage.KeyValue, logger *slog.Logger) *SnapshotRepository {
	return &SnapshotRepository{kv: kv, logger: logger}
}

// Load decodes each collection independently. A corrupt collection is
// logged and read as empty; invalid records inside a collection are skipped.
func (r *SnapshotRepository) Load(ctx context.Context, deviceID uuid.UUID) (cart.Snapshot, error) {
	rawCart, okCart, err := r.kv.Get(ctx, deviceID, CartKey)
	if err != nil {
		return cart.Snapshot{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read cart", err)
	}
	rawWishlist, okWishlist, err := r.kv.Get(ctx, deviceID, WishlistKey)
	if err != nil {
		return cart.Snapshot{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read wishlist", err)
	}

	var snap cart.Snapshot
	if okCart {
		snap.Entries = r.decodeEntries(deviceID, rawCart)
	}
	if okWishlist {
		snap.Wishlist = r.decodeWishlist(deviceID, rawWishlist)
	}
	return snap, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, deviceID uuid.UUID, snap cart.Snapshot) error {
	entries := make([]entryRecord, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		rec := entryRecord{
			Product:    e.Product().Record(),
			Quantity:   e.Quantity(),
			RentalDays: e.RentalDays(),
		}
		if dates, ok := e.RentalDates(); ok {
			rec.RentalDates = &datesRecord{StartDate: dates.StartString(), EndDate: dates.EndString()}
		}
		entries = append(entries, rec)
	}
	wishlist := make([]product.Record, 0, len(snap.Wishlist))
	for _, p := range snap.Wishlist {
		wishlist = append(wishlist, p.Record())
	}

	rawCart, err := json.Marshal(entries)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindEncodeFailure, "failed to encode cart", err)
	}
	rawWishlist, err := json.Marshal(wishlist)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindEncodeFailure, "failed to encode wishlist", err)
	}

	if err := r.kv.SetAll(ctx, deviceID, map[string][]byte{
		CartKey:     rawCart,
		WishlistKey: rawWishlist,
	}); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to write snapshot", err)
	}
	return nil
}

func (r *SnapshotRepository) decodeEntries(deviceID uuid.UUID, raw []byte) []cart.Entry {
	var records []entryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		r.logger.Warn("corrupt cart payload, treating as empty",
			"device_id", deviceID,
			"error", err)
		return nil
	}

	entries := make([]cart.Entry, 0, len(records))
	for _, rec := range records {
		p, err := product.FromRecord(rec.Product)
		if err != nil {
			r.logger.Warn("skipping invalid cart entry", "device_id", deviceID, "error", err)
			continue
		}
		var dates *rental.DateRange
		if rec.RentalDates != nil {
			dr, err := rental.ParseDateRange(rec.RentalDates.StartDate, rec.RentalDates.EndDate)
			if err == nil {
				dates = &dr
			}
		}
		entries = append(entries, cart.ReconstructEntry(p, rec.Quantity, dates, rec.RentalDays))
	}
	return entries
}

func (r *SnapshotRepository) decodeWishlist(deviceID uuid.UUID, raw []byte) []product.Product {
	var records []product.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		r.logger.Warn("corrupt wishlist payload, treating as empty",
			"device_id", deviceID,
			"error", err)
		return nil
	}

	items := make([]product.Product, 0, len(records))
	for _, rec := range records {
		p, err := product.FromRecord(rec)
		if err != nil {
			r.logger.Warn("skipping invalid wishlist item", "device_id", deviceID, "error", err)
			continue
		}
		items = append(items, p)
	}
	return items
}
