package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrInventoryLineIsNotConstructed is returned when an InventoryLine was
	// not created through NewInventoryLine or RestoreInventoryLine.
	ErrInventoryLineIsNotConstructed = errors.New(
		"InventoryLine must be created via NewInventoryLine or RestoreInventoryLine",
	)

	// ErrBookIDIsRequired is returned when the item identity is empty.
	ErrBookIDIsRequired = errors.New("book id is required")
)

// bookMetadata is the subset of the embedded book JSON blob the inventory
// denormalizes for price capture and search attributes.
type bookMetadata struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	ISBN          string   `json:"isbn"`
	PubYear       *int64   `json:"pub_year"`
	Pages         *int64   `json:"pages"`
	Price         *int64   `json:"price"`
	Tags          []string `json:"tags"`
	Content       string   `json:"content"`
	BookIntro     string   `json:"book_intro"`
	Catalog       string   `json:"catalog"`
	Publisher     string   `json:"publisher"`
	OriginalTitle string   `json:"original_title"`
	Translator    string   `json:"translator"`
}

// InventoryLine is one (store, item) stock record. It carries the raw book
// metadata blob, a stock count, the unit price captured redundantly from
// the metadata at listing time, and the denormalized attributes the search
// collaborator indexes.
//
// Invariants:
//   - Stock never goes negative: the only decrement path is the
//     repository's conditional atomic deduct guarded on minimum stock
//   - The composite key (store, book) is unique
type InventoryLine struct {
	storeID  string
	bookID   string
	bookInfo string
	stock    int64
	price    *kernel.Money

	// denormalized search attributes
	title    string
	author   string
	isbn     string
	pubYear  *int64
	pages    *int64
	textBlob string

	guard kernel.ConstructorGuard
}

// NewInventoryLine lists a book in a store. The metadata blob is parsed to
// capture the redundant price and the denormalized search attributes; a
// malformed blob is tolerated and simply leaves them empty.
func NewInventoryLine(storeID string, bookID string, bookInfo string, stock int64) (*InventoryLine, error) {
	if storeID == "" {
		return nil, ErrStoreIDIsRequired
	}
	if bookID == "" {
		return nil, ErrBookIDIsRequired
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("%d is negative", stock),
		)
	}

	line := &InventoryLine{
		storeID:  storeID,
		bookID:   bookID,
		bookInfo: bookInfo,
		stock:    stock,
		guard:    kernel.NewConstructorGuard(),
	}
	line.denormalize()
	return line, nil
}

// RestoreInventoryLine reconstructs an inventory line from persistence,
// trusting the persisted denormalized fields.
func RestoreInventoryLine(
	storeID string,
	bookID string,
	bookInfo string,
	stock int64,
	price *kernel.Money,
	title string,
	author string,
	isbn string,
	pubYear *int64,
	pages *int64,
	textBlob string,
) (*InventoryLine, error) {
	if storeID == "" {
		return nil, ErrStoreIDIsRequired
	}
	if bookID == "" {
		return nil, ErrBookIDIsRequired
	}

	return &InventoryLine{
		storeID:  storeID,
		bookID:   bookID,
		bookInfo: bookInfo,
		stock:    stock,
		price:    price,
		title:    title,
		author:   author,
		isbn:     isbn,
		pubYear:  pubYear,
		pages:    pages,
		textBlob: textBlob,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

func (l *InventoryLine) denormalize() {
	meta := parseMetadata(l.bookInfo)
	if meta == nil {
		return
	}

	l.title = meta.Title
	l.author = meta.Author
	l.isbn = meta.ISBN
	l.pubYear = meta.PubYear
	l.pages = meta.Pages
	if meta.Price != nil && *meta.Price >= 0 {
		p, err := kernel.NewMoney(*meta.Price)
		if err == nil {
			l.price = &p
		}
	}
	l.textBlob = buildTextBlob(meta)
}

func parseMetadata(blob string) *bookMetadata {
	if blob == "" {
		return nil
	}
	var meta bookMetadata
	if err := json.Unmarshal([]byte(blob), &meta); err != nil {
		return nil
	}
	return &meta
}

func buildTextBlob(meta *bookMetadata) string {
	blob := ""
	for _, part := range []string{
		meta.Title, meta.Author, meta.ISBN,
	} {
		if part != "" {
			if blob != "" {
				blob += " "
			}
			blob += part
		}
	}
	for _, tag := range meta.Tags {
		if tag != "" {
			if blob != "" {
				blob += " "
			}
			blob += tag
		}
	}
	for _, part := range []string{
		meta.Content, meta.BookIntro, meta.Catalog,
		meta.Publisher, meta.OriginalTitle, meta.Translator,
	} {
		if part != "" {
			if blob != "" {
				blob += " "
			}
			blob += part
		}
	}
	return blob
}

// StoreID returns the owning store identity.
func (l *InventoryLine) StoreID() string {
	return l.storeID
}

// BookID returns the item identity.
func (l *InventoryLine) BookID() string {
	return l.bookID
}

// BookInfo returns the raw metadata blob.
func (l *InventoryLine) BookInfo() string {
	return l.bookInfo
}

// Stock returns the last observed stock count. Authoritative stock
// mutations happen as guarded atomic updates in storage.
func (l *InventoryLine) Stock() int64 {
	return l.stock
}

// Price returns the captured redundant price, or nil when listing-time
// metadata carried no parsable price.
func (l *InventoryLine) Price() *kernel.Money {
	return l.price
}

// Title returns the denormalized title.
func (l *InventoryLine) Title() string { return l.title }

// Author returns the denormalized author.
func (l *InventoryLine) Author() string { return l.author }

// ISBN returns the denormalized ISBN.
func (l *InventoryLine) ISBN() string { return l.isbn }

// PubYear returns the denormalized publication year, if any.
func (l *InventoryLine) PubYear() *int64 { return l.pubYear }

// Pages returns the denormalized page count, if any.
func (l *InventoryLine) Pages() *int64 { return l.pages }

// TextBlob returns the concatenated text the search collaborator indexes.
func (l *InventoryLine) TextBlob() string { return l.textBlob }

// UnitPrice resolves the price captured for new orders: the redundant
// price field when present, otherwise a fresh parse of the metadata blob,
// otherwise zero. Mirrors the resolution order used at order creation.
func (l *InventoryLine) UnitPrice() kernel.Money {
	if l.price != nil {
		return *l.price
	}
	if meta := parseMetadata(l.bookInfo); meta != nil && meta.Price != nil && *meta.Price >= 0 {
		if p, err := kernel.NewMoney(*meta.Price); err == nil {
			return p
		}
	}
	return kernel.ZeroMoney()
}

// HasStockFor reports whether the observed stock covers the requested
// count. This is the non-binding order-creation check; the binding guard
// is the conditional deduct at payment time.
func (l *InventoryLine) HasStockFor(count int64) bool {
	return l.stock >= count
}

// Validate ensures the line was created through a constructor.
func (l *InventoryLine) Validate() error {
	if l == nil {
		return ErrInventoryLineIsNotConstructed
	}
	return l.guard.Validate(ErrInventoryLineIsNotConstructed)
}
