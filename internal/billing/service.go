package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dhyey-19/VaaniBill/internal/catalog"
	"github.com/Dhyey-19/VaaniBill/internal/parser"
)

var (
	ErrBillNotFound  = errors.New("bill not found")
	ErrInvalidLocale = errors.New("locale must be english or gujarati")
	ErrInvalidItems  = errors.New("bill items and total are required")
)

// CatalogReader supplies the read-only snapshot a session is born with.
// Implemented by *catalog.Service.
type CatalogReader interface {
	List(ctx context.Context, userID string) ([]catalog.Product, error)
}

type Service struct {
	repo    Repository
	catalog CatalogReader
	store   *Store
	now     func() time.Time
}

func NewService(repo Repository, catalogReader CatalogReader, store *Store) *Service {
	return &Service{
		repo:    repo,
		catalog: catalogReader,
		store:   store,
		now:     time.Now,
	}
}

// --------------------------------------------------
// Draft sessions
// --------------------------------------------------

// StartSession fetches the catalog snapshot once and opens a draft bill.
func (s *Service) StartSession(
	ctx context.Context,
	userID string,
	locale parser.Locale,
) (*Session, error) {

	if locale == "" {
		locale = parser.LocaleEnglish
	}
	if locale != parser.LocaleEnglish && locale != parser.LocaleGujarati {
		return nil, ErrInvalidLocale
	}

	snapshot, err := s.catalog.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := NewSession(userID, locale, snapshot)
	s.store.Put(session)

	return session, nil
}

// AddUtterance processes one finalized transcript against the session's
// snapshot. Parse failures come back as errors for the caller to surface;
// they never close the session.
func (s *Service) AddUtterance(
	sessionID string,
	userID string,
	text string,
) (*parser.Draft, error) {

	session, err := s.store.Get(sessionID, userID)
	if err != nil {
		return nil, err
	}

	return session.AddUtterance(text)
}

func (s *Service) UpdateItem(
	sessionID string,
	userID string,
	itemID string,
	patch ItemPatch,
) (*parser.Draft, error) {

	session, err := s.store.Get(sessionID, userID)
	if err != nil {
		return nil, err
	}

	return session.UpdateItem(itemID, patch)
}

func (s *Service) RemoveItem(sessionID, userID, itemID string) error {
	session, err := s.store.Get(sessionID, userID)
	if err != nil {
		return err
	}

	return session.RemoveItem(itemID)
}

func (s *Service) SessionItems(sessionID, userID string) ([]parser.Draft, float64, error) {
	session, err := s.store.Get(sessionID, userID)
	if err != nil {
		return nil, 0, err
	}

	return session.Items(), session.Total(), nil
}

func (s *Service) DiscardSession(sessionID, userID string) error {
	if _, err := s.store.Get(sessionID, userID); err != nil {
		return err
	}

	s.store.Remove(sessionID)
	return nil
}

// Complete assigns the next BILL<ddmmyy>_<n> number, persists the draft and
// discards the session.
func (s *Service) Complete(
	ctx context.Context,
	sessionID string,
	userID string,
) (*Bill, error) {

	session, err := s.store.Get(sessionID, userID)
	if err != nil {
		return nil, err
	}

	drafts := session.Items()
	if len(drafts) == 0 {
		return nil, ErrEmptyBill
	}

	prefix := fmt.Sprintf("BILL%s_", s.now().Format("020106"))
	count, err := s.repo.CountByNumberPrefix(ctx, userID, prefix)
	if err != nil {
		return nil, err
	}

	items := make([]BillItem, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, BillItem{
			Name:     d.Name,
			Rate:     d.Rate,
			Quantity: d.Quantity,
			Total:    d.Total,
		})
	}

	bill := &Bill{
		BillNumber: fmt.Sprintf("%s%d", prefix, count+1),
		Total:      session.Total(),
		Items:      items,
	}

	if err := s.repo.SaveBill(ctx, userID, bill); err != nil {
		return nil, err
	}

	s.store.Remove(sessionID)

	return bill, nil
}

// --------------------------------------------------
// Saved bills
// --------------------------------------------------

func (s *Service) ListBills(ctx context.Context, userID string) ([]Bill, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) UpdateBill(
	ctx context.Context,
	userID string,
	billID int64,
	items []BillItem,
	total float64,
) error {

	if len(items) == 0 {
		return ErrInvalidItems
	}

	updated, err := s.repo.ReplaceItems(ctx, userID, billID, items, total)
	if err != nil {
		return err
	}
	if !updated {
		return ErrBillNotFound
	}

	return nil
}

func (s *Service) DeleteBill(ctx context.Context, userID string, billID int64) error {
	deleted, err := s.repo.Delete(ctx, userID, billID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBillNotFound
	}
	return nil
}
