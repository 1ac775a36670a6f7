package dashboard

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avstrong/hotelsearch/internal/catalog"
	"github.com/avstrong/hotelsearch/internal/filter"
	"github.com/avstrong/hotelsearch/internal/logger"
	"github.com/avstrong/hotelsearch/internal/ordering"
	"github.com/avstrong/hotelsearch/internal/pipeline"
	"github.com/avstrong/hotelsearch/internal/search"
	"github.com/avstrong/hotelsearch/internal/storage/memory"
)

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

type storage interface {
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
}

type Config struct {
	L              *logger.Logger
	Catalog        *catalog.Catalog
	Storage        storage
	IDGenerator    idGenerator
	SearchDelay    time.Duration
	SearchResolver search.Resolver
	Now            func() time.Time
}

type Manager struct {
	l              *logger.Logger
	catalog        *catalog.Catalog
	storage        storage
	idGenerator    idGenerator
	searchDelay    time.Duration
	searchResolver search.Resolver
	now            func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
	closed   bool
}

func New(conf Config) *Manager {
	now := conf.Now
	if now == nil {
		now = time.Now
	}

	l := conf.L
	if l == nil {
		l = logger.Discard()
	}

	//nolint:exhaustruct
	return &Manager{
		l:              l,
		catalog:        conf.Catalog,
		storage:        conf.Storage,
		idGenerator:    conf.IDGenerator,
		searchDelay:    conf.SearchDelay,
		searchResolver: conf.SearchResolver,
		now:            now,
		sessions:       make(map[string]*session),
	}
}

func (m *Manager) Catalog() CatalogInfo {
	return CatalogInfo{
		HotelCount: m.catalog.Len(),
		PriceRange: m.catalog.PriceRange(),
		Amenities:  catalog.AllAmenities(),
		PageSize:   pipeline.PageSize,
	}
}

// CreateSession opens a tab. Criteria come from query when it carries any
// filter parameter, otherwise from the client's stored snapshot, otherwise
// from defaults. The client id is taken from ctx or generated.
func (m *Manager) CreateSession(ctx context.Context, query url.Values) (*SessionInfo, error) {
	sessionID, err := m.idGenerator.GetID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNextID, err)
	}

	clientID, ok := ClientIDFromContext(ctx)
	if !ok || strings.TrimSpace(clientID) == "" {
		if clientID, err = m.idGenerator.GetID(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNextID, err)
		}
	}

	l := m.l.With("session", sessionID, "client", clientID)
	location := memory.NewLocation(query)
	defaults := filter.Defaults(m.catalog.PriceRange())

	s := &session{
		id:         sessionID,
		clientID:   clientID,
		priceRange: m.catalog.PriceRange(),
		location:   location,
		store:      filter.NewStore(l, defaults, location, &clientStorage{storage: m.storage, clientID: clientID}),
		search: search.New(search.Config{
			Delay:    m.searchDelay,
			Resolver: m.searchResolver,
			L:        l,
		}),
		cache:    pipeline.NewCache(m.catalog.Hotels()),
		sort:     ordering.Default(),
		page:     1,
		viewMode: ViewGrid,
	}

	initial := s.store.Initialize(ctx)
	s.search.Reset(initial.Search)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		s.close()

		return nil, ErrClosed
	}

	m.sessions[sessionID] = s
	m.mu.Unlock()

	l.LogInfo("Session has been created with %d active filters", s.store.ActiveFilterCount())

	view := s.view()

	return &SessionInfo{
		SessionID: sessionID,
		ClientID:  clientID,
		Query:     view.Query,
		View:      view,
	}, nil
}

func (m *Manager) View(_ context.Context, sessionID string) (View, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return View{}, err
	}

	return s.view(), nil
}

// SetField applies raw user input to one filter field. Values are coerced,
// never rejected; only an unknown field name is an input error.
func (m *Manager) SetField(ctx context.Context, sessionID, field, raw string) (View, error) {
	f, ok := filter.ParseField(field)
	if !ok {
		inputErr := newInputError()
		inputErr.addError("field", fmt.Sprintf("unknown filter field %q", field))

		return View{}, inputErr
	}

	s, err := m.session(sessionID)
	if err != nil {
		return View{}, err
	}

	return s.mutate(func() error {
		s.setFieldLocked(ctx, f, raw)

		return nil
	})
}

func (m *Manager) ToggleAmenity(ctx context.Context, sessionID, amenity string) (View, error) {
	if !catalog.IsAmenity(amenity) {
		inputErr := newInputError()
		inputErr.addError("amenity", fmt.Sprintf("unknown amenity %q", amenity))

		return View{}, inputErr
	}

	s, err := m.session(sessionID)
	if err != nil {
		return View{}, err
	}

	return s.mutate(func() error {
		s.toggleAmenityLocked(ctx, catalog.Amenity(amenity))

		return nil
	})
}

func (m *Manager) ClearFilters(ctx context.Context, sessionID string) (View, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return View{}, err
	}

	return s.mutate(func() error {
		s.clearLocked(ctx)

		return nil
	})
}

func (in SortInput) validate() (ordering.Spec, error) {
	inputErr := newInputError()

	primary, ok := ordering.ParseField(in.Primary)
	if !ok {
		inputErr.addError("primary", "provide one of price, rating, name")
	}

	direction := ordering.Ascending

	if in.Direction != "" {
		if direction, ok = ordering.ParseDirection(in.Direction); !ok {
			inputErr.addError("direction", "provide asc or desc")
		}
	}

	secondary := ordering.FieldNone

	if strings.TrimSpace(in.Secondary) != "" {
		if secondary, ok = ordering.ParseField(in.Secondary); !ok {
			inputErr.addError("secondary", "provide one of price, rating, name or leave empty")
		}
	}

	if inputErr.fieldsCount() > 0 {
		return ordering.Spec{}, inputErr
	}

	return ordering.Spec{Primary: primary, Direction: direction, Secondary: secondary}, nil
}

func (m *Manager) SetSort(_ context.Context, sessionID string, in SortInput) (View, error) {
	spec, err := in.validate()
	if err != nil {
		return View{}, err
	}

	s, err := m.session(sessionID)
	if err != nil {
		return View{}, err
	}

	return s.mutate(func() error {
		s.setSortLocked(spec)

		return nil
	})
}

// ToggleSort behaves like a column header click.
func (m *Manager) ToggleSort(_ context.Context, sessionID, field string) (View, error) {
	f, ok := ordering.ParseField(field)
	if !ok {
		inputErr := newInputError()
		inputErr.addError("field", "provide one of price, rating, name")

		return View{}, inputErr
	}

	s, err := m.session(sessionID)
	if err != nil {
		return View{}, err
	}

	return s.mutate(func() error {
		s.toggleSortLocked(f)

		return nil
	})
}

// SetPage stores the requested page; the view reports the page actually shown.
func (m *Manager) SetPage(_ context.Context, sessionID string, page int) (View, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return View{}, err
	}

	return s.mutate(func() error {
		s.page = page

		return nil
	})
}

func (m *Manager) SetViewMode(_ context.Context, sessionID, mode string) (View, error) {
	vm := ViewMode(mode)
	if !vm.Valid() {
		inputErr := newInputError()
		inputErr.addError("mode", "provide grid or table")

		return View{}, inputErr
	}

	s, err := m.session(sessionID)
	if err != nil {
		return View{}, err
	}

	return s.mutate(func() error {
		s.viewMode = vm

		return nil
	})
}

func (m *Manager) Export(_ context.Context, sessionID string) (Export, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return Export{}, err
	}

	return s.export(m.now()), nil
}

func (m *Manager) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}

	s.close()
	m.l.LogInfo("Session %s has been closed", sessionID)

	return nil
}

// Close stops every pending search and rejects new sessions.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	sessions := m.sessions
	m.sessions = make(map[string]*session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}

func (m *Manager) session(sessionID string) (*session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}

	return s, nil
}

// clientStorage narrows the shared storage to one client's namespace.
type clientStorage struct {
	storage  storage
	clientID string
}

func (c *clientStorage) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok, err := c.storage.Get(ctx, c.clientID, key)
	if err != nil {
		return nil, false, fmt.Errorf("get %s for client %s: %w", key, c.clientID, err)
	}

	return value, ok, nil
}

func (c *clientStorage) SetItem(ctx context.Context, key string, value []byte) error {
	if err := c.storage.Set(ctx, c.clientID, key, value); err != nil {
		return fmt.Errorf("set %s for client %s: %w", key, c.clientID, err)
	}

	return nil
}
